package migrations

import "embed"

// Migrations holds the goose scripts of every Postgres-backed service, one directory per service.
//
//go:embed identity/*.sql orders/*.sql
var Migrations embed.FS

const (
	IdentityDir = "identity"
	OrdersDir   = "orders"
)
