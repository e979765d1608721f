package domain

import (
	"errors"
	"time"
)

// ErrAlreadyExists is returned by stores when a unique key is already taken.
var ErrAlreadyExists = errors.New("already exists")

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Order keeps the owner's id and username as they were in the token at creation time.
type Order struct {
	ID        string    `db:"id"`
	Item      string    `db:"item"`
	Price     float64   `db:"price"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
	TransactionPending TransactionStatus = "PENDING"
)

type Transaction struct {
	ID     string
	Status TransactionStatus
}
