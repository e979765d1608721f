package dto

type PayRequestDTO struct {
	Amount float64 `json:"amount" example:"10"`
}

type PayResponseDTO struct {
	TransactionID string `json:"transaction_id" example:"txn_7b0e4f5e-2c3a-4d4b-8f6e-0c1d2e3f4a5b"`
	Status        string `json:"status" example:"SUCCESS"`
	User          string `json:"user" example:"alice"`
}

type TransactionStatusResponseDTO struct {
	TransactionID string `json:"transaction_id" example:"txn_7b0e4f5e-2c3a-4d4b-8f6e-0c1d2e3f4a5b"`
	Status        string `json:"status" example:"SUCCESS"`
}
