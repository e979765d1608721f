package dto

type CreateOrderRequestDTO struct {
	Item  string  `json:"item" example:"book"`
	Price float64 `json:"price" example:"10"`
}

type CreateOrderResponseDTO struct {
	Message string `json:"message" example:"order created"`
	OrderID string `json:"order_id" example:"3f0c2a1e-8d1b-4a47-9a43-2d7f1c1f5b3e"`
}

type GetOrdersResponseDTO struct {
	Item     string  `json:"item" example:"book"`
	Price    float64 `json:"price" example:"10"`
	UserID   int64   `json:"user_id" example:"1"`
	Username string  `json:"username" example:"alice"`
}
