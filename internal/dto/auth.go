package dto

type RegisterRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"user created"`
	UserID  int64  `json:"user_id" example:"1"`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

type ProfileResponseDTO struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}
