package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type LogoutResponseDTO struct {
	Message string `json:"message"`
}
