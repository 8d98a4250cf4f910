package domain

type Coordinator struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	CreatedAt    string `json:"created_at"`
	Active       bool   `json:"active"`
}

type AddCoordinatorRequest struct {
	Username string `json:"username" validate:"required,storekey,max=64"`
	Password string `json:"password" validate:"required,min=4,max=128"`
}

type CoordinatorLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	SecretKey string `json:"secret_key" validate:"required"`
}
