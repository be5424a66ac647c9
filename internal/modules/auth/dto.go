package auth

// RegisterDTO is the request body for creating an account.
type RegisterDTO struct {
	Username        string `json:"username"         binding:"required"`
	Email           string `json:"email"`
	Password        string `json:"password"         binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Bio             string `json:"bio"`
	RegisterAsAdmin bool   `json:"register_as_admin"`
}

// LoginDTO is the request body for password login.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// sessionResponse is the caller's own projection, safe for exposure.
type sessionResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	IsAdmin  bool   `json:"is_admin"`
}
