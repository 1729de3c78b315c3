// Package identity exposes account registration and sign-in over HTTP.
package identity

// AuthRequest carries credentials for register and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns the signed-in user and their bearer token.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
