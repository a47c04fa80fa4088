// File: tidify/models/user.go
package models

// Roles a user row may carry. Admin accounts are seeded by editing
// users.json directly; registration only hands out customer and worker.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
	RoleAdmin    = "admin"
)

// User is a row of users.json. Field order mirrors the stored documents;
// the password salt and hash are base64-encoded PBKDF2-HMAC-SHA256 material.
type User struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PwdSalt   string `json:"pwd_salt"`
	PwdHash   string `json:"pwd_hash"`
	CreatedAt string `json:"created_at"`
	ID        string `json:"id,omitempty"`
	TokenHash string `json:"token_hash,omitempty"`
}

// PublicUser is the API-facing view of a user, with credential material
// stripped.
type PublicUser struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Public returns the sanitized view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest is the sign-up payload. Role must be customer or worker.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
