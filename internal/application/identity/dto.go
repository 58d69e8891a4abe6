package identity

import (
	"time"

	"github.com/ims/backend/internal/domain/identity"
)

// LoginRequest represents a login attempt. Identifier is a username or
// an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required,max=200"`
	Password   string `json:"password" binding:"required"`
}

// RegisterRequest represents a registration submission
type RegisterRequest struct {
	Firstname       string `json:"firstname" binding:"required,max=100"`
	Surname         string `json:"surname" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email,max=200"`
	Username        string `json:"username" binding:"required,max=50"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uint      `json:"id"`
	Firstname string    `json:"firstname"`
	Surname   string    `json:"surname"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	UserType  int       `json:"user_type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult carries the session token for the cookie plus the
// response payload
type LoginResult struct {
	Token      string       `json:"-"`
	RedirectTo string       `json:"redirect_to"`
	User       UserResponse `json:"user"`
}

// ToUserResponse converts a domain user to its API representation
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Firstname: u.Firstname,
		Surname:   u.Surname,
		FullName:  u.FullName(),
		Email:     u.Email,
		Username:  u.Username,
		UserType:  int(u.UserType),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
