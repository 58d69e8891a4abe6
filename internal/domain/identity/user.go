package identity

import (
	"strings"

	"github.com/ims/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserType distinguishes regular users from administrators
type UserType int

const (
	UserTypeRegular UserType = 0
	UserTypeAdmin   UserType = 1
)

// bcryptCost is the work factor used for password hashing
const bcryptCost = 12

// User is the identity aggregate root
type User struct {
	shared.BaseEntity
	Firstname    string
	Surname      string
	Email        string
	Username     string
	PasswordHash string
	Active       bool
	UserType     UserType
}

// NewUser creates a new user with a hashed password.
// Registration requires the password confirmation to match.
func NewUser(firstname, surname, email, username, password, confirmPassword string) (*User, error) {
	firstname = strings.TrimSpace(firstname)
	surname = strings.TrimSpace(surname)
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	if firstname == "" {
		return nil, shared.NewValidationError("First name is required")
	}
	if surname == "" {
		return nil, shared.NewValidationError("Surname is required")
	}
	if email == "" {
		return nil, shared.NewValidationError("Email is required")
	}
	if username == "" {
		return nil, shared.NewValidationError("Username is required")
	}
	if len(username) > 50 {
		return nil, shared.NewValidationError("Username must be at most 50 characters")
	}
	if len(password) < 6 {
		return nil, shared.NewValidationError("Password must be at least 6 characters")
	}
	if password != confirmPassword {
		return nil, shared.ErrPasswordMismatch
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Firstname:    firstname,
		Surname:      surname,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Active:       true,
		UserType:     UserTypeRegular,
	}, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the user is an administrator
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.Firstname + " " + u.Surname
}

// Deactivate marks the account as inactive; inactive users cannot log in
func (u *User) Deactivate() {
	u.Active = false
}

// Activate re-enables a deactivated account
func (u *User) Activate() {
	u.Active = true
}
