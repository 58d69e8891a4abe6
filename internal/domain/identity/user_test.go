package identity

import (
	"testing"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Jane", "Doe", "Jane@Example.com", "jdoe", "secret123", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "Jane", user.Firstname)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "jdoe", user.Username)
	assert.True(t, user.Active)
	assert.Equal(t, UserTypeRegular, user.UserType)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, user.VerifyPassword("secret123"))
	assert.False(t, user.VerifyPassword("wrong"))
}

func TestNewUser_PasswordMismatch(t *testing.T) {
	_, err := NewUser("Jane", "Doe", "jane@example.com", "jdoe", "secret123", "secret124")
	require.Error(t, err)

	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "PASSWORD_MISMATCH", domainErr.Code)
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name      string
		firstname string
		surname   string
		email     string
		username  string
		password  string
	}{
		{"missing firstname", "", "Doe", "jane@example.com", "jdoe", "secret123"},
		{"missing surname", "Jane", "", "jane@example.com", "jdoe", "secret123"},
		{"missing email", "Jane", "Doe", "", "jdoe", "secret123"},
		{"missing username", "Jane", "Doe", "jane@example.com", "", "secret123"},
		{"short password", "Jane", "Doe", "jane@example.com", "jdoe", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.firstname, tt.surname, tt.email, tt.username, tt.password, tt.password)
			require.Error(t, err)

			domainErr, ok := err.(*shared.DomainError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	user, err := NewUser("Jane", "Doe", "jane@example.com", "jdoe", "secret123", "secret123")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())

	user.UserType = UserTypeAdmin
	assert.True(t, user.IsAdmin())
}

func TestPrincipal(t *testing.T) {
	assert.True(t, Anonymous().IsAnonymous())

	p := Principal{UserID: 7, Username: "jdoe", UserType: UserTypeAdmin}
	assert.False(t, p.IsAnonymous())
	assert.True(t, p.IsAdmin())
}
