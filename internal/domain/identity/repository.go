package identity

import "context"

// UserRepository defines persistence operations for the User aggregate
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByIdentifier looks a user up by username or email.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	Count(ctx context.Context) (int64, error)
}
