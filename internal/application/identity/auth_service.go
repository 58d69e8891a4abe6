package identity

import (
	"context"
	"time"

	"github.com/ims/backend/internal/domain/audit"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/session"
	"go.uber.org/zap"
)

// Redirect targets after a successful login
const (
	adminHome = "/admin"
	userHome  = "/dashboard"
)

// AuthService handles login, registration and session identity
type AuthService struct {
	users      identity.UserRepository
	sessions   session.Store
	sessionTTL time.Duration
	activity   audit.ActivityLogRepository
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	sessions session.Store,
	sessionTTL time.Duration,
	activity audit.ActivityLogRepository,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		activity:   activity,
		logger:     logger,
	}
}

// Login authenticates a user by username or email and opens a session
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredential
	}
	if !user.Active {
		return nil, shared.ErrInactiveAccount
	}

	sess := session.New(user)
	if err := s.sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		return nil, err
	}

	redirect := userHome
	if user.IsAdmin() {
		redirect = adminHome
	}

	s.recordActivity(ctx, user.ID, "Logged in")

	return &LoginResult{
		Token:      sess.Token,
		RedirectTo: redirect,
		User:       ToUserResponse(user),
	}, nil
}

// Register creates a new regular user account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicateUsername
	}

	exists, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicateEmail
	}

	user, err := identity.NewUser(req.Firstname, req.Surname, req.Email, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.ID, "Registered account")

	response := ToUserResponse(user)
	return &response, nil
}

// Logout closes the session. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// CurrentUser loads the account behind the request principal
func (s *AuthService) CurrentUser(ctx context.Context, principal identity.Principal) (*UserResponse, error) {
	if principal.IsAnonymous() {
		return nil, shared.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// recordActivity appends an audit row. Audit failures are logged and
// never surfaced to the caller.
func (s *AuthService) recordActivity(ctx context.Context, userID uint, action string) {
	entry := audit.NewActivityLog(userID, action)
	if err := s.activity.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity",
			zap.Uint("user_id", userID),
			zap.String("action", action),
			zap.Error(err))
	}
}
