package identity

// Principal is the authenticated identity attached to a request.
// Services take it as an explicit argument instead of reading
// ambient session state.
type Principal struct {
	UserID   uint
	Username string
	Email    string
	UserType UserType
}

// Anonymous returns the unauthenticated principal
func Anonymous() Principal {
	return Principal{}
}

// IsAnonymous reports whether the principal carries no authenticated user
func (p Principal) IsAnonymous() bool {
	return p.UserID == 0
}

// IsAdmin reports whether the principal is an administrator
func (p Principal) IsAdmin() bool {
	return p.UserType == UserTypeAdmin
}
