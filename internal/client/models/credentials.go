package models

// LoginCredentials is the input of a login attempt.
type LoginCredentials struct {
	Username string
	Password string
}

// RegisterCredentials is the input of a registration attempt.
// FirstName and LastName are optional.
type RegisterCredentials struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthResult is what the remote authenticator returns on a successful
// login or registration.
type AuthResult struct {
	User         User
	Token        string
	RefreshToken string
}
