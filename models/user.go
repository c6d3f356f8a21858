package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// database at registration time.
	UserID int64 `json:"user_id"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the unique contact address supplied at registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The plaintext password is never persisted and the hash is never
	// serialized into API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}

// RegisterRequest is the inbound payload of POST /register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the inbound payload of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned by POST /register on success.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by POST /login on success. Token carries the
// signed JWT the client must present as a bearer token on protected routes.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// VerifyTokenResponse is returned by GET /verify_token for a valid session.
type VerifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
