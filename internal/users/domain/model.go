package domain

import "errors"

// Session is what sign-up and sign-in hand back to the client.
type Session struct {
	UserID      string `json:"userId"`
	BearerToken string `json:"bearerToken"`
}

var (
	// ErrEmailExists means sign-up hit an already registered address.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials means sign-in was rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
