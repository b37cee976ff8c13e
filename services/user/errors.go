package user

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned on a failed sign-in. The message never
	// distinguishes unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when the requested account does not exist.
	ErrUserNotFound = errors.New("user not found")
)
