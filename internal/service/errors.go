package service

import "errors"

var (
	// ErrEmptyMasterPassword is returned by Unlock for an empty password.
	ErrEmptyMasterPassword = errors.New("master password is empty")
	// ErrNoUserID is returned when an operation is called without a user id.
	ErrNoUserID = errors.New("no user ID was given")
	// ErrVaultLocked is returned when an item operation gets no usable key.
	ErrVaultLocked = errors.New("vault is locked")
	// ErrUserMismatch is returned when the user id argument differs from the
	// one the session context was opened for.
	ErrUserMismatch = errors.New("user id does not match the session user")
)
