package app

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUsernameExists    = errors.New("username is already taken")
	ErrEmailExists       = errors.New("email address is already taken")
	ErrInvalidCredential = errors.New("wrong user details")
	ErrWrongPassword     = errors.New("wrong password")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrBlogNotFound      = errors.New("blog not found")
	ErrAlreadyInTrash    = errors.New("blog is already in trash")
)

// ValidationError reports the first missing input field by name.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
