package core

import (
	"errors"
)

var (
	// ErrEmptyEmail is returned when the analyze operation receives no email content
	ErrEmptyEmail = errors.New("email content is required")

	// ErrNoURLs is returned when the homograph operation receives no URL list
	ErrNoURLs = errors.New("urls array is required")

	// ErrEmptyDomain is returned when the authentication operation receives no domain
	ErrEmptyDomain = errors.New("domain is required")
)

// IsValidationError reports whether err is a caller-correctable input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyEmail) ||
		errors.Is(err, ErrNoURLs) ||
		errors.Is(err, ErrEmptyDomain)
}
