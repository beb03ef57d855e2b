package services

import "errors"

// Error taxonomy shared by every service. Controllers map these to HTTP
// codes with errors.Is; services wrap them with fmt.Errorf("...: %w").
var (
	// ErrValidation: caller-supplied data violates a precondition.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition: the requested status change is not allowed
	// from the record's current status. Never silently ignored.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotAuthorized: the acting identity does not own / is not
	// assigned to the target record.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound: a referenced entity does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrUpstream: a collaborator (store, image host) failed.
	ErrUpstream = errors.New("upstream service failed")
)
