package services

import "errors"

var (
	// ErrMissingRequiredField means a mutation was submitted without a
	// required field; nothing is sent to the backend.
	ErrMissingRequiredField = errors.New("required field missing")

	// ErrGenerationInFlight means a suggestion generation is already
	// running; the second call is rejected without a network request.
	ErrGenerationInFlight = errors.New("generation already in progress")

	// ErrSaveInFlight means a save for this look is already running.
	ErrSaveInFlight = errors.New("save already in progress")

	// ErrNoAccessToken means the login response carried no access token.
	ErrNoAccessToken = errors.New("no access token received")

	// ErrNotEditing means a draft mutation or save was attempted outside
	// an edit session.
	ErrNotEditing = errors.New("no edit in progress")
)
