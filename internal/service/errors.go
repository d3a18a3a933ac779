package service

import "errors"

// Sentinel errors returned by the service layer. Callers match with
// [errors.Is]; the UI layer owns the user-facing phrasing.
var (
	// ErrAccountBlocked is returned by Login when the matched local
	// account carries the blocked flag. No session is established.
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrEmailAlreadyRegistered is returned by Register when the email is
	// already present in the local credential store (case-insensitive).
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrServer wraps remote collaborator failures (non-2xx responses and
	// network errors) in the auth fallback path.
	ErrServer = errors.New("server error")

	// ErrNotAnImage is returned by SelectFile for any file whose content
	// type is not image/*. The submission state is left unchanged.
	ErrNotAnImage = errors.New("file is not an image")

	// ErrNoFileSelected is returned by Submit when no file has been
	// selected yet.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrSubmissionInFlight is returned when a second submission is
	// triggered while one is still running.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)
