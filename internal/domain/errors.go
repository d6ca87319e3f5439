package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidLogin       = errors.New("invalid email or password")
	ErrChatNotFound       = errors.New("chat not found")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrDiseaseNotFound    = errors.New("disease not found")
	ErrInvalidRating      = errors.New("rating must be 1 to 5")
	ErrEmptyFeedback      = errors.New("feedback message is empty")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")

	// Remote collaborator failures. ErrRemoteUnavailable covers network
	// errors, timeouts and non-2xx statuses; ErrMalformedResponse covers a
	// 2xx body missing the expected field. Neither is retried here.
	ErrRemoteUnavailable = errors.New("remote collaborator unavailable")
	ErrMalformedResponse = errors.New("malformed collaborator response")
)
