package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested character does not exist in the roster.
	ErrNotFound = errors.New("character not found")

	// ErrBind indicates the callback listener could not bind its port.
	// Fatal to the whole auth attempt.
	ErrBind = errors.New("callback bind failed")

	// ErrParse indicates a malformed or missing callback query string.
	// Fatal to the auth attempt in progress.
	ErrParse = errors.New("callback parse failed")

	// ErrRemoteAPI indicates a non-success response or malformed body from
	// the remote API. Fatal in the auth path, isolated per character in the
	// stats path.
	ErrRemoteAPI = errors.New("remote API error")

	// ErrCorruptRoster indicates the roster file exists but cannot be decoded.
	ErrCorruptRoster = errors.New("corrupt roster file")

	// ErrInvalidConfig indicates required configuration is missing.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidQueueEntry indicates a skill queue entry with unparseable
	// timestamps.
	ErrInvalidQueueEntry = errors.New("invalid skill queue entry")
)
