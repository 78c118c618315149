package utils

import "errors"

// Fatal errors abort the operation at the transport level. Domain outcomes
// (ownership failures, not-found, duplicates) travel inside response
// envelopes instead and never surface here.
var (
	ErrInvalidToken  = errors.New("token is invalid")
	ErrDatabaseError = errors.New("database error")
)
