package model

import "errors"

var (
	// ErrInvalidInput is returned for malformed or missing request fields.
	// Rejected before any state change.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionNotFound is returned when a session id is unknown.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuestionNotFound indicates a referenced question id is not in the bank.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAlreadyFinalized is returned on a duplicate submit. The first
	// submission's result is never overwritten.
	ErrAlreadyFinalized = errors.New("quiz session already finalized")
)
