package domain

import "errors"

var (
	// ErrValidation is returned for malformed or missing input.
	ErrValidation = errors.New("invalid input")
	// ErrQuizNotFound indicates the referenced quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUnavailable indicates an upstream service could not be reached
	// or answered with an error status.
	ErrUnavailable = errors.New("upstream service unavailable")
)
