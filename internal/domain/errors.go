package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrValidation        = errors.New("invoice validation failed")
	ErrSubmissionFailed  = errors.New("invoice submission failed")
	ErrProfileIncomplete = errors.New("supplier profile is incomplete")
)
