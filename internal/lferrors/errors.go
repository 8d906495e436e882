package lferrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")
	ErrMatchExists  = errors.New("match already exists for item pair")
)

// business logic errors
var (
	ErrInvalidReport     = errors.New("invalid report")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrMissingAnswers    = errors.New("missing answers to security questions")
	ErrDuplicateQuestion = errors.New("duplicate security question")
)
