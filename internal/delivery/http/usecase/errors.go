package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyMessage = errors.New("message cannot be empty")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrCollegeNotFound    = errors.New("college not found")
	ErrQuizNotTaken       = errors.New("quiz not taken yet")
)
