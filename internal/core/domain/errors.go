package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrLabelNotFound      = errors.New("label not found")
	ErrStatusNotFound     = errors.New("status not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInUse              = errors.New("record is referenced by tasks")
)
