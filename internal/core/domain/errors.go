package domain

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTaskText = errors.New("task text is empty")
	ErrInvalidFilter = errors.New("invalid filter")
)
