package domain

import "strings"

type Task struct {
	ID        uint64
	Text      string
	Completed bool
}

type CreateTaskInput struct {
	Text string
}

// UpdateTaskInput carries a partial task update. A nil field keeps the
// stored value; a supplied field replaces the stored value whole.
type UpdateTaskInput struct {
	Text      *string
	Completed *bool
}

// ValidateText trims task text and rejects it when nothing remains.
// Every path that stores text goes through this check.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyTaskText
	}
	return trimmed, nil
}
