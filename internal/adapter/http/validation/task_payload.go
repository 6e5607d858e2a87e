package validation

import (
	"encoding/json"
	"errors"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput validates a create payload. Text is required and must
// not be empty after trimming; completed is forced to false on creation, but
// an explicit null still rejects the payload.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if req.Text == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	text, err := domain.ValidateText(*req.Text)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{Text: text}, nil
}

// BuildUpdateTaskInput validates an update payload. At least one of text or
// completed must be present, and neither may be null.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasJSONField(raw, "text") && !hasJSONField(raw, "completed") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var text *string
	if hasJSONField(raw, "text") {
		if req.Text == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		validated, err := domain.ValidateText(*req.Text)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		text = &validated
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Text:      text,
		Completed: req.Completed,
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
