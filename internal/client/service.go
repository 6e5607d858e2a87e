// Package client holds the client-side view of the task collection: a
// state container over a remote task service, plus the filter engine that
// derives the visible subset.
package client

import (
	"context"

	"todolist/internal/core/domain"
)

// Service is the remote task API as the client sees it.
type Service interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, text string) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
