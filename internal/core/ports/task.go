package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	// GetTask reports absence through the boolean, not an error.
	GetTask(ctx context.Context, id uint64) (domain.Task, bool, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	// DeleteTask returns false when no row existed. Deleting a missing id
	// is not an error.
	DeleteTask(ctx context.Context, id uint64) (bool, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
