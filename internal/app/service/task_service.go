package service

import (
	"context"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	text, err := domain.ValidateText(input.Text)
	if err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.CreateTask(ctx, domain.CreateTaskInput{Text: text})
}

// UpdateTask merges the supplied fields into the stored task. The existence
// check is a distinct read so that a missing task and a failed write remain
// separate outcomes.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	var text *string
	if input.Text != nil {
		validated, err := domain.ValidateText(*input.Text)
		if err != nil {
			return domain.Task{}, err
		}
		text = &validated
	}

	task, found, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if text != nil {
		task.Text = *text
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	_, found, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrTaskNotFound
	}

	if _, err := s.taskRepository.DeleteTask(ctx, id); err != nil {
		return err
	}

	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
