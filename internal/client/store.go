package client

import (
	"context"
	"fmt"

	"todolist/internal/core/domain"
)

// Store is the client-side state container: the fetched task snapshot, the
// active filter, and the transient edit/delete surfaces. Every mutation
// issues one service call and, on success, refetches the full collection;
// the server's state always wins over any local guess. On failure the
// snapshot is left untouched and a notification is emitted.
//
// The store assumes a single logical writer and is not safe for concurrent
// use.
type Store struct {
	svc      Service
	notifier Notifier

	tasks         []domain.Task
	activeFilter  domain.Filter
	editingTask   *domain.Task
	pendingDelete *uint64
}

func NewStore(svc Service, notifier Notifier) *Store {
	return &Store{
		svc:          svc,
		notifier:     notifier,
		activeFilter: domain.FilterAll,
	}
}

// Refresh replaces the snapshot with the server's collection. On failure
// the previous snapshot is kept.
func (s *Store) Refresh(ctx context.Context) error {
	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// VisibleTasks derives the filtered view from the snapshot on every call;
// it is never cached independently.
func (s *Store) VisibleTasks() []domain.Task {
	return s.activeFilter.Apply(s.tasks)
}

func (s *Store) ActiveFilter() domain.Filter {
	return s.activeFilter
}

func (s *Store) SetFilter(f domain.Filter) {
	s.activeFilter = f
}

func (s *Store) Counts() (total, completed, remaining int) {
	total = len(s.tasks)
	for _, task := range s.tasks {
		if task.Completed {
			completed++
		}
	}
	remaining = total - completed
	return total, completed, remaining
}

func (s *Store) AddTask(ctx context.Context, text string) error {
	validated, err := domain.ValidateText(text)
	if err != nil {
		s.notifyError("Task not added", "Task text cannot be empty.")
		return err
	}

	if _, err := s.svc.CreateTask(ctx, validated); err != nil {
		s.notifyError("Task not added", err.Error())
		return err
	}

	return s.finishMutation(ctx, Notification{
		Title:       "Task added",
		Description: "Your new task has been added successfully.",
		Severity:    SeverityInfo,
	})
}

func (s *Store) ToggleTask(ctx context.Context, id uint64) error {
	task, ok := s.findTask(id)
	if !ok {
		s.notifyError("Task not updated", "Task no longer exists.")
		return domain.ErrTaskNotFound
	}

	task.Completed = !task.Completed
	if _, err := s.svc.UpdateTask(ctx, task); err != nil {
		s.notifyError("Task not updated", err.Error())
		return err
	}

	return s.finishMutation(ctx, Notification{
		Title:       "Task updated",
		Description: "Your task has been updated successfully.",
		Severity:    SeverityInfo,
	})
}

// BeginEdit opens the edit surface for one task, capturing its current text.
func (s *Store) BeginEdit(id uint64) (domain.Task, bool) {
	task, ok := s.findTask(id)
	if !ok {
		return domain.Task{}, false
	}
	s.editingTask = &task
	return task, true
}

func (s *Store) EditingTask() (domain.Task, bool) {
	if s.editingTask == nil {
		return domain.Task{}, false
	}
	return *s.editingTask, true
}

func (s *Store) CancelEdit() {
	s.editingTask = nil
}

// SubmitEdit replaces the text of the task being edited. Empty text is
// rejected locally before any network call and the edit surface stays open.
func (s *Store) SubmitEdit(ctx context.Context, text string) error {
	if s.editingTask == nil {
		return fmt.Errorf("no task is being edited")
	}

	validated, err := domain.ValidateText(text)
	if err != nil {
		s.notifyError("Task not updated", "Task text cannot be empty.")
		return err
	}

	task := *s.editingTask
	task.Text = validated
	if _, err := s.svc.UpdateTask(ctx, task); err != nil {
		s.notifyError("Task not updated", err.Error())
		return err
	}

	s.editingTask = nil
	return s.finishMutation(ctx, Notification{
		Title:       "Task updated",
		Description: "Your task has been updated successfully.",
		Severity:    SeverityInfo,
	})
}

// RequestDelete marks a single task id as awaiting confirmation.
func (s *Store) RequestDelete(id uint64) {
	s.pendingDelete = &id
}

func (s *Store) PendingDelete() (uint64, bool) {
	if s.pendingDelete == nil {
		return 0, false
	}
	return *s.pendingDelete, true
}

// CancelDelete clears the pending id with no side effects.
func (s *Store) CancelDelete() {
	s.pendingDelete = nil
}

func (s *Store) ConfirmDelete(ctx context.Context) error {
	if s.pendingDelete == nil {
		return fmt.Errorf("no delete is pending")
	}

	id := *s.pendingDelete
	s.pendingDelete = nil

	if err := s.svc.DeleteTask(ctx, id); err != nil {
		s.notifyError("Task not deleted", err.Error())
		return err
	}

	return s.finishMutation(ctx, Notification{
		Title:       "Task deleted",
		Description: "Your task has been deleted successfully.",
		Severity:    SeverityDestructive,
	})
}

// ClearCompleted deletes every completed task in the snapshot, one call per
// task. The loop is sequential and has no compensation: a partial failure
// leaves whichever deletes succeeded applied, and the refetch afterwards
// reflects that mixed state.
func (s *Store) ClearCompleted(ctx context.Context) error {
	var firstErr error
	deleted := 0
	for _, task := range s.tasks {
		if !task.Completed {
			continue
		}
		if err := s.svc.DeleteTask(ctx, task.ID); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		deleted++
	}

	if firstErr != nil {
		s.notifyError("Completed tasks not cleared", firstErr.Error())
		if deleted > 0 {
			// Some deletes landed; resync so the snapshot reflects them.
			if err := s.Refresh(ctx); err != nil {
				return err
			}
		}
		return firstErr
	}

	return s.finishMutation(ctx, Notification{
		Title:       "Completed tasks cleared",
		Description: "All completed tasks have been removed.",
		Severity:    SeverityInfo,
	})
}

func (s *Store) findTask(id uint64) (domain.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

// finishMutation runs the shared tail of the mutation protocol: refetch the
// canonical collection, then report the outcome.
func (s *Store) finishMutation(ctx context.Context, success Notification) error {
	if err := s.Refresh(ctx); err != nil {
		s.notifyError("Refresh failed", err.Error())
		return err
	}
	s.notify(success)
	return nil
}

func (s *Store) notify(n Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}

func (s *Store) notifyError(title, description string) {
	s.notify(Notification{Title: title, Description: description, Severity: SeverityError})
}
