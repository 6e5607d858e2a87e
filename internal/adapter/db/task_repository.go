package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID        uint64 `db:"id"`
	Text      string `db:"text"`
	Completed bool   `db:"completed"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, text, completed FROM tasks ORDER BY id"); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, bool, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT id, text, completed FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, false, nil
	}
	if err != nil {
		return domain.Task{}, false, err
	}

	return mapTaskRowToDomainTask(row), true, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO tasks (text, completed) VALUES (?, ?)", input.Text, false)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task{ID: uint64(id), Text: input.Text, Completed: false}, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE tasks SET text = ?, completed = ? WHERE id = ?",
		task.Text,
		task.Completed,
		task.ID,
	)
	return err
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
	}
}
