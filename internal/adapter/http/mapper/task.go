package mapper

import (
	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
	}
}
