package dto

type TaskItem struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}
