package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/domain"
	"todolist/pkg/apierrors"
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTaskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/tasks", handler.ListTasks)
	api.POST("/tasks", handler.CreateTask)
	api.PUT("/tasks/:id", handler.UpdateTask)
	api.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything).Return(
		[]domain.Task{
			{ID: 1, Text: "Buy milk", Completed: false},
			{ID: 2, Text: "Walk dog", Completed: true},
		},
		nil,
	).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, uint64(1), got[0].ID)
	require.Equal(t, "Buy milk", got[0].Text)
	require.False(t, got[0].Completed)
	require.Equal(t, uint64(2), got[1].ID)
	require.True(t, got[1].Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_EmptyCollection(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything).Return([]domain.Task{}, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything).Return(nil, errors.New("db is down")).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodGet, "/api/tasks", "")

	requireAPIError(t, rec, http.StatusInternalServerError, "failed to list tasks")
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, domain.CreateTaskInput{Text: "Buy milk"}).
		Return(domain.Task{ID: 1, Text: "Buy milk", Completed: false}, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodPost, "/api/tasks", `{"text":"Buy milk"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "Buy milk", got.Text)
	require.False(t, got.Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidPayload(t *testing.T) {
	cases := map[string]string{
		"missing text":         `{}`,
		"null text":            `{"text":null}`,
		"empty text":           `{"text":""}`,
		"whitespace text":      `{"text":"   "}`,
		"wrong text type":      `{"text":42}`,
		"wrong completed type": `{"text":"Buy milk","completed":"yes"}`,
		"not json":             `not json`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			serviceMock := new(taskServiceMock)
			router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

			rec := doJSON(t, router, http.MethodPost, "/api/tasks", body)

			requireAPIError(t, rec, http.StatusBadRequest, "invalid task payload")
			serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
		})
	}
}

func TestTaskHandler_CreateTask_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, domain.CreateTaskInput{Text: "Buy milk"}).
		Return(domain.Task{}, errors.New("db is down")).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodPost, "/api/tasks", `{"text":"Buy milk"}`)

	requireAPIError(t, rec, http.StatusInternalServerError, "failed to create task")
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	completed := true
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(1), mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.Text != nil && *input.Text == "Buy oat milk" &&
			input.Completed != nil && *input.Completed == completed
	})).Return(domain.Task{ID: 1, Text: "Buy oat milk", Completed: true}, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodPut, "/api/tasks/1", `{"text":"Buy oat milk","completed":true}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "Buy oat milk", got.Text)
	require.True(t, got.Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_InvalidTaskID(t *testing.T) {
	for _, path := range []string{"/api/tasks/invalid", "/api/tasks/0"} {
		serviceMock := new(taskServiceMock)
		router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

		rec := doJSON(t, router, http.MethodPut, path, `{"completed":true}`)

		requireAPIError(t, rec, http.StatusBadRequest, "invalid task id")
		serviceMock.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestTaskHandler_UpdateTask_InvalidPayload(t *testing.T) {
	cases := map[string]string{
		"no fields":       `{}`,
		"null text":       `{"text":null}`,
		"empty text":      `{"text":"  "}`,
		"null completed":  `{"completed":null}`,
		"wrong text type": `{"text":[1]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			serviceMock := new(taskServiceMock)
			router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

			rec := doJSON(t, router, http.MethodPut, "/api/tasks/1", body)

			requireAPIError(t, rec, http.StatusBadRequest, "invalid task payload")
			serviceMock.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(999), mock.Anything).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodPut, "/api/tasks/999", `{"text":"x"}`)

	requireAPIError(t, rec, http.StatusNotFound, "task not found")
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(1), mock.Anything).
		Return(domain.Task{}, errors.New("db is down")).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodPut, "/api/tasks/1", `{"completed":true}`)

	requireAPIError(t, rec, http.StatusInternalServerError, "failed to update task")
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(1)).Return(nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodDelete, "/api/tasks/1", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_InvalidTaskID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodDelete, "/api/tasks/invalid", "")

	requireAPIError(t, rec, http.StatusBadRequest, "invalid task id")
	serviceMock.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(999)).Return(domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodDelete, "/api/tasks/999", "")

	requireAPIError(t, rec, http.StatusNotFound, "task not found")
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(1)).Return(errors.New("db is down")).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	rec := doJSON(t, router, http.MethodDelete, "/api/tasks/1", "")

	requireAPIError(t, rec, http.StatusInternalServerError, "failed to delete task")
	serviceMock.AssertExpectations(t)
}
