// Package api implements the client.Service interface against the REST API
// served by cmd/api.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
	"todolist/pkg/apierrors"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var items []dto.TaskItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}

	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, toDomainTask(item))
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, text string) (domain.Task, error) {
	payload := map[string]string{"text": text}
	resp, err := c.do(ctx, http.MethodPost, "/api/tasks", payload)
	if err != nil {
		return domain.Task{}, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusCreated {
		return domain.Task{}, responseError(resp)
	}

	var item dto.TaskItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return domain.Task{}, fmt.Errorf("decode created task: %w", err)
	}
	return toDomainTask(item), nil
}

func (c *Client) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	payload := map[string]any{
		"text":      task.Text,
		"completed": task.Completed,
	}
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), payload)
	if err != nil {
		return domain.Task{}, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return domain.Task{}, responseError(resp)
	}

	var item dto.TaskItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return domain.Task{}, fmt.Errorf("decode updated task: %w", err)
	}
	return toDomainTask(item), nil
}

func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent {
		return responseError(resp)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// responseError maps an error response onto the domain error taxonomy.
// Missing resources surface as domain.ErrTaskNotFound so callers can match
// with errors.Is; other statuses carry the server's translated message.
func responseError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrTaskNotFound
	}

	var jsonErr apierrors.JsonErr
	if err := json.NewDecoder(resp.Body).Decode(&jsonErr); err == nil && jsonErr.ErrDetails.Message != "" {
		return fmt.Errorf("server responded %d: %s", resp.StatusCode, jsonErr.ErrDetails.Message)
	}
	return fmt.Errorf("server responded %d", resp.StatusCode)
}

func closeBody(resp *http.Response) {
	_ = resp.Body.Close()
}

func toDomainTask(item dto.TaskItem) domain.Task {
	return domain.Task{
		ID:        item.ID,
		Text:      item.Text,
		Completed: item.Completed,
	}
}
