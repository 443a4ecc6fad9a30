// Package api is the client of the notes backend REST API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/notebot/internal/catalog"
)

const (
	DefaultBaseURL = "https://ptec-notebot-server.vercel.app"
	DefaultTimeout = 10 * time.Second
)

//go:generate mockgen -source=client.go -destination=../mocks/api/mock_client.go -package=mock_api

// Client fetches the catalog collections.
type Client interface {
	Levels(ctx context.Context) ([]catalog.Level, error)
	Courses(ctx context.Context) ([]catalog.Course, error)
	CoursesByLevel(ctx context.Context, levelID string) ([]catalog.Course, error)
	Notes(ctx context.Context) ([]catalog.Note, error)
	NotesByCourse(ctx context.Context, courseID string) ([]catalog.Note, error)
}

// Error is returned for every failed request. Message is what is shown to users.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message of err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func (e *Error) retryable() bool {
	if e.StatusCode == 0 {
		return e.Err != nil && !errors.Is(e.Err, context.Canceled) && !errors.Is(e.Err, context.DeadlineExceeded)
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type HTTPClient struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

var _ Client = (*HTTPClient)(nil)

func NewClient(baseURL string, timeout time.Duration, retryAttempts uint) *HTTPClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &HTTPClient{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

func (client *HTTPClient) Levels(ctx context.Context) ([]catalog.Level, error) {
	return fetch[catalog.Level](ctx, client, "/levels", nil, "Failed to fetch levels")
}

func (client *HTTPClient) Courses(ctx context.Context) ([]catalog.Course, error) {
	return fetch[catalog.Course](ctx, client, "/courses", nil, "Failed to fetch courses")
}

func (client *HTTPClient) CoursesByLevel(ctx context.Context, levelID string) ([]catalog.Course, error) {
	return fetch[catalog.Course](ctx, client, "/courses_level/{levelId}",
		map[string]string{"levelId": levelID}, "Failed to fetch courses by level")
}

func (client *HTTPClient) Notes(ctx context.Context) ([]catalog.Note, error) {
	return fetch[catalog.Note](ctx, client, "/notes", nil, "Failed to fetch notes")
}

func (client *HTTPClient) NotesByCourse(ctx context.Context, courseID string) ([]catalog.Note, error) {
	return fetch[catalog.Note](ctx, client, "/notes_course/{courseId}",
		map[string]string{"courseId": courseID}, "Failed to fetch notes by course")
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

func fetch[T any](
	ctx context.Context,
	client *HTTPClient,
	path string,
	pathParams map[string]string,
	fallback string,
) ([]T, error) {
	var result []T
	if err := retry.Do(
		func() error {
			items, err := get[T](ctx, client.httpClient, path, pathParams, fallback)
			if err != nil {
				if !err.retryable() {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = items
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func get[T any](
	ctx context.Context,
	httpClient *resty.Client,
	path string,
	pathParams map[string]string,
	fallback string,
) ([]T, *Error) {
	response, err := httpClient.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetResult(&dataEnvelope[T]{}).
		SetError(&errorBody{}).
		Get(path)
	if err != nil {
		return nil, &Error{Message: fallback, Err: fmt.Errorf("httpClient.Get(%s) > %w", path, err)}
	}
	if response.IsError() {
		message := fallback
		if body, ok := response.Error().(*errorBody); ok && body.Message != "" {
			message = body.Message
		}
		return nil, &Error{StatusCode: response.StatusCode(), Message: message}
	}

	envelope, ok := response.Result().(*dataEnvelope[T])
	if !ok || envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}
