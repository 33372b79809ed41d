package rewardful

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnknownEndpoint возвращается при вызове необъявленного эндпоинта.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// APIError: задокументированная ошибка API: тело ответа соответствует схеме ошибки эндпоинта.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rewardful: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("rewardful: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// HTTPError: ответ с кодом, для которого нет описания, либо с телом ошибки, не прошедшим проверку.
type HTTPError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("rewardful: unexpected status %d", e.Status)
	if len(e.Body) > 0 {
		msg += ": " + truncate(string(e.Body), 512)
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// IsNotFound сообщает, что API ответил 404.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized сообщает, что API отклонил секрет.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
