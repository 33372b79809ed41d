package validation

import (
	"errors"
	"strings"
)

// ErrInvalid сопоставляется через errors.Is с любой ошибкой проверки схемы.
var ErrInvalid = errors.New("schema validation failed")

// Issue описывает одно нарушение схемы: путь к полю и ожидаемое ограничение.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	return path + ": " + i.Message
}

// SchemaError возвращается, когда значение не соответствует объявленной схеме.
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		parts = append(parts, i.String())
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

// Is позволяет проверять ошибку через errors.Is(err, ErrInvalid).
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalid
}

// NewError собирает SchemaError из списка нарушений или возвращает nil, если список пуст.
func NewError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &SchemaError{Issues: issues}
}
