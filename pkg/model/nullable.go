package model

import (
	"bytes"
	"encoding/json"
)

// Nullable хранит значение, которое в запросе может быть явно передано как null.
// Вместе с указателем (*Nullable[T] и omitempty) даёт три состояния: поле отсутствует, null или значение.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Value создаёт заполненное значение.
func Value[T any](v T) *Nullable[T] {
	return &Nullable[T]{Value: v, Valid: true}
}

// Null создаёт явный null.
func Null[T any]() *Nullable[T] {
	return &Nullable[T]{}
}

// MarshalJSON кодирует null для незаполненного значения.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON принимает null или значение типа T.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value, n.Valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
