package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var formatValidator = validator.New()

// IsUUID проверяет строку на канонический вид UUID (36 символов с дефисами).
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsEmail проверяет адрес электронной почты.
func IsEmail(s string) bool {
	return formatValidator.Var(s, "email") == nil
}

// IsURL проверяет абсолютный URL со схемой.
func IsURL(s string) bool {
	return formatValidator.Var(s, "url") == nil
}

// IsDateTime проверяет отметку времени ISO-8601 с зоной; дробные секунды допускаются.
func IsDateTime(s string) bool {
	return formatValidator.Var(s, "datetime="+time.RFC3339) == nil
}

func checkFormat(f Format, s string) bool {
	switch f {
	case FormatUUID:
		return IsUUID(s)
	case FormatEmail:
		return IsEmail(s)
	case FormatURL:
		return IsURL(s)
	case FormatDateTime:
		return IsDateTime(s)
	default:
		return true
	}
}
