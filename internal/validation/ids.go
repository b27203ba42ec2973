package validation

import (
	"fmt"
	"regexp"
)

// IDPattern определяет допустимый формат идентификаторов (вопросов, пользователей, документов)
// Латинские буквы, цифры и символы . _ : - ; первый символ - буква или цифра
var IDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._:-]*$`)

const (
	// MaxIDLen максимальная длина идентификатора
	MaxIDLen = 128
	// MinQuality минимальная оценка ответа
	MinQuality = 0
	// MaxQuality максимальная оценка ответа
	MaxQuality = 5
)

// ValidateID проверяет, что идентификатор соответствует требованиям
func ValidateID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s cannot be empty", kind)
	}

	if len(id) > MaxIDLen {
		return fmt.Errorf("%s must not exceed %d characters", kind, MaxIDLen)
	}

	if !IDPattern.MatchString(id) {
		return fmt.Errorf("%s can only contain letters, numbers, '.', '_', ':' and '-'", kind)
	}

	return nil
}

// ValidateQuality проверяет, что оценка ответа в диапазоне 0..5
func ValidateQuality(q int) error {
	if q < MinQuality || q > MaxQuality {
		return fmt.Errorf("quality must be between %d and %d, got %d", MinQuality, MaxQuality, q)
	}
	return nil
}
