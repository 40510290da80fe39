package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/boardgame-tracker/models"
)

// requireField возвращает ошибку валидации, если обязательное поле не передано.
func requireField[T any](v *T, name string) error {
	if v == nil {
		return fmt.Errorf("%w: %s is required", ErrValidationFailed, name)
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optionalID нормализует id из запроса: пустое значение означает "сгенерировать".
func optionalID(id *string) string {
	return strings.TrimSpace(derefString(id))
}

func parseOptionalDate(s *string) (*models.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := models.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
