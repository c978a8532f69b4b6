package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// CartTokenPattern определяет допустимый формат токена корзины
// Латинские буквы, цифры, '_', '-', '.'
var CartTokenPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// MaxCartTokenLen максимальная длина токена корзины
const MaxCartTokenLen = 64

// ErrInvalidCartToken токен корзины не проходит проверку
var ErrInvalidCartToken = errors.New("invalid cart token")

// ValidateCartToken проверяет токен корзины.
// Пустой токен допустим: такие запросы попадают в корзину по умолчанию.
func ValidateCartToken(token string) error {
	if token == "" {
		return nil
	}

	if len(token) > MaxCartTokenLen {
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidCartToken, MaxCartTokenLen)
	}

	if !CartTokenPattern.MatchString(token) {
		return fmt.Errorf("%w: can only contain letters, numbers, '_', '-' and '.'", ErrInvalidCartToken)
	}

	return nil
}
