package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// UsernamePattern определяет допустимый формат username.
// Username подставляется в путь /users/{username}, поэтому пробелы и "/" запрещены.
// Буквы (включая не латинские), цифры, "_", ".", "-" и "@"
var UsernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@-]+$`)

const (
	// MaxUsernameLen максимальная длина username в символах
	MaxUsernameLen = 64
	// MaxPasswordLen максимальная длина пароля в байтах
	MaxPasswordLen = 1024
)

// ValidateUsername проверяет username перед отправкой на сервер.
// Правила учетных записей проверяет сервер, здесь только то, что нужно клиенту.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if utf8.RuneCountInString(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, and _ . - @")
	}

	return nil
}

// ValidatePassword проверяет, что пароль задан
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}

	return nil
}
