package models

import (
	"errors"
	"fmt"
)

// ErrInvalidUser возвращается, если профиль пользователя не содержит username
var ErrInvalidUser = errors.New("user profile has no username")

// UserID is the server-side user identifier. Like recipe ids it may arrive
// as a JSON number or a string.
type UserID string

// UnmarshalJSON accepts "7", 7 and null.
func (id *UserID) UnmarshalJSON(data []byte) error {
	s, err := decodeID(data)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	*id = UserID(s)
	return nil
}

// User представляет профиль пользователя (Identity), полученный с сервера
type User struct {
	Username string `json:"username"`             // уникальный username
	ID       UserID `json:"id,omitempty"`         // идентификатор на сервере (если есть)
	Name     string `json:"name,omitempty"`       // отображаемое имя
	Email    string `json:"email,omitempty"`      // email
	Created  string `json:"created_at,omitempty"` // время создания в формате сервера
}

// Validate checks that the profile can be used to address per-user routes.
func (u *User) Validate() error {
	if u == nil || u.Username == "" {
		return ErrInvalidUser
	}
	return nil
}
