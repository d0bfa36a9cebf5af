package api

// LoginRequest представляет запрос на аутентификацию (POST /login)
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде, передается только по HTTPS
}

// TokenResponse представляет ответ на успешный логин
type TokenResponse struct {
	Token string `json:"token"` // непрозрачный bearer token
}

// ErrorResponse представляет JSON-тело ошибки, если сервер его отдает.
// Сервер может вернуть и обычный текст, поэтому тело ошибки всегда хранится как есть.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
