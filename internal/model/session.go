package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"spin2win/internal/engine/session"
)

// Session Метаданные стратегической сессии
type Session struct {
	ID        string
	Preset    string
	CreatedAt time.Time
	// ExpiresAt Истекает вместе с токеном; нулевое значение без срока
	ExpiresAt time.Time
}

// CreateSession Запрос на создание сессии: пресет или явная конфигурация
type CreateSession struct {
	Preset string
	Config *session.Config
}

// SessionData Ответ на создание сессии
type SessionData struct {
	Session  Session
	Token    string
	Snapshot session.Snapshot
}

// SessionClaims Клеймы токена сессии, Subject = ID сессии
type SessionClaims struct {
	jwt.RegisteredClaims
}
