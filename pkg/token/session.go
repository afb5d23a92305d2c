package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"spin2win/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateSessionToken Подписывает токен, Subject = ID сессии
func GenerateSessionToken(sessionID string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	return claims, nil
}
