// internal/utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims is the ephemeral session identity. The capability flags are
// baked into the token because they gate affordances (review submission,
// creator analytics) without any account record to look them up in.
type SessionClaims struct {
	SessionID    string `json:"session_id"`
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	IsVerified   bool   `json:"is_verified"`
	IsBlogger    bool   `json:"is_blogger"`
	IsInfluencer bool   `json:"is_influencer"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("your-secret-key-change-in-production")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateSessionToken(sessionID, name, provider string, isVerified, isBlogger, isInfluencer bool, ttlHours int) (string, error) {
	claims := SessionClaims{
		SessionID:    sessionID,
		Name:         name,
		Provider:     provider,
		IsVerified:   isVerified,
		IsBlogger:    isBlogger,
		IsInfluencer: isInfluencer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "trustpulse",
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
