// Package jwtutil mints and verifies the signed session credential. The
// token is the only authorization proof the server recognizes: there is no
// server-side session state and no revocation list, so a stolen token stays
// valid until its natural expiry.
package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the public profile fields asserted by a session credential.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uint   `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// Principal is the verified identity handed to downstream handlers.
type Principal struct {
	UserID    uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

func GenerateToken(secret string, expiration time.Duration, p Principal) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Username:  p.Username,
		Email:     p.Email,
	})
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (c *Claims) Principal() Principal {
	return Principal{
		UserID:    c.UserID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Username:  c.Username,
		Email:     c.Email,
	}
}
