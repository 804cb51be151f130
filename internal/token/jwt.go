package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/storefront/internal/model"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or type checks.
var ErrInvalidToken = errors.New("invalid session token")

const typeSession = "session"

// Claims represents JWT claims carrying the session state.
type Claims struct {
	jwt.RegisteredClaims
	Email     string   `json:"email,omitempty"`
	Cart      []string `json:"cart,omitempty"`
	TokenType string   `json:"typ"`
}

// JWT encodes session state into HMAC-signed tokens.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a session codec signing with secretKey. Tokens expire after ttl.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// Encode signs state into a token string.
func (j *JWT) Encode(state model.SessionState) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email:     state.AuthenticatedEmail,
		Cart:      state.CartItemIDs,
		TokenType: typeSession,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Decode validates tokenString and extracts the session state.
func (j *JWT) Decode(tokenString string) (model.SessionState, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.SessionState{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.SessionState{}, ErrInvalidToken
	}
	if claims.TokenType != typeSession {
		return model.SessionState{}, fmt.Errorf("%w: token type mismatch: %s", ErrInvalidToken, claims.TokenType)
	}

	return model.SessionState{
		AuthenticatedEmail: claims.Email,
		CartItemIDs:        claims.Cart,
	}, nil
}
