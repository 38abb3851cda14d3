// Package session implements the cookie-backed browser session: the signed
// token codec, the cookie store, and the login/logout manager on top of them.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// TokenTTL bounds a session's lifetime from issuance.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// Payload is the decoded content of a session token.
type Payload struct {
	UserID    string
	IssuedAt  time.Time
	SessionID string
	CSRFToken string
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	CSRFToken string `json:"csrf"`
	jwt.RegisteredClaims
}

type userClaims struct {
	User domain.User `json:"user"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with HS256 under a shared secret.
// The clock is injected so expiry can be tested without waiting seven days.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a codec. A zero ttl falls back to TokenTTL; a nil clock
// falls back to time.Now.
func NewCodec(secret string, ttl time.Duration, now func() time.Time) *Codec {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: now}
}

// EncodeSession issues a session token for user, with fresh session and CSRF
// identifiers.
func (c *Codec) EncodeSession(user *domain.User) (string, *Payload, error) {
	now := c.now().UTC()
	payload := &Payload{
		UserID:    user.ID,
		IssuedAt:  now,
		SessionID: randomHex(16),
		CSRFToken: randomHex(32),
	}

	claims := sessionClaims{
		SessionID: payload.SessionID,
		CSRFToken: payload.CSRFToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", nil, fmt.Errorf("encode session: %w", err)
	}
	return token, payload, nil
}

// EncodeUser signs the user snapshot stored alongside the session token.
func (c *Codec) EncodeUser(user *domain.User) (string, error) {
	now := c.now().UTC()
	claims := userClaims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("encode user: %w", err)
	}
	return token, nil
}

// DecodeSession verifies a session token. Corrupted, forged, and expired
// tokens all come back as ErrInvalidToken.
func (c *Codec) DecodeSession(token string) (*Payload, error) {
	claims := &sessionClaims{}
	if err := c.parse(token, claims); err != nil {
		return nil, err
	}
	return &Payload{
		UserID:    claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		SessionID: claims.SessionID,
		CSRFToken: claims.CSRFToken,
	}, nil
}

// DecodeUser verifies a user snapshot token.
func (c *Codec) DecodeUser(token string) (*domain.User, error) {
	claims := &userClaims{}
	if err := c.parse(token, claims); err != nil {
		return nil, err
	}
	user := claims.User
	return &user, nil
}

func (c *Codec) parse(token string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
