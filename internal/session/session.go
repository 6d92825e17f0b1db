// Package session replaces the original admin area's process-wide auth flag
// with an explicit session value and pure login/logout transitions. Tokens
// are self-signed HMAC JWTs; there is exactly one admin principal.
package session

import (
	"crypto/subtle"
	"time"

	"heritageloom/pkg/errors"

	"github.com/golang-jwt/jwt/v4"
)

type Session struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Manager struct {
	secret        []byte
	expiry        time.Duration
	adminUsername string
	adminPassword string
}

func NewManager(secret string, expiry time.Duration, adminUsername, adminPassword string) *Manager {
	return &Manager{
		secret:        []byte(secret),
		expiry:        expiry,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login checks the configured admin credential and mints a session. A
// gateway with no ADMIN_PASSWORD set refuses all logins rather than
// accepting empty ones.
func (m *Manager) Login(username, password string) (Session, error) {
	if m.adminPassword == "" {
		return Session{}, errors.Unauthorized("admin login is not configured", nil)
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.adminPassword)) == 1
	if !userOK || !passOK {
		return Session{}, errors.Unauthorized("invalid username or password", nil)
	}

	expiresAt := time.Now().Add(m.expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Session{}, errors.Internal("failed to sign session token", err)
	}
	return Session{Username: username, Token: signed, ExpiresAt: expiresAt}, nil
}

// Logout is a pure transition to the signed-out state. Tokens are not
// revocable server-side; callers drop them.
func (m *Manager) Logout(Session) Session {
	return Session{}
}

// Verify parses a bearer token and returns the signed-in username.
func (m *Manager) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method", nil)
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.Unauthorized("invalid or expired token", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.Unauthorized("invalid or expired token", nil)
	}
	return claims.Subject, nil
}
