// Package session issues and verifies the signed tokens that back admin
// UI sessions. Tokens are HMAC-signed JWTs carried in a cookie; the
// signing secret comes from the SESSION_SECRET environment variable.
package session

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"townclerk/pkg/identity"
	"townclerk/pkg/model"
)

// ErrInvalidToken is returned for tokens that fail signature or claim
// validation, including expired tokens.
var ErrInvalidToken = errors.New("invalid session token")

// Claims are the JWT claims carried by a session token.
type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session manager. The secret must be non-empty.
func NewManager(secret []byte, ttl time.Duration) (*Manager, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("session TTL must be positive")
	}
	return &Manager{secret: secret, ttl: ttl}, nil
}

// SecretFromEnv reads the signing secret from SESSION_SECRET.
func SecretFromEnv() ([]byte, error) {
	secret, ok := os.LookupEnv("SESSION_SECRET")
	if !ok || secret == "" {
		return nil, errors.New("SESSION_SECRET environment variable is required")
	}
	return []byte(secret), nil
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed session token for an admin account.
func (m *Manager) Issue(admin *model.Admin, now time.Time) (string, error) {
	claims := Claims{
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		Role:        admin.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token and returns the identity it
// carries. Expired or tampered tokens yield ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (*identity.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role, err := model.RoleString(claims.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}

	id := &identity.Identity{
		AdminID:     adminID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Role:        role,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}
