package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/sports-calendar/models"
)

var ErrInvalidToken = errors.New("invalid session token")

// Имена JWT claims
const (
	jwtClaimRole     = "role"
	jwtClaimEmail    = "email"
	jwtClaimName     = "name"
	jwtClaimIssuedAt = "iat"
)

// Sessions signs and verifies session tokens (HS256). Tokens carry no
// expiry claim: a session lasts until the client drops it.
type Sessions struct {
	secret []byte
	now    func() time.Time
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), now: time.Now}
}

func (s *Sessions) Issue(session *models.Session) (string, error) {
	if session == nil {
		return "", errors.New("nil session")
	}
	claims := jwt.MapClaims{
		jwtClaimRole:     string(session.Role),
		jwtClaimName:     session.Name,
		jwtClaimIssuedAt: s.now().Unix(),
	}
	if session.Email != "" {
		claims[jwtClaimEmail] = session.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Sessions) Parse(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	roleStr, _ := claims[jwtClaimRole].(string)
	session := &models.Session{Role: models.Role(roleStr)}
	session.Name, _ = claims[jwtClaimName].(string)
	session.Email, _ = claims[jwtClaimEmail].(string)

	switch session.Role {
	case models.RoleAdmin:
		return session, nil
	case models.RoleUser:
		if session.Email == "" {
			return nil, ErrInvalidToken
		}
		return session, nil
	default:
		return nil, ErrInvalidToken
	}
}
