package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token scopes. Access and refresh tokens differ only in lifetime and
// scope; the scope check is what stops a refresh token from being used
// as an access token (and vice versa).
const (
	ScopeAccess  = "access_token"
	ScopeRefresh = "refresh_token"
	ScopeEmail   = "email_token"
)

var (
	ErrInvalidToken      = errors.New("could not validate credentials")
	ErrInvalidTokenScope = errors.New("invalid scope for token")
)

// JWTManager issues and verifies HS256 tokens signed with a single
// process-wide secret. The subject claim carries the user's email.
type JWTManager struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	EmailTTL   time.Duration
}

func NewJWTManager(secret string, accessTTL, refreshTTL, emailTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:     []byte(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		EmailTTL:   emailTTL,
	}
}

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (m *JWTManager) generate(email, scope string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims := &Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) GenerateAccessToken(email string) (string, time.Time, error) {
	return m.generate(email, ScopeAccess, m.AccessTTL)
}

func (m *JWTManager) GenerateRefreshToken(email string) (string, time.Time, error) {
	return m.generate(email, ScopeRefresh, m.RefreshTTL)
}

// GenerateEmailToken issues the token embedded in confirmation links.
func (m *JWTManager) GenerateEmailToken(email string) (string, time.Time, error) {
	return m.generate(email, ScopeEmail, m.EmailTTL)
}

// ParseAccessToken verifies signature, expiry and scope, returning the
// subject email.
func (m *JWTManager) ParseAccessToken(tokenStr string) (string, error) {
	return m.parse(tokenStr, ScopeAccess)
}

func (m *JWTManager) ParseRefreshToken(tokenStr string) (string, error) {
	return m.parse(tokenStr, ScopeRefresh)
}

func (m *JWTManager) ParseEmailToken(tokenStr string) (string, error) {
	return m.parse(tokenStr, ScopeEmail)
}

func (m *JWTManager) parse(tokenStr, scope string) (string, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}
	if claims.Scope != scope {
		return "", ErrInvalidTokenScope
	}
	return claims.Subject, nil
}
