// File: /services/token_service.go
package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"teamsync-api/models"
)

// Session is the authenticated caller of one request.
type Session struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Tipo   models.UserTipo `json:"tipo"`
}

// Is reports whether the caller has one of the given account types.
func (s *Session) Is(tipos ...models.UserTipo) bool {
	if s == nil {
		return false
	}
	for _, t := range tipos {
		if s.Tipo == t {
			return true
		}
	}
	return false
}

func (s *Session) IsAdmin() bool {
	return s.Is(models.UserTipoAdmin)
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Tipo   string `json:"tipo"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a bearer token for user.
func (ts *TokenService) Issue(user *models.User) (string, time.Time, error) {
	now := ts.now()
	expiresAt := now.Add(ts.ttl)
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Tipo:   string(user.Tipo),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a bearer token and returns the session it carries.
func (ts *TokenService) Parse(tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return ts.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ts.now))
	if err != nil {
		return nil, unauthorized("Could not validate credentials")
	}
	if !token.Valid || claims.UserID == "" {
		return nil, unauthorized("Could not validate credentials")
	}

	tipo := models.UserTipo(claims.Tipo)
	if !tipo.Valid() {
		return nil, unauthorized("Could not validate credentials")
	}
	return &Session{UserID: claims.UserID, Email: claims.Email, Tipo: tipo}, nil
}

// requireSession guards service methods that need a caller.
func requireSession(s *Session, tipos ...models.UserTipo) error {
	if s == nil {
		return unauthorized("Not authenticated")
	}
	if len(tipos) > 0 && !s.Is(tipos...) {
		return forbidden("Not enough permissions")
	}
	return nil
}
