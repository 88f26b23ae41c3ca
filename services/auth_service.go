// File: /services/auth_service.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamsync-api/models"
)

type AuthService struct {
	users    UserRepository
	empresas EmpresaRepository
	tokens   *TokenService
	logger   *slog.Logger
}

func NewAuthService(users UserRepository, empresas EmpresaRepository, tokens *TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, empresas: empresas, tokens: tokens, logger: logger}
}

type LoginResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *models.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// Guest accounts too.
		return nil, invalidInput("Email already registered")
	case !isNotFound(err):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Nome:     strings.TrimSpace(req.Nome),
		Email:    email,
		Password: string(hashed),
		Tipo:     models.UserTipo(req.Tipo),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "tipo", user.Tipo)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, unauthorized("Incorrect email or password")
		}
		return nil, err
	}
	if user.Guest {
		return nil, unauthorized("Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, unauthorized("Incorrect email or password")
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, TokenType: "bearer", ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, session *Session) (*models.User, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, unauthorized("Could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}

// GuestEmpresa returns the company a guest books for, creating the guest
// account on first use. Guest accounts get an unusable password and cannot
// log in.
func (s *AuthService) GuestEmpresa(ctx context.Context, email, nomeEmpresa string, telefone, localizacao *string) (*models.Empresa, error) {
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(nomeEmpresa) == "" {
		return nil, invalidInput("Email e nome da empresa são obrigatórios")
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !user.Guest {
			return nil, conflict("Email already registered, please log in")
		}
	case isNotFound(err):
		hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user = &models.User{
			ID:       uuid.New().String(),
			Nome:     strings.TrimSpace(nomeEmpresa),
			Email:    email,
			Password: string(hashed),
			Tipo:     models.UserTipoEmpresa,
			Guest:    true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("guest account created", "user_id", user.ID)
	default:
		return nil, err
	}

	empresa, err := s.empresas.FindByUserID(ctx, user.ID)
	if err == nil {
		return empresa, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	empresa = &models.Empresa{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Nome:        strings.TrimSpace(nomeEmpresa),
		Telefone:    telefone,
		Localizacao: localizacao,
	}
	if err := s.empresas.Create(ctx, empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
