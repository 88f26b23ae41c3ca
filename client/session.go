// File: /client/session.go
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"teamsync-api/models"
)

var (
	ErrNotAuthenticated = errors.New("client: not authenticated")
	ErrRoleMismatch     = errors.New("client: account type not allowed")
)

// StoredSession is what survives a restart: the token and the cached user.
type StoredSession struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

type TokenStore interface {
	Load() (*StoredSession, error)
	Save(s *StoredSession) error
	Clear() error
}

// FileTokenStore keeps the session in a JSON file readable only by its owner.
type FileTokenStore struct {
	Path string
}

func (f FileTokenStore) Load() (*StoredSession, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stored StoredSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("read session %s: %w", f.Path, err)
	}
	return &stored, nil
}

func (f FileTokenStore) Save(s *StoredSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, raw, 0o600)
}

func (f FileTokenStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Session is the authenticated identity of a Client. It starts from whatever
// the store holds and is cleared by Logout.
type Session struct {
	mu    sync.RWMutex
	store TokenStore
	token string
	user  *models.User
}

// NewSession restores a session from store. A nil store keeps it in memory.
func NewSession(store TokenStore) (*Session, error) {
	s := &Session{store: store}
	if store == nil {
		return s, nil
	}
	stored, err := store.Load()
	if err != nil {
		return nil, err
	}
	if stored != nil && stored.AccessToken != "" {
		s.token = stored.AccessToken
		s.user = stored.User
	}
	return s, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

func (s *Session) set(token string, user *models.User) error {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Save(&StoredSession{AccessToken: token, User: user})
}

// Logout forgets the token and the cached user.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}

// Require fails unless the session belongs to one of tipos. No request is
// made, so callers check it before fetching anything.
func (s *Session) Require(tipos ...models.UserTipo) error {
	if s == nil {
		return ErrNotAuthenticated
	}
	user := s.User()
	if s.Token() == "" || user == nil {
		return ErrNotAuthenticated
	}
	if len(tipos) == 0 {
		return nil
	}
	for _, tipo := range tipos {
		if user.Tipo == tipo {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRoleMismatch, user.Tipo)
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	if c.Session == nil {
		return nil, errors.New("client: no session attached")
	}
	var resp loginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("client: login answered without a token")
	}
	if err := c.Session.set(resp.AccessToken, resp.User); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Register creates the account and logs straight in with it.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, nil); err != nil {
		return nil, err
	}
	return c.Login(ctx, req.Email, req.Password)
}

// Me refreshes the cached user from the server.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	if err := c.Session.Require(); err != nil {
		return nil, err
	}
	var user models.User
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	if err := c.Session.set(c.Session.Token(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
