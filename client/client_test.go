package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
)

func newTestServer(t *testing.T, setup func(r *gin.Engine)) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setup(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// loggedIn returns a client whose session already holds a token for tipo.
func loggedIn(t *testing.T, baseURL string, tipo models.UserTipo) *Client {
	t.Helper()
	session, err := NewSession(nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := session.set("tok-123", &models.User{ID: "u-1", Email: "ana@acme.pt", Tipo: tipo}); err != nil {
		t.Fatalf("set session: %v", err)
	}
	c := New(baseURL, session)
	c.PollInterval = 1
	return c
}

func TestClient_Do(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/auth/me", func(c *gin.Context) {
			if c.GetHeader("Authorization") != "Bearer tok-123" {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": "u-1", "email": "ana@acme.pt", "tipo": "empresa"})
		})
		r.GET("/conflict", func(c *gin.Context) {
			c.JSON(http.StatusConflict, gin.H{"detail": "Proposta já foi aceite", "code": "conflict"})
		})
		r.GET("/fields", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []string{"not a string"}, "errors": []gin.H{{"field": "localizacao", "message": "Por favor, informe a localização"}}})
		})
		r.GET("/html", func(c *gin.Context) {
			c.String(http.StatusBadGateway, "<html>bad gateway</html>")
		})
	})

	c := loggedIn(t, srv.URL, models.UserTipoEmpresa)
	ctx := context.Background()

	user, err := c.Me(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "u-1" {
		t.Fatalf("unexpected user %+v", user)
	}

	tests := []struct {
		path   string
		status int
		detail string
	}{
		{"/conflict", http.StatusConflict, "Proposta já foi aceite"},
		{"/fields", http.StatusUnprocessableEntity, "Por favor, informe a localização"},
		{"/html", http.StatusBadGateway, GenericErrorDetail},
	}
	for _, tt := range tests {
		err := c.Do(ctx, http.MethodGet, tt.path, nil, nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("%s: expected APIError, got %v", tt.path, err)
		}
		if apiErr.Status != tt.status || apiErr.Detail != tt.detail {
			t.Fatalf("%s: unexpected error %+v", tt.path, apiErr)
		}
	}
}

func TestClient_UnauthorizedLogsOut(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/rfq", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		})
	})

	c := loggedIn(t, srv.URL, models.UserTipoEmpresa)
	err := c.Do(context.Background(), http.MethodGet, "/rfq", nil, nil)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
	if c.Session.Authenticated() {
		t.Fatalf("expected the session to be cleared")
	}
}

func TestClient_Login(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(c *gin.Context) {
			var req models.LoginRequest
			if err := c.ShouldBindJSON(&req); err != nil || req.Password != "secret1" {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"access_token": "tok-new",
				"token_type":   "bearer",
				"user":         gin.H{"id": "u-1", "email": req.Email, "tipo": "fornecedor"},
			})
		})
	})

	store := FileTokenStore{Path: filepath.Join(t.TempDir(), "teamsync", "session.json")}
	session, err := NewSession(store)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	c := New(srv.URL, session)

	if _, err := c.Login(context.Background(), "ana@acme.pt", "wrong"); !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}

	if _, err := c.Login(context.Background(), "ana@acme.pt", "secret1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	restored, err := NewSession(store)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Token() != "tok-new" || restored.User().Tipo != models.UserTipoFornecedor {
		t.Fatalf("expected the session to survive a restart, got %q", restored.Token())
	}

	if err := restored.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	stored, err := store.Load()
	if err != nil || stored != nil {
		t.Fatalf("expected the store to be empty, got %+v, %v", stored, err)
	}
}

func TestSession_Require(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, func(r *gin.Engine) {
		r.Use(func(c *gin.Context) { hits.Add(1) })
		r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	})
	ctx := context.Background()

	anonymous, _ := NewSession(nil)
	c := New(srv.URL, anonymous)
	if _, err := c.LoadRFQComparison(ctx, "rfq-1"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	c = loggedIn(t, srv.URL, models.UserTipoFornecedor)
	if _, err := c.PayByCard(ctx, models.PagamentoCartaoRequest{ReservaID: "res-1"}); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
	if _, err := c.AcceptAndCheckout(ctx, "p-1", "rfq-1"); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}

	if hits.Load() != 0 {
		t.Fatalf("expected no request to reach the server, got %d", hits.Load())
	}
}
