package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubParser struct {
	session *services.Session
}

func (p stubParser) Parse(token string) (*services.Session, error) {
	if token == "valid" {
		return p.session, nil
	}
	return nil, &services.Error{Kind: services.ErrUnauthorized, Detail: "Could not validate credentials"}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(60, 2).Handler(60))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("expected no remaining requests, got %q", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimiter_CleanupLimiters(t *testing.T) {
	now := time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60, 1)
	rl.now = func() time.Time { return now }

	rl.GetLimiter("10.0.0.1")
	now = now.Add(5 * time.Minute)
	rl.GetLimiter("10.0.0.2")

	now = now.Add(6 * time.Minute)
	rl.CleanupLimiters()

	if rl.size() != 1 {
		t.Fatalf("expected 1 limiter left, got %d", rl.size())
	}
}

func TestAuthMiddleware(t *testing.T) {
	session := &services.Session{UserID: "u-1", Tipo: models.UserTipoEmpresa}
	r := gin.New()
	r.GET("/me", AuthMiddleware(stubParser{session}), func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok || s.UserID != "u-1" {
			t.Fatalf("expected session on the context")
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer valid", http.StatusOK},
		{"lowercase scheme", "bearer valid", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.status == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Fatalf("expected WWW-Authenticate header")
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := gin.New()
	r.GET("/x", OptionalAuth(stubParser{&services.Session{UserID: "u-1"}}), func(c *gin.Context) {
		if _, ok := SessionFrom(c); ok {
			c.String(http.StatusOK, "session")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer expired")
	if w := serve(r, req); w.Body.String() != "anonymous" {
		t.Fatalf("expected an invalid token to be ignored, got %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer valid")
	if w := serve(r, req); w.Body.String() != "session" {
		t.Fatalf("expected a session, got %q", w.Body.String())
	}
}

func TestRequireTipo(t *testing.T) {
	r := gin.New()
	r.GET("/admin",
		AuthMiddleware(stubParser{&services.Session{UserID: "u-1", Tipo: models.UserTipoFornecedor}}),
		RequireTipo(models.UserTipoAdmin),
		func(c *gin.Context) { t.Fatalf("handler must not run") },
	)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer valid")
	if w := serve(r, req); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestValidateJSON(t *testing.T) {
	r := gin.New()
	r.Use(ValidateJSON())
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("a=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if w := serve(r, req); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/x", nil)
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("expected an empty body to pass, got %d", w.Code)
	}
}

func TestPaginationDefaults(t *testing.T) {
	r := gin.New()
	r.GET("/x", PaginationDefaults(), func(c *gin.Context) {
		skip, limit := Pagination(c)
		c.JSON(http.StatusOK, gin.H{"skip": skip, "limit": limit})
	})

	tests := []struct {
		query    string
		expected string
	}{
		{"", `{"limit":100,"skip":0}`},
		{"?skip=20&limit=10", `{"limit":10,"skip":20}`},
		{"?skip=-1&limit=500", `{"limit":100,"skip":0}`},
		{"?limit=abc", `{"limit":100,"skip":0}`},
	}
	for _, tt := range tests {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x"+tt.query, nil))
		if w.Body.String() != tt.expected {
			t.Fatalf("%q: expected %s, got %s", tt.query, tt.expected, w.Body.String())
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := serve(r, req)
	if w.Body.String() != "req-42" || w.Header().Get(RequestIDHeader) != "req-42" {
		t.Fatalf("expected the caller's request id to be kept, got %q", w.Body.String())
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Body.String() == "" {
		t.Fatalf("expected a generated request id")
	}
}
