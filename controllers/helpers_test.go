package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"teamsync-api/services"
	"teamsync-api/utils"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON error body, got %q", w.Body.String())
	}
	return body
}

func TestBaseFail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", &services.Error{Kind: services.ErrNotFound, Detail: "RFQ not found"}, http.StatusNotFound, "RFQ not found"},
		{"forbidden", &services.Error{Kind: services.ErrForbidden, Detail: "Not authorized"}, http.StatusForbidden, "Not authorized"},
		{"unauthorized", &services.Error{Kind: services.ErrUnauthorized, Detail: "Not authenticated"}, http.StatusUnauthorized, "Not authenticated"},
		{"conflict", &services.Error{Kind: services.ErrConflict, Detail: "Proposta já foi aceite"}, http.StatusConflict, "Proposta já foi aceite"},
		{"invalid input", &services.Error{Kind: services.ErrInvalidInput, Detail: "Email already registered"}, http.StatusBadRequest, "Email already registered"},
		{"field errors", utils.ValidationErrors{{Field: "grupos", Message: "O total de pessoas (21) deve ser igual a 20 (21/20)"}}, http.StatusUnprocessableEntity, "O total de pessoas (21) deve ser igual a 20 (21/20)"},
		{"unknown", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	b := base{logger: discardLogger()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { b.fail(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			if body := decodeError(t, w); body.Detail != tt.detail {
				t.Fatalf("expected detail %q, got %q", tt.detail, body.Detail)
			}
		})
	}
}
