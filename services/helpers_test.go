package services_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"gorm.io/gorm"

	"teamsync-api/models"
	"teamsync-api/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func empresaSession() *services.Session {
	return &services.Session{UserID: "user-emp", Email: "empresa@example.com", Tipo: models.UserTipoEmpresa}
}

func fornecedorSession() *services.Session {
	return &services.Session{UserID: "user-forn", Email: "fornecedor@example.com", Tipo: models.UserTipoFornecedor}
}

func expectKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func gormNotFound() error { return gorm.ErrRecordNotFound }
