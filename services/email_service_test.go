package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"

	"teamsync-api/config"
	"teamsync-api/models"
)

func TestNewEmailService_SMTP(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, FromEmail: "noreply@teamsync.pt", FromName: "TeamSync"}
	es := NewEmailService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if es.send == nil {
		t.Fatalf("expected an SMTP sender")
	}
}

func TestEmailService_PropostaReceivedLink(t *testing.T) {
	cfg := &config.Config{FromEmail: "noreply@teamsync.pt", FromName: "TeamSync", FrontendURL: "https://app.teamsync.pt/"}
	es := NewEmailService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var sent *gomail.Message
	es.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	err := es.PropostaReceived(context.Background(), "empresa@example.com",
		&models.RFQ{ID: "rfq-1"},
		&models.Proposta{ID: "p-1", PrecoTotal: 500, PrecoPorPessoa: 25},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sent == nil {
		t.Fatalf("expected a message")
	}

	var buf bytes.Buffer
	if _, err := sent.WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	body := buf.String()
	if !strings.Contains(body, "https://app.teamsync.pt/rfq/rfq-1") {
		t.Fatalf("expected the RFQ link in the message, got %s", body)
	}
	if strings.Contains(body, "/comparar") {
		t.Fatalf("expected no link to an unknown page")
	}
}
