package models

import (
	"encoding/json"
	"testing"
)

func TestReservaEstado_CanTransition(t *testing.T) {
	tests := []struct {
		from, to ReservaEstado
		allowed  bool
	}{
		{ReservaPendente, ReservaConfirmada, true},
		{ReservaPendente, ReservaRecusada, true},
		{ReservaPendente, ReservaCancelada, true},
		{ReservaConfirmada, ReservaCancelada, true},
		{ReservaConfirmada, ReservaRecusada, false},
		{ReservaRecusada, ReservaConfirmada, false},
		{ReservaCancelada, ReservaPendente, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.allowed {
				t.Fatalf("expected %v, got %v", tt.allowed, got)
			}
		})
	}
}

func TestPropostaEstado_CanTransition(t *testing.T) {
	if !PropostaPendente.CanTransition(PropostaAceite) {
		t.Fatalf("expected pendente -> aceite")
	}
	if PropostaRecusada.CanTransition(PropostaAceite) {
		t.Fatalf("expected recusada -> aceite to be refused")
	}
	if PropostaExpirada.CanTransition(PropostaAceite) {
		t.Fatalf("expected expirada -> aceite to be refused")
	}
}

func TestPropostaEstado_Acao(t *testing.T) {
	tests := map[PropostaEstado]PropostaAcao{
		PropostaPendente: AcaoAceitarRecusar,
		PropostaAceite:   AcaoVer,
		PropostaRecusada: AcaoNenhuma,
		PropostaExpirada: AcaoNenhuma,
	}
	for estado, expected := range tests {
		if got := estado.Acao(); got != expected {
			t.Fatalf("expected %s for %s, got %s", expected, estado, got)
		}
	}
}

func TestPagamentoEstado_Machine(t *testing.T) {
	tests := []struct {
		from, to PagamentoEstado
		allowed  bool
	}{
		{PagamentoPendente, PagamentoProcessando, true},
		{PagamentoPendente, PagamentoConcluido, false},
		{PagamentoProcessando, PagamentoConcluido, true},
		{PagamentoProcessando, PagamentoFalhado, true},
		{PagamentoProcessando, PagamentoExpirado, true},
		{PagamentoConcluido, PagamentoFalhado, false},
		{PagamentoExpirado, PagamentoProcessando, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.allowed, got)
		}
	}

	if !PagamentoFalhado.Retryable() || PagamentoConcluido.Retryable() {
		t.Fatalf("expected only failed or expired payments to be retryable")
	}
	if PagamentoProcessando.Terminal() {
		t.Fatalf("expected processando not to be terminal")
	}
}

func TestStringList_JSON(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		var sl StringList
		if err := json.Unmarshal([]byte(`["a.jpg","b.jpg"]`), &sl); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sl) != 2 || sl[1] != "b.jpg" {
			t.Fatalf("unexpected list %v", sl)
		}
	})

	t.Run("encoded string", func(t *testing.T) {
		var sl StringList
		if err := json.Unmarshal([]byte(`"[\"a.jpg\"]"`), &sl); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sl) != 1 || sl[0] != "a.jpg" {
			t.Fatalf("unexpected list %v", sl)
		}
	})

	t.Run("nil marshals as empty array", func(t *testing.T) {
		b, err := json.Marshal(Atividade{}.Imagens)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(b) != "[]" {
			t.Fatalf("expected [], got %s", b)
		}
	})

	t.Run("legacy column", func(t *testing.T) {
		var sl StringList
		if err := sl.Scan("https://img/1.jpg"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sl) != 1 || sl[0] != "https://img/1.jpg" {
			t.Fatalf("unexpected list %v", sl)
		}
	})
}
