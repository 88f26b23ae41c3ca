package models

import (
	"testing"

	"teamsync-api/utils"
)

func validCriarEvento() CriarEventoRequest {
	return CriarEventoRequest{
		DataInicio:        "2026-06-12",
		DuracaoAtividades: "dia_todo",
		NPessoas:          20,
		Localizacao:       "Lisboa",
		TiposAtividades:   []string{"aventura"},
		ExpectativaPreco:  "medio",
	}
}

func TestCriarEventoRequest_RequiredMessages(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *CriarEventoRequest)
		field    string
		expected string
	}{
		{"data_inicio", func(r *CriarEventoRequest) { r.DataInicio = "" }, "data_inicio", "Por favor, selecione a data de início"},
		{"duracao", func(r *CriarEventoRequest) { r.DuracaoAtividades = "" }, "duracao_atividades", "Por favor, selecione a duração das atividades"},
		{"n_pessoas", func(r *CriarEventoRequest) { r.NPessoas = 0 }, "n_pessoas", "Por favor, informe o número de pessoas"},
		{"localizacao", func(r *CriarEventoRequest) { r.Localizacao = "" }, "localizacao", "Por favor, informe a localização"},
		{"tipos", func(r *CriarEventoRequest) { r.TiposAtividades = nil }, "tipos_atividades", "Por favor, selecione pelo menos um tipo de atividade"},
		{"expectativa", func(r *CriarEventoRequest) { r.ExpectativaPreco = "" }, "expectativa_preco", "Por favor, selecione a expectativa de preço"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCriarEvento()
			tt.mutate(&req)

			errs := utils.Validate(req)
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			if errs[0].Field != tt.field {
				t.Fatalf("expected field %s, got %s", tt.field, errs[0].Field)
			}
			if errs[0].Message != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, errs[0].Message)
			}
		})
	}

	if errs := utils.Validate(validCriarEvento()); errs != nil {
		t.Fatalf("expected valid payload, got %v", errs)
	}
}

func TestRFQRequest_Localizacao(t *testing.T) {
	req := RFQRequest{NPessoas: 10, DataPreferida: "2026-06-12", OrcamentoMax: 1000}
	errs := utils.Validate(req)
	if len(errs) != 1 || errs[0].Message != "Por favor, informe a localização" {
		t.Fatalf("expected localizacao message, got %v", errs)
	}
}

func TestPropostaRequest_OnePriceIsEnough(t *testing.T) {
	total := 500.0
	req := PropostaRequest{RFQID: "rfq-1", Descricao: "Canoagem", PrecoTotal: &total}
	if errs := utils.Validate(req); errs != nil {
		t.Fatalf("expected valid payload, got %v", errs)
	}

	req.PrecoTotal = nil
	errs := utils.Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected an error when both prices are missing")
	}
	if errs[0].Message != "Por favor, informe o preço" {
		t.Fatalf("expected price message, got %q", errs[0].Message)
	}
}

func TestRegisterRequest_TipoConta(t *testing.T) {
	req := RegisterRequest{Nome: "Admin", Email: "admin@example.com", Password: "secret1", Tipo: "admin"}
	errs := utils.Validate(req)
	if len(errs) != 1 || errs[0].Field != "tipo" {
		t.Fatalf("expected tipo error, got %v", errs)
	}
}
