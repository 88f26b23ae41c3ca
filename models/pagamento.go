// File: /models/pagamento.go
package models

import "time"

type MetodoPagamento string

const (
	MetodoCartao MetodoPagamento = "cartao"
	MetodoMBWay  MetodoPagamento = "mbway"
)

// PagamentoEstado follows created -> pending_gateway -> confirmed | failed | expired.
type PagamentoEstado string

const (
	PagamentoPendente    PagamentoEstado = "pendente"
	PagamentoProcessando PagamentoEstado = "processando"
	PagamentoConcluido   PagamentoEstado = "concluido"
	PagamentoFalhado     PagamentoEstado = "falhado"
	PagamentoExpirado    PagamentoEstado = "expirado"
)

var pagamentoTransitions = map[PagamentoEstado][]PagamentoEstado{
	PagamentoPendente:    {PagamentoProcessando, PagamentoFalhado},
	PagamentoProcessando: {PagamentoConcluido, PagamentoFalhado, PagamentoExpirado},
}

func (e PagamentoEstado) CanTransition(to PagamentoEstado) bool {
	for _, allowed := range pagamentoTransitions[e] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (e PagamentoEstado) Terminal() bool {
	return e == PagamentoConcluido || e == PagamentoFalhado || e == PagamentoExpirado
}

// Retryable reports whether a new intent may replace this payment.
func (e PagamentoEstado) Retryable() bool {
	return e == PagamentoFalhado || e == PagamentoExpirado
}

type Pagamento struct {
	ID                   string          `json:"id" gorm:"primaryKey;size:191"`
	ReservaID            string          `json:"reserva_id" gorm:"uniqueIndex;not null;size:191"`
	Valor                float64         `json:"valor" gorm:"not null"`
	Metodo               MetodoPagamento `json:"metodo" gorm:"not null;size:20"`
	Estado               PagamentoEstado `json:"estado" gorm:"size:20;default:'pendente';index"`
	Gateway              string          `json:"gateway" gorm:"size:50"`
	GatewayPaymentID     *string         `json:"gateway_payment_id" gorm:"uniqueIndex;size:191"`
	GatewayTransactionID *string         `json:"gateway_transaction_id" gorm:"uniqueIndex;size:191"`
	GatewayResponse      RawJSON         `json:"gateway_response,omitempty" gorm:"type:json"`
	Descricao            *string         `json:"descricao" gorm:"size:500"`
	EmailFatura          *string         `json:"email_fatura" gorm:"size:255"`
	Telefone             *string         `json:"telefone" gorm:"size:50"`
	CartaoUltimos4       *string         `json:"cartao_ultimos4" gorm:"size:4"`
	DataCriacao          time.Time       `json:"data_criacao" gorm:"autoCreateTime"`
	DataAtualizacao      time.Time       `json:"data_atualizacao" gorm:"autoUpdateTime"`
	DataConclusao        *time.Time      `json:"data_conclusao"`
}
