// File: /models/proposta.go
package models

import "time"

type PropostaEstado string

const (
	PropostaPendente PropostaEstado = "pendente"
	PropostaAceite   PropostaEstado = "aceite"
	PropostaRecusada PropostaEstado = "recusada"
	PropostaExpirada PropostaEstado = "expirada"
)

// Only pending proposals move, and every move is terminal.
func (e PropostaEstado) CanTransition(to PropostaEstado) bool {
	if e != PropostaPendente {
		return false
	}
	return to == PropostaAceite || to == PropostaRecusada || to == PropostaExpirada
}

type Proposta struct {
	ID             string         `json:"id" gorm:"primaryKey;size:191"`
	RFQID          string         `json:"rfq_id" gorm:"not null;size:191;index"`
	FornecedorID   string         `json:"fornecedor_id" gorm:"not null;size:191;index"`
	AtividadeID    *string        `json:"atividade_id" gorm:"size:191"`
	PrecoTotal     float64        `json:"preco_total" gorm:"not null"`
	PrecoPorPessoa float64        `json:"preco_por_pessoa" gorm:"not null"`
	Descricao      string         `json:"descricao" gorm:"type:text;not null"`
	Extras         *string        `json:"extras" gorm:"type:text"`
	Condicoes      *string        `json:"condicoes" gorm:"type:text"`
	DataProposta   *time.Time     `json:"data_proposta"`
	DuracaoMinutos *int           `json:"duracao_minutos"`
	Estado         PropostaEstado `json:"estado" gorm:"size:20;default:'pendente';index"`
	DataCriacao    time.Time      `json:"data_criacao" gorm:"autoCreateTime"`
	DataExpiracao  time.Time      `json:"data_expiracao" gorm:"index"`

	Fornecedor *Fornecedor `json:"fornecedor,omitempty" gorm:"foreignKey:FornecedorID"`
	Atividade  *Atividade  `json:"atividade,omitempty" gorm:"foreignKey:AtividadeID"`
}

// PropostaAcao is what the owning company may still do with a proposal.
type PropostaAcao string

const (
	AcaoAceitarRecusar PropostaAcao = "aceitar_recusar"
	AcaoVer            PropostaAcao = "ver"
	AcaoNenhuma        PropostaAcao = "nenhuma"
)

func (e PropostaEstado) Acao() PropostaAcao {
	switch e {
	case PropostaPendente:
		return AcaoAceitarRecusar
	case PropostaAceite:
		return AcaoVer
	default:
		return AcaoNenhuma
	}
}

// PropostaComparada is a proposal as shown in the comparison list of an RFQ.
type PropostaComparada struct {
	Proposta
	ReservaID   *string      `json:"reserva_id"`
	MelhorPreco bool         `json:"melhor_preco"`
	Acoes       PropostaAcao `json:"acoes"`
}
