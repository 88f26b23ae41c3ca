// File: /models/atividade.go
package models

import "time"

type AtividadeEstado string

const (
	AtividadePendente  AtividadeEstado = "pendente"
	AtividadeAprovada  AtividadeEstado = "aprovada"
	AtividadeRejeitada AtividadeEstado = "rejeitada"
)

type Atividade struct {
	ID              string          `json:"id" gorm:"primaryKey;size:191"`
	Nome            string          `json:"nome" gorm:"not null;size:255;index"`
	Tipo            string          `json:"tipo" gorm:"not null;size:100;index"`
	Categoria       *string         `json:"categoria" gorm:"size:100;index"`
	PrecoPorPessoa  float64         `json:"preco_por_pessoa" gorm:"not null"`
	CapacidadeMax   int             `json:"capacidade_max" gorm:"not null"`
	Localizacao     string          `json:"localizacao" gorm:"not null;size:255"`
	Descricao       *string         `json:"descricao" gorm:"type:text"`
	Imagens         StringList      `json:"imagens" gorm:"type:json"`
	FornecedorID    *string         `json:"fornecedor_id" gorm:"size:191;index"`
	Clima           *string         `json:"clima" gorm:"size:50"`
	DuracaoMinutos  *int            `json:"duracao_minutos"`
	Estado          AtividadeEstado `json:"estado" gorm:"size:20;default:'pendente';index"`
	Aprovada        bool            `json:"aprovada" gorm:"default:false;index"`
	RatingMedio     float64         `json:"rating_medio" gorm:"default:0"`
	TotalAvaliacoes int             `json:"total_avaliacoes" gorm:"default:0"`
	DataCriacao     time.Time       `json:"data_criacao" gorm:"autoCreateTime"`

	Fornecedor *Fornecedor `json:"fornecedor,omitempty" gorm:"foreignKey:FornecedorID"`
}

// SetEstado keeps the aprovada flag in sync with the moderation state.
func (a *Atividade) SetEstado(estado AtividadeEstado) {
	a.Estado = estado
	a.Aprovada = estado == AtividadeAprovada
}

func (a *Atividade) DuracaoOr(fallback int) int {
	if a.DuracaoMinutos != nil && *a.DuracaoMinutos > 0 {
		return *a.DuracaoMinutos
	}
	return fallback
}

// AtividadeFiltro drives both the public listing and the recommendation query.
type AtividadeFiltro struct {
	NPessoas         int
	OrcamentoMax     *float64
	Localizacao      string
	Categoria        string
	Clima            string
	DuracaoMax       *int
	Tipos            []string
	SomenteAprovadas bool
	OrderByRating    bool
	Skip             int
	Limit            int
}
