// File: /models/rfq.go
package models

import "time"

type RFQEstado string

const (
	RFQAberto       RFQEstado = "aberto"
	RFQEmNegociacao RFQEstado = "em_negociacao"
	RFQFechado      RFQEstado = "fechado"
	RFQCancelado    RFQEstado = "cancelado"
)

const DefaultRaioKm = 50

// AcceptsPropostas reports whether suppliers may still respond.
func (e RFQEstado) AcceptsPropostas() bool {
	return e == RFQAberto || e == RFQEmNegociacao
}

type RFQ struct {
	ID                 string     `json:"id" gorm:"primaryKey;size:191"`
	EmpresaID          string     `json:"empresa_id" gorm:"not null;size:191;index"`
	NPessoas           int        `json:"n_pessoas" gorm:"not null"`
	DataPreferida      time.Time  `json:"data_preferida" gorm:"not null"`
	DataAlternativa    *time.Time `json:"data_alternativa"`
	Localizacao        string     `json:"localizacao" gorm:"not null;size:255"`
	RaioKm             int        `json:"raio_km" gorm:"default:50"`
	OrcamentoMax       float64    `json:"orcamento_max" gorm:"not null"`
	Objetivo           *string    `json:"objetivo" gorm:"type:text"`
	Preferencias       *string    `json:"preferencias" gorm:"type:text"`
	CategoriaPreferida *string    `json:"categoria_preferida" gorm:"size:100"`
	ClimaPreferido     *string    `json:"clima_preferido" gorm:"size:50"`
	DuracaoMaxMinutos  *int       `json:"duracao_max_minutos"`
	Estado             RFQEstado  `json:"estado" gorm:"size:20;default:'aberto';index"`
	DataCriacao        time.Time  `json:"data_criacao" gorm:"autoCreateTime"`
	DataAtualizacao    time.Time  `json:"data_atualizacao" gorm:"autoUpdateTime"`

	Empresa *Empresa `json:"empresa,omitempty" gorm:"foreignKey:EmpresaID"`
}

// RFQResumo is an RFQ as listed to its owner.
type RFQResumo struct {
	RFQ
	NumPropostas int64 `json:"num_propostas"`
}
