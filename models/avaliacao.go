// File: /models/avaliacao.go
package models

import "time"

type Avaliacao struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	EmpresaID    string    `json:"empresa_id" gorm:"not null;size:191;index"`
	AtividadeID  *string   `json:"atividade_id" gorm:"size:191;index"`
	FornecedorID *string   `json:"fornecedor_id" gorm:"size:191;index"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comentario   *string   `json:"comentario" gorm:"type:text"`
	DataCriacao  time.Time `json:"data_criacao" gorm:"autoCreateTime"`

	Empresa *Empresa `json:"empresa,omitempty" gorm:"foreignKey:EmpresaID"`
}

type Itinerario struct {
	ID                  string     `json:"id" gorm:"primaryKey;size:191"`
	EmpresaID           string     `json:"empresa_id" gorm:"not null;size:191;index"`
	Data                time.Time  `json:"data" gorm:"not null"`
	Atividades          StringList `json:"atividades" gorm:"type:json"`
	RestauranteSugerido *string    `json:"restaurante_sugerido" gorm:"size:255"`
	DataCriacao         time.Time  `json:"data_criacao" gorm:"autoCreateTime"`
}

// DashboardStats are the admin counters.
type DashboardStats struct {
	TotalEmpresas       int64   `json:"total_empresas"`
	TotalFornecedores   int64   `json:"total_fornecedores"`
	TotalAtividades     int64   `json:"total_atividades"`
	AtividadesAprovadas int64   `json:"atividades_aprovadas"`
	AtividadesPendentes int64   `json:"atividades_pendentes"`
	TotalReservas       int64   `json:"total_reservas"`
	ReservasPendentes   int64   `json:"reservas_pendentes"`
	ReservasConfirmadas int64   `json:"reservas_confirmadas"`
	FaturacaoTotal      float64 `json:"faturacao_total"`
}

type RankingAtividade struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	TotalReservas int64  `json:"total_reservas"`
}

type RankingFornecedor struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Faturacao float64 `json:"faturacao"`
}

type Relatorio struct {
	ReservasUltimos30Dias  int64               `json:"reservas_ultimos_30_dias"`
	FaturacaoUltimos30Dias float64             `json:"faturacao_ultimos_30_dias"`
	TopAtividades          []RankingAtividade  `json:"top_atividades"`
	TopFornecedores        []RankingFornecedor `json:"top_fornecedores"`
}
