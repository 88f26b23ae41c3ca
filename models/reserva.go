// File: /models/reserva.go
package models

import "time"

type ReservaEstado string

const (
	ReservaPendente   ReservaEstado = "pendente"
	ReservaConfirmada ReservaEstado = "confirmada"
	ReservaCancelada  ReservaEstado = "cancelada"
	ReservaRecusada   ReservaEstado = "recusada"
)

var reservaTransitions = map[ReservaEstado][]ReservaEstado{
	ReservaPendente:   {ReservaConfirmada, ReservaRecusada, ReservaCancelada},
	ReservaConfirmada: {ReservaCancelada},
}

// CanTransition reports whether a reservation may move from one state to another.
func (e ReservaEstado) CanTransition(to ReservaEstado) bool {
	for _, allowed := range reservaTransitions[e] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Reserva struct {
	ID          string        `json:"id" gorm:"primaryKey;size:191"`
	EmpresaID   string        `json:"empresa_id" gorm:"not null;size:191;index"`
	AtividadeID *string       `json:"atividade_id" gorm:"size:191;index"`
	PropostaID  *string       `json:"proposta_id" gorm:"size:191;index"`
	Data        time.Time     `json:"data" gorm:"not null"`
	NPessoas    int           `json:"n_pessoas" gorm:"not null"`
	PrecoTotal  float64       `json:"preco_total" gorm:"not null"`
	Estado      ReservaEstado `json:"estado" gorm:"size:20;default:'pendente';index"`
	Grupo       *string       `json:"grupo" gorm:"size:255"`
	DataCriacao time.Time     `json:"data_criacao" gorm:"autoCreateTime"`

	Atividade *Atividade `json:"atividade,omitempty" gorm:"foreignKey:AtividadeID"`
	Empresa   *Empresa   `json:"empresa,omitempty" gorm:"foreignKey:EmpresaID"`
}
