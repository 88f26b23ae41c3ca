// File: /models/user.go
package models

import (
	"time"
)

type UserTipo string

const (
	UserTipoEmpresa    UserTipo = "empresa"
	UserTipoFornecedor UserTipo = "fornecedor"
	UserTipoAdmin      UserTipo = "admin"
)

func (t UserTipo) Valid() bool {
	switch t {
	case UserTipoEmpresa, UserTipoFornecedor, UserTipoAdmin:
		return true
	}
	return false
}

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Nome        string    `json:"nome" gorm:"not null;size:255"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:191"`
	Password    string    `json:"-" gorm:"not null;size:255"`
	Tipo        UserTipo  `json:"tipo" gorm:"not null;size:20;index"`
	Guest       bool      `json:"guest" gorm:"default:false"`
	DataCriacao time.Time `json:"data_criacao" gorm:"autoCreateTime"`
}

type Empresa struct {
	ID                    string   `json:"id" gorm:"primaryKey;size:191"`
	UserID                string   `json:"user_id" gorm:"uniqueIndex;not null;size:191"`
	Nome                  string   `json:"nome" gorm:"not null;size:255"`
	Setor                 *string  `json:"setor" gorm:"size:255"`
	NFuncionarios         *int     `json:"n_funcionarios"`
	Localizacao           *string  `json:"localizacao" gorm:"size:255"`
	OrcamentoMedio        *float64 `json:"orcamento_medio"`
	PreferenciaAtividades *string  `json:"preferencia_atividades" gorm:"type:text"`
	Telefone              *string  `json:"telefone" gorm:"size:50"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type Fornecedor struct {
	ID          string  `json:"id" gorm:"primaryKey;size:191"`
	UserID      string  `json:"user_id" gorm:"uniqueIndex;not null;size:191"`
	Nome        string  `json:"nome" gorm:"not null;size:255"`
	Localizacao *string `json:"localizacao" gorm:"size:255"`
	Descricao   *string `json:"descricao" gorm:"type:text"`
	Contacto    *string `json:"contacto" gorm:"size:255"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
