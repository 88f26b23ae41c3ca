// File: /models/evento.go
package models

import "time"

type Mensagem struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	ReservaID      string    `json:"reserva_id" gorm:"not null;size:191;index"`
	RemetenteID    string    `json:"remetente_id" gorm:"not null;size:191"`
	DestinatarioID string    `json:"destinatario_id" gorm:"not null;size:191;index"`
	Conteudo       string    `json:"conteudo" gorm:"type:text;not null"`
	Lida           bool      `json:"lida" gorm:"default:false"`
	DataEnvio      time.Time `json:"data_envio" gorm:"autoCreateTime"`

	Remetente *User `json:"remetente,omitempty" gorm:"foreignKey:RemetenteID"`
}

type NotaEvento struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	ReservaID   string    `json:"reserva_id" gorm:"not null;size:191;index"`
	Titulo      string    `json:"titulo" gorm:"not null;size:255"`
	Conteudo    string    `json:"conteudo" gorm:"type:text;not null"`
	CriadoPorID string    `json:"criado_por_id" gorm:"not null;size:191"`
	DataCriacao time.Time `json:"data_criacao" gorm:"autoCreateTime"`
}

type Documento struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	ReservaID    string    `json:"reserva_id" gorm:"not null;size:191;index"`
	Nome         string    `json:"nome" gorm:"not null;size:255"`
	URL          string    `json:"url" gorm:"not null;size:1000"`
	Tipo         *string   `json:"tipo" gorm:"size:50"`
	Descricao    *string   `json:"descricao" gorm:"type:text"`
	UploadedByID string    `json:"uploaded_by_id" gorm:"not null;size:191"`
	DataUpload   time.Time `json:"data_upload" gorm:"autoCreateTime"`
}

// Evento is the detail view of one reservation with its conversation.
type Evento struct {
	Reserva    Reserva      `json:"reserva"`
	Atividade  *Atividade   `json:"atividade"`
	Empresa    *Empresa     `json:"empresa"`
	Fornecedor *Fornecedor  `json:"fornecedor"`
	Mensagens  []Mensagem   `json:"mensagens"`
	Notas      []NotaEvento `json:"notas"`
	Documentos []Documento  `json:"documentos"`
}
