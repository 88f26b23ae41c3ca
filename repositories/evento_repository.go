package repositories

import (
	"context"

	"gorm.io/gorm"

	"teamsync-api/models"
)

// EventoRepository stores the collaboration data attached to a reservation:
// messages, notes and documents.
type EventoRepository struct {
	db *gorm.DB
}

func NewEventoRepository(db *gorm.DB) *EventoRepository {
	return &EventoRepository{db: db}
}

func (r *EventoRepository) CreateMensagem(ctx context.Context, mensagem *models.Mensagem) error {
	return r.db.WithContext(ctx).Omit("Remetente").Create(mensagem).Error
}

func (r *EventoRepository) ListMensagens(ctx context.Context, reservaID string) ([]models.Mensagem, error) {
	var mensagens []models.Mensagem
	err := r.db.WithContext(ctx).
		Preload("Remetente").
		Where("reserva_id = ?", reservaID).
		Order("data_envio ASC").
		Find(&mensagens).Error
	return mensagens, err
}

func (r *EventoRepository) MarkMensagensLidas(ctx context.Context, reservaID, destinatarioID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Mensagem{}).
		Where("reserva_id = ? AND destinatario_id = ? AND lida = ?", reservaID, destinatarioID, false).
		Update("lida", true).Error
}

func (r *EventoRepository) CreateNota(ctx context.Context, nota *models.NotaEvento) error {
	return r.db.WithContext(ctx).Create(nota).Error
}

func (r *EventoRepository) ListNotas(ctx context.Context, reservaID string) ([]models.NotaEvento, error) {
	var notas []models.NotaEvento
	err := r.db.WithContext(ctx).
		Where("reserva_id = ?", reservaID).
		Order("data_criacao DESC").
		Find(&notas).Error
	return notas, err
}

func (r *EventoRepository) CreateDocumento(ctx context.Context, documento *models.Documento) error {
	return r.db.WithContext(ctx).Create(documento).Error
}

func (r *EventoRepository) ListDocumentos(ctx context.Context, reservaID string) ([]models.Documento, error) {
	var documentos []models.Documento
	err := r.db.WithContext(ctx).
		Where("reserva_id = ?", reservaID).
		Order("data_upload DESC").
		Find(&documentos).Error
	return documentos, err
}
