package repositories

import (
	"context"

	"gorm.io/gorm"

	"teamsync-api/models"
)

type ReservaRepository struct {
	db *gorm.DB
}

func NewReservaRepository(db *gorm.DB) *ReservaRepository {
	return &ReservaRepository{db: db}
}

func (r *ReservaRepository) Create(ctx context.Context, reserva *models.Reserva) error {
	return r.db.WithContext(ctx).Omit("Atividade", "Empresa").Create(reserva).Error
}

// CreateMany stores every reservation of a confirmed event or none of them.
func (r *ReservaRepository) CreateMany(ctx context.Context, reservas []*models.Reserva) error {
	if len(reservas) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, reserva := range reservas {
			if err := tx.Omit("Atividade", "Empresa").Create(reserva).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ReservaRepository) FindByID(ctx context.Context, id string) (*models.Reserva, error) {
	var reserva models.Reserva
	err := r.withDetails(ctx).Where("reservas.id = ?", id).First(&reserva).Error
	if err != nil {
		return nil, err
	}
	return &reserva, nil
}

func (r *ReservaRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.withDetails(ctx).
		Where("reservas.empresa_id = ?", empresaID).
		Order("reservas.data DESC").
		Find(&reservas).Error
	return reservas, err
}

// ListByFornecedor returns reservations for the supplier's activities and
// those created from the supplier's accepted proposals.
func (r *ReservaRepository) ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.withDetails(ctx).
		Where("reservas.atividade_id IN (?) OR reservas.proposta_id IN (?)",
			r.db.Model(&models.Atividade{}).Select("id").Where("fornecedor_id = ?", fornecedorID),
			r.db.Model(&models.Proposta{}).Select("id").Where("fornecedor_id = ?", fornecedorID),
		).
		Order("reservas.data DESC").
		Find(&reservas).Error
	return reservas, err
}

// MapByPropostas maps proposal ids to the reservation created from them.
func (r *ReservaRepository) MapByPropostas(ctx context.Context, propostaIDs []string) (map[string]string, error) {
	result := make(map[string]string)
	if len(propostaIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ID         string
		PropostaID string
	}
	err := r.db.WithContext(ctx).
		Model(&models.Reserva{}).
		Select("id, proposta_id").
		Where("proposta_id IN ?", propostaIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.PropostaID] = row.ID
	}
	return result, nil
}

func (r *ReservaRepository) UpdateEstado(ctx context.Context, id string, from []models.ReservaEstado, to models.ReservaEstado) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reserva{}).
		Where("id = ? AND estado IN ?", id, from).
		Update("estado", to)
	return affected(result)
}

func (r *ReservaRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Atividade").
		Preload("Atividade.Fornecedor").
		Preload("Empresa")
}
