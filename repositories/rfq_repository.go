package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"teamsync-api/models"
)

type RFQRepository struct {
	db *gorm.DB
}

func NewRFQRepository(db *gorm.DB) *RFQRepository {
	return &RFQRepository{db: db}
}

func (r *RFQRepository) Create(ctx context.Context, rfq *models.RFQ) error {
	return r.db.WithContext(ctx).Omit("Empresa").Create(rfq).Error
}

func (r *RFQRepository) FindByID(ctx context.Context, id string) (*models.RFQ, error) {
	var rfq models.RFQ
	if err := r.db.WithContext(ctx).Preload("Empresa.User").Where("id = ?", id).First(&rfq).Error; err != nil {
		return nil, err
	}
	return &rfq, nil
}

// ListByEmpresa returns the company's RFQs, newest first, each with its
// proposal count.
func (r *RFQRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]models.RFQResumo, error) {
	var rfqs []models.RFQ
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("data_criacao DESC").
		Find(&rfqs).Error
	if err != nil {
		return nil, err
	}
	if len(rfqs) == 0 {
		return []models.RFQResumo{}, nil
	}

	ids := make([]string, len(rfqs))
	for i, rfq := range rfqs {
		ids[i] = rfq.ID
	}
	var counts []struct {
		RFQID string
		Total int64
	}
	err = r.db.WithContext(ctx).
		Model(&models.Proposta{}).
		Select("rfq_id, COUNT(*) AS total").
		Where("rfq_id IN ?", ids).
		Group("rfq_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	byRFQ := make(map[string]int64, len(counts))
	for _, c := range counts {
		byRFQ[c.RFQID] = c.Total
	}

	resumos := make([]models.RFQResumo, len(rfqs))
	for i, rfq := range rfqs {
		resumos[i] = models.RFQResumo{RFQ: rfq, NumPropostas: byRFQ[rfq.ID]}
	}
	return resumos, nil
}

// ListDisponiveis returns open RFQs the supplier has not answered yet.
func (r *RFQRepository) ListDisponiveis(ctx context.Context, fornecedorID string) ([]models.RFQ, error) {
	var rfqs []models.RFQ
	err := r.db.WithContext(ctx).
		Preload("Empresa").
		Where("estado IN ?", []models.RFQEstado{models.RFQAberto, models.RFQEmNegociacao}).
		Where("id NOT IN (?)", r.db.Model(&models.Proposta{}).Select("rfq_id").Where("fornecedor_id = ?", fornecedorID)).
		Order("data_criacao DESC").
		Find(&rfqs).Error
	return rfqs, err
}

func (r *RFQRepository) UpdateEstado(ctx context.Context, id string, from []models.RFQEstado, to models.RFQEstado) error {
	result := r.db.WithContext(ctx).
		Model(&models.RFQ{}).
		Where("id = ? AND estado IN ?", id, from).
		Update("estado", to)
	return affected(result)
}

type PropostaRepository struct {
	db *gorm.DB
}

func NewPropostaRepository(db *gorm.DB) *PropostaRepository {
	return &PropostaRepository{db: db}
}

func (r *PropostaRepository) Create(ctx context.Context, proposta *models.Proposta) error {
	return r.db.WithContext(ctx).Omit("Fornecedor", "Atividade").Create(proposta).Error
}

func (r *PropostaRepository) FindByID(ctx context.Context, id string) (*models.Proposta, error) {
	var proposta models.Proposta
	err := r.db.WithContext(ctx).
		Preload("Fornecedor.User").
		Preload("Atividade").
		Where("id = ?", id).
		First(&proposta).Error
	if err != nil {
		return nil, err
	}
	return &proposta, nil
}

func (r *PropostaRepository) ListByRFQ(ctx context.Context, rfqID string) ([]models.Proposta, error) {
	var propostas []models.Proposta
	err := r.db.WithContext(ctx).
		Preload("Fornecedor").
		Preload("Atividade").
		Where("rfq_id = ?", rfqID).
		Scopes(byArrival).
		Find(&propostas).Error
	return propostas, err
}

func (r *PropostaRepository) ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Proposta, error) {
	var propostas []models.Proposta
	err := r.db.WithContext(ctx).
		Preload("Atividade").
		Where("fornecedor_id = ?", fornecedorID).
		Order("data_criacao DESC").
		Find(&propostas).Error
	return propostas, err
}

func (r *PropostaRepository) Accept(ctx context.Context, propostaID string, reserva *models.Reserva) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var proposta models.Proposta
		if err := tx.Where("id = ?", propostaID).First(&proposta).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Proposta{}).
			Where("id = ? AND estado = ?", propostaID, models.PropostaPendente).
			Update("estado", models.PropostaAceite)
		if err := affected(result); err != nil {
			return err
		}

		if err := affected(closeOpenRFQ(tx, proposta.RFQID)); err != nil {
			return err
		}

		if err := tx.Model(&models.Proposta{}).
			Where("rfq_id = ? AND id <> ? AND estado = ?", proposta.RFQID, propostaID, models.PropostaPendente).
			Update("estado", models.PropostaRecusada).Error; err != nil {
			return err
		}

		var existing models.Reserva
		err := tx.Where("proposta_id = ?", propostaID).First(&existing).Error
		switch {
		case err == nil:
			*reserva = existing
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Omit("Atividade", "Empresa").Create(reserva).Error
	})
}

func (r *PropostaRepository) UpdateEstado(ctx context.Context, id string, from, to models.PropostaEstado) error {
	result := r.db.WithContext(ctx).
		Model(&models.Proposta{}).
		Where("id = ? AND estado = ?", id, from).
		Update("estado", to)
	return affected(result)
}

// ExpireBefore marks pending proposals past their expiry date as expirada.
func (r *PropostaRepository) ExpireBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Proposta{}).
		Where("estado = ? AND data_expiracao < ?", models.PropostaPendente, before).
		Update("estado", models.PropostaExpirada)
	return result.RowsAffected, result.Error
}

// byArrival orders proposals by submission time. Price ranking keeps this
// order for ties.
func byArrival(db *gorm.DB) *gorm.DB {
	return db.Order("data_criacao ASC").Order("id ASC")
}

func closeOpenRFQ(tx *gorm.DB, rfqID string) *gorm.DB {
	return tx.Model(&models.RFQ{}).
		Where("id = ? AND estado IN ?", rfqID, []models.RFQEstado{models.RFQAberto, models.RFQEmNegociacao}).
		Update("estado", models.RFQFechado)
}
