package repositories

import (
	"context"

	"gorm.io/gorm"

	"teamsync-api/models"
	"teamsync-api/utils"
)

type AvaliacaoRepository struct {
	db *gorm.DB
}

func NewAvaliacaoRepository(db *gorm.DB) *AvaliacaoRepository {
	return &AvaliacaoRepository{db: db}
}

func (r *AvaliacaoRepository) Create(ctx context.Context, avaliacao *models.Avaliacao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Empresa").Create(avaliacao).Error; err != nil {
			return err
		}
		if avaliacao.AtividadeID == nil {
			return nil
		}

		var agg struct {
			Media float64
			Total int
		}
		err := tx.Model(&models.Avaliacao{}).
			Select("COALESCE(AVG(rating), 0) AS media, COUNT(*) AS total").
			Where("atividade_id = ?", *avaliacao.AtividadeID).
			Scan(&agg).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.Atividade{}).
			Where("id = ?", *avaliacao.AtividadeID).
			Updates(map[string]interface{}{
				"rating_medio":     ratingMedio(agg.Media),
				"total_avaliacoes": agg.Total,
			}).Error
	})
}

func (r *AvaliacaoRepository) ListByAtividade(ctx context.Context, atividadeID string) ([]models.Avaliacao, error) {
	return r.list(ctx, "atividade_id = ?", atividadeID)
}

func (r *AvaliacaoRepository) ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Avaliacao, error) {
	return r.list(ctx, "fornecedor_id = ?", fornecedorID)
}

func (r *AvaliacaoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Avaliacao, error) {
	return r.list(ctx, "empresa_id = ?", empresaID)
}

func (r *AvaliacaoRepository) list(ctx context.Context, query string, arg string) ([]models.Avaliacao, error) {
	var avaliacoes []models.Avaliacao
	err := r.db.WithContext(ctx).
		Preload("Empresa").
		Where(query, arg).
		Order("data_criacao DESC").
		Find(&avaliacoes).Error
	return avaliacoes, err
}

type ItinerarioRepository struct {
	db *gorm.DB
}

func NewItinerarioRepository(db *gorm.DB) *ItinerarioRepository {
	return &ItinerarioRepository{db: db}
}

func (r *ItinerarioRepository) Create(ctx context.Context, itinerario *models.Itinerario) error {
	return r.db.WithContext(ctx).Create(itinerario).Error
}

func (r *ItinerarioRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Itinerario, error) {
	var itinerarios []models.Itinerario
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("data DESC").
		Find(&itinerarios).Error
	return itinerarios, err
}

func ratingMedio(media float64) float64 {
	return utils.Round2(media)
}
