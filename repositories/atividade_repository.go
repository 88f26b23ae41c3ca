package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"teamsync-api/models"
)

type AtividadeRepository struct {
	db *gorm.DB
}

func NewAtividadeRepository(db *gorm.DB) *AtividadeRepository {
	return &AtividadeRepository{db: db}
}

func (r *AtividadeRepository) Create(ctx context.Context, atividade *models.Atividade) error {
	return r.db.WithContext(ctx).Omit("Fornecedor").Create(atividade).Error
}

func (r *AtividadeRepository) Update(ctx context.Context, atividade *models.Atividade) error {
	return r.db.WithContext(ctx).Omit("Fornecedor").Save(atividade).Error
}

func (r *AtividadeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Atividade{}).Error
}

func (r *AtividadeRepository) FindByID(ctx context.Context, id string) (*models.Atividade, error) {
	var atividade models.Atividade
	if err := r.db.WithContext(ctx).Preload("Fornecedor").Where("id = ?", id).First(&atividade).Error; err != nil {
		return nil, err
	}
	return &atividade, nil
}

// FindByIDs keeps the order of ids and skips unknown ones.
func (r *AtividadeRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Atividade, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []models.Atividade
	if err := r.db.WithContext(ctx).Preload("Fornecedor").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Atividade, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	ordered := make([]models.Atividade, 0, len(found))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
			delete(byID, id)
		}
	}
	return ordered, nil
}

// Search applies every non-empty filter field. Text filters match
// case-insensitive substrings.
func (r *AtividadeRepository) Search(ctx context.Context, filtro models.AtividadeFiltro) ([]models.Atividade, error) {
	query := r.db.WithContext(ctx).Model(&models.Atividade{}).Preload("Fornecedor")

	if filtro.SomenteAprovadas {
		query = query.Where("estado = ?", models.AtividadeAprovada)
	}
	if filtro.NPessoas > 0 {
		query = query.Where("capacidade_max >= ?", filtro.NPessoas)
	}
	if filtro.OrcamentoMax != nil {
		query = query.Where("preco_por_pessoa <= ?", *filtro.OrcamentoMax)
	}
	if filtro.Localizacao != "" {
		query = query.Where("LOWER(localizacao) LIKE ?", like(filtro.Localizacao))
	}
	if filtro.Categoria != "" {
		query = query.Where("LOWER(categoria) LIKE ?", like(filtro.Categoria))
	}
	if filtro.Clima != "" {
		query = query.Where("LOWER(clima) LIKE ?", like(filtro.Clima))
	}
	if filtro.DuracaoMax != nil {
		query = query.Where("(duracao_minutos IS NULL OR duracao_minutos <= ?)", *filtro.DuracaoMax)
	}
	if len(filtro.Tipos) > 0 {
		var clauses []string
		var args []interface{}
		for _, tipo := range filtro.Tipos {
			clauses = append(clauses, "LOWER(tipo) LIKE ? OR LOWER(categoria) LIKE ?")
			args = append(args, like(tipo), like(tipo))
		}
		query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	if filtro.OrderByRating {
		query = query.Order("rating_medio DESC").Order("preco_por_pessoa ASC")
	} else {
		query = query.Order("data_criacao ASC")
	}
	if filtro.Skip > 0 {
		query = query.Offset(filtro.Skip)
	}
	if filtro.Limit > 0 {
		query = query.Limit(filtro.Limit)
	}

	var atividades []models.Atividade
	err := query.Find(&atividades).Error
	return atividades, err
}

func (r *AtividadeRepository) ListByEstado(ctx context.Context, estado models.AtividadeEstado) ([]models.Atividade, error) {
	var atividades []models.Atividade
	err := r.db.WithContext(ctx).
		Preload("Fornecedor").
		Where("estado = ?", estado).
		Order("data_criacao ASC").
		Find(&atividades).Error
	return atividades, err
}

// UpdateEstado moves an activity between moderation states only if it is
// still in from.
func (r *AtividadeRepository) UpdateEstado(ctx context.Context, id string, from, to models.AtividadeEstado) error {
	result := r.db.WithContext(ctx).
		Model(&models.Atividade{}).
		Where("id = ? AND estado = ?", id, from).
		Updates(map[string]interface{}{
			"estado":   to,
			"aprovada": to == models.AtividadeAprovada,
		})
	return affected(result)
}

func like(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}

// affected turns a conditional update that matched nothing into
// models.ErrEstadoAlterado.
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrEstadoAlterado
	}
	return nil
}
