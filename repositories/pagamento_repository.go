package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"teamsync-api/models"
)

type PagamentoRepository struct {
	db *gorm.DB
}

func NewPagamentoRepository(db *gorm.DB) *PagamentoRepository {
	return &PagamentoRepository{db: db}
}

func (r *PagamentoRepository) Create(ctx context.Context, pagamento *models.Pagamento) error {
	return r.db.WithContext(ctx).Create(pagamento).Error
}

func (r *PagamentoRepository) Save(ctx context.Context, pagamento *models.Pagamento) error {
	return r.db.WithContext(ctx).Save(pagamento).Error
}

func (r *PagamentoRepository) FindByID(ctx context.Context, id string) (*models.Pagamento, error) {
	return r.findBy(ctx, "id = ?", id)
}

func (r *PagamentoRepository) FindByReservaID(ctx context.Context, reservaID string) (*models.Pagamento, error) {
	return r.findBy(ctx, "reserva_id = ?", reservaID)
}

func (r *PagamentoRepository) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*models.Pagamento, error) {
	return r.findBy(ctx, "gateway_payment_id = ?", gatewayPaymentID)
}

func (r *PagamentoRepository) findBy(ctx context.Context, query string, arg string) (*models.Pagamento, error) {
	var pagamento models.Pagamento
	if err := r.db.WithContext(ctx).Where(query, arg).First(&pagamento).Error; err != nil {
		return nil, err
	}
	return &pagamento, nil
}

func (r *PagamentoRepository) MarkProcessing(ctx context.Context, id, gatewayPaymentID string, response models.RawJSON) error {
	result := r.db.WithContext(ctx).
		Model(&models.Pagamento{}).
		Where("id = ? AND estado = ?", id, models.PagamentoPendente).
		Updates(map[string]interface{}{
			"estado":             models.PagamentoProcessando,
			"gateway_payment_id": gatewayPaymentID,
			"gateway_response":   response,
		})
	return affected(result)
}

// Complete is the only path to concluido. The payment must still be
// processando, and its reservation is confirmed in the same transaction.
func (r *PagamentoRepository) Complete(ctx context.Context, id, transactionID string, response models.RawJSON, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Pagamento{}).
			Where("id = ? AND estado = ?", id, models.PagamentoProcessando).
			Updates(map[string]interface{}{
				"estado":                 models.PagamentoConcluido,
				"gateway_transaction_id": transactionID,
				"gateway_response":       response,
				"data_conclusao":         at,
			})
		if err := affected(result); err != nil {
			return err
		}

		var pagamento models.Pagamento
		if err := tx.Select("reserva_id").Where("id = ?", id).First(&pagamento).Error; err != nil {
			return err
		}
		return tx.Model(&models.Reserva{}).
			Where("id = ? AND estado = ?", pagamento.ReservaID, models.ReservaPendente).
			Update("estado", models.ReservaConfirmada).Error
	})
}

func (r *PagamentoRepository) Fail(ctx context.Context, id string, to models.PagamentoEstado, response models.RawJSON) error {
	updates := map[string]interface{}{"estado": to}
	if len(response) > 0 {
		updates["gateway_response"] = response
	}
	result := r.db.WithContext(ctx).
		Model(&models.Pagamento{}).
		Where("id = ? AND estado IN ?", id, []models.PagamentoEstado{models.PagamentoPendente, models.PagamentoProcessando}).
		Updates(updates)
	return affected(result)
}

// ExpireStale expires payments left pendente or processando since before.
func (r *PagamentoRepository) ExpireStale(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Pagamento{}).
		Scopes(staleSince(before)).
		Update("estado", models.PagamentoExpirado)
	return result.RowsAffected, result.Error
}

func staleSince(before time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("estado IN ? AND data_atualizacao < ?",
			[]models.PagamentoEstado{models.PagamentoPendente, models.PagamentoProcessando}, before)
	}
}
