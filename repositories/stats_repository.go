package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"teamsync-api/models"
)

const rankingSize = 5

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	var stats models.DashboardStats

	counts := []struct {
		model interface{}
		where []interface{}
		dest  *int64
	}{
		{&models.Empresa{}, nil, &stats.TotalEmpresas},
		{&models.Fornecedor{}, nil, &stats.TotalFornecedores},
		{&models.Atividade{}, nil, &stats.TotalAtividades},
		{&models.Atividade{}, []interface{}{"estado = ?", models.AtividadeAprovada}, &stats.AtividadesAprovadas},
		{&models.Atividade{}, []interface{}{"estado = ?", models.AtividadePendente}, &stats.AtividadesPendentes},
		{&models.Reserva{}, nil, &stats.TotalReservas},
		{&models.Reserva{}, []interface{}{"estado = ?", models.ReservaPendente}, &stats.ReservasPendentes},
		{&models.Reserva{}, []interface{}{"estado = ?", models.ReservaConfirmada}, &stats.ReservasConfirmadas},
	}
	for _, c := range counts {
		query := db.Model(c.model)
		if len(c.where) > 0 {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&models.Reserva{}).
		Select("COALESCE(SUM(preco_total), 0)").
		Where("estado = ?", models.ReservaConfirmada).
		Scan(&stats.FaturacaoTotal).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) Relatorio(ctx context.Context, since time.Time) (*models.Relatorio, error) {
	db := r.db.WithContext(ctx)
	relatorio := &models.Relatorio{
		TopAtividades:   []models.RankingAtividade{},
		TopFornecedores: []models.RankingFornecedor{},
	}

	if err := db.Model(&models.Reserva{}).
		Where("data_criacao >= ?", since).
		Count(&relatorio.ReservasUltimos30Dias).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Reserva{}).
		Select("COALESCE(SUM(preco_total), 0)").
		Where("estado = ? AND data_criacao >= ?", models.ReservaConfirmada, since).
		Scan(&relatorio.FaturacaoUltimos30Dias).Error; err != nil {
		return nil, err
	}

	err := db.Table("atividades").
		Select("atividades.id, atividades.nome, COUNT(reservas.id) AS total_reservas").
		Joins("JOIN reservas ON reservas.atividade_id = atividades.id").
		Group("atividades.id, atividades.nome").
		Order("total_reservas DESC").
		Limit(rankingSize).
		Scan(&relatorio.TopAtividades).Error
	if err != nil {
		return nil, err
	}

	err = db.Table("fornecedores").
		Select("fornecedores.id, fornecedores.nome, COALESCE(SUM(reservas.preco_total), 0) AS faturacao").
		Joins("JOIN atividades ON atividades.fornecedor_id = fornecedores.id").
		Joins("JOIN reservas ON reservas.atividade_id = atividades.id AND reservas.estado = ?", models.ReservaConfirmada).
		Group("fornecedores.id, fornecedores.nome").
		Order("faturacao DESC").
		Limit(rankingSize).
		Scan(&relatorio.TopFornecedores).Error
	if err != nil {
		return nil, err
	}
	return relatorio, nil
}
