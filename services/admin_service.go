// File: /services/admin_service.go
package services

import (
	"context"
	"time"

	"teamsync-api/models"
)

const relatorioJanela = 30 * 24 * time.Hour

type AdminService struct {
	stats StatsRepository
	now   func() time.Time
}

func NewAdminService(stats StatsRepository) *AdminService {
	return &AdminService{stats: stats, now: time.Now}
}

func (s *AdminService) Dashboard(ctx context.Context, session *Session) (*models.DashboardStats, error) {
	if err := requireSession(session, models.UserTipoAdmin); err != nil {
		return nil, err
	}
	return s.stats.Dashboard(ctx)
}

// Relatorio covers the last 30 days.
func (s *AdminService) Relatorio(ctx context.Context, session *Session) (*models.Relatorio, error) {
	if err := requireSession(session, models.UserTipoAdmin); err != nil {
		return nil, err
	}
	return s.stats.Relatorio(ctx, s.now().Add(-relatorioJanela))
}
