// File: /services/atividade_service.go
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"teamsync-api/models"
)

const (
	defaultListLimit    = 100
	recomendacoesLimite = 20
)

type AtividadeService struct {
	atividades   AtividadeRepository
	fornecedores FornecedorRepository
	logger       *slog.Logger
}

func NewAtividadeService(atividades AtividadeRepository, fornecedores FornecedorRepository, logger *slog.Logger) *AtividadeService {
	return &AtividadeService{atividades: atividades, fornecedores: fornecedores, logger: logger}
}

// List returns approved activities for the public catalogue.
func (s *AtividadeService) List(ctx context.Context, categoria, localizacao string, skip, limit int) ([]models.Atividade, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.atividades.Search(ctx, models.AtividadeFiltro{
		Categoria:        categoria,
		Localizacao:      localizacao,
		SomenteAprovadas: true,
		Skip:             skip,
		Limit:            limit,
	})
}

func (s *AtividadeService) Get(ctx context.Context, id string) (*models.Atividade, error) {
	atividade, err := s.atividades.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Atividade not found")
		}
		return nil, err
	}
	return atividade, nil
}

// Recomendadas ranks approved activities fitting the group by rating and then price.
func (s *AtividadeService) Recomendadas(ctx context.Context, req models.RecomendacaoRequest) ([]models.Atividade, error) {
	return s.atividades.Search(ctx, models.AtividadeFiltro{
		NPessoas:         req.NPessoas,
		OrcamentoMax:     req.OrcamentoMax,
		Localizacao:      req.Localizacao,
		Categoria:        req.Categoria,
		Clima:            req.Clima,
		DuracaoMax:       req.DuracaoMax,
		SomenteAprovadas: true,
		OrderByRating:    true,
		Limit:            recomendacoesLimite,
	})
}

// Create registers a new activity for the calling supplier. New activities
// wait for moderation.
func (s *AtividadeService) Create(ctx context.Context, session *Session, req models.AtividadeRequest) (*models.Atividade, error) {
	if err := requireSession(session, models.UserTipoFornecedor); err != nil {
		return nil, err
	}
	fornecedor, err := s.fornecedores.FindByUserID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Fornecedor profile not found")
		}
		return nil, err
	}

	atividade := &models.Atividade{ID: uuid.New().String(), FornecedorID: &fornecedor.ID}
	applyAtividade(atividade, req)
	atividade.SetEstado(models.AtividadePendente)

	if err := s.atividades.Create(ctx, atividade); err != nil {
		return nil, err
	}
	s.logger.Info("atividade created", "atividade_id", atividade.ID, "fornecedor_id", fornecedor.ID)
	return atividade, nil
}

func (s *AtividadeService) Update(ctx context.Context, session *Session, id string, req models.AtividadeRequest) (*models.Atividade, error) {
	atividade, err := s.owned(ctx, session, id)
	if err != nil {
		return nil, err
	}
	applyAtividade(atividade, req)
	if err := s.atividades.Update(ctx, atividade); err != nil {
		return nil, err
	}
	return atividade, nil
}

func (s *AtividadeService) Delete(ctx context.Context, session *Session, id string) error {
	if _, err := s.owned(ctx, session, id); err != nil {
		return err
	}
	return s.atividades.Delete(ctx, id)
}

func (s *AtividadeService) Aprovar(ctx context.Context, session *Session, id string) (*models.Atividade, error) {
	return s.moderate(ctx, session, id, models.AtividadeAprovada)
}

func (s *AtividadeService) Rejeitar(ctx context.Context, session *Session, id string) (*models.Atividade, error) {
	return s.moderate(ctx, session, id, models.AtividadeRejeitada)
}

func (s *AtividadeService) Pendentes(ctx context.Context, session *Session) ([]models.Atividade, error) {
	if err := requireSession(session, models.UserTipoAdmin); err != nil {
		return nil, err
	}
	return s.atividades.ListByEstado(ctx, models.AtividadePendente)
}

func (s *AtividadeService) moderate(ctx context.Context, session *Session, id string, to models.AtividadeEstado) (*models.Atividade, error) {
	if err := requireSession(session, models.UserTipoAdmin); err != nil {
		return nil, err
	}
	atividade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if atividade.Estado != models.AtividadePendente {
		return nil, conflict("Atividade já foi %s", atividade.Estado)
	}

	if err := s.atividades.UpdateEstado(ctx, id, models.AtividadePendente, to); err != nil {
		if errors.Is(err, models.ErrEstadoAlterado) {
			return nil, conflict("Atividade já foi moderada")
		}
		return nil, err
	}
	atividade.SetEstado(to)
	s.logger.Info("atividade moderated", "atividade_id", id, "estado", to, "admin_id", session.UserID)
	return atividade, nil
}

func (s *AtividadeService) owned(ctx context.Context, session *Session, id string) (*models.Atividade, error) {
	if err := requireSession(session, models.UserTipoFornecedor, models.UserTipoAdmin); err != nil {
		return nil, err
	}
	atividade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsAdmin() {
		return atividade, nil
	}

	fornecedor, err := s.fornecedores.FindByUserID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, forbidden("Not enough permissions")
		}
		return nil, err
	}
	if atividade.FornecedorID == nil || *atividade.FornecedorID != fornecedor.ID {
		return nil, forbidden("Not enough permissions")
	}
	return atividade, nil
}

func applyAtividade(atividade *models.Atividade, req models.AtividadeRequest) {
	atividade.Nome = req.Nome
	atividade.Tipo = req.Tipo
	atividade.Categoria = req.Categoria
	atividade.PrecoPorPessoa = req.PrecoPorPessoa
	atividade.CapacidadeMax = req.CapacidadeMax
	atividade.Localizacao = req.Localizacao
	atividade.Descricao = req.Descricao
	atividade.Imagens = req.Imagens
	atividade.Clima = req.Clima
	atividade.DuracaoMinutos = req.DuracaoMinutos
}
