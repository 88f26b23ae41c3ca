// File: /services/avaliacao_service.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"teamsync-api/models"
)

type AvaliacaoService struct {
	avaliacoes   AvaliacaoRepository
	atividades   AtividadeRepository
	fornecedores FornecedorRepository
	empresas     EmpresaRepository
	logger       *slog.Logger
}

func NewAvaliacaoService(avaliacoes AvaliacaoRepository, atividades AtividadeRepository, fornecedores FornecedorRepository, empresas EmpresaRepository, logger *slog.Logger) *AvaliacaoService {
	return &AvaliacaoService{
		avaliacoes:   avaliacoes,
		atividades:   atividades,
		fornecedores: fornecedores,
		empresas:     empresas,
		logger:       logger,
	}
}

// Create stores a company's review of an activity or a supplier.
func (s *AvaliacaoService) Create(ctx context.Context, session *Session, req models.AvaliacaoRequest) (*models.Avaliacao, error) {
	empresa, err := s.empresa(ctx, session)
	if err != nil {
		return nil, err
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalidInput("Rating must be between 1 and 5")
	}

	avaliacao := &models.Avaliacao{
		ID:         uuid.New().String(),
		EmpresaID:  empresa.ID,
		Rating:     req.Rating,
		Comentario: req.Comentario,
	}

	if req.AtividadeID != nil && *req.AtividadeID != "" {
		atividade, err := s.atividades.FindByID(ctx, *req.AtividadeID)
		if err != nil {
			if isNotFound(err) {
				return nil, notFound("Atividade not found")
			}
			return nil, err
		}
		avaliacao.AtividadeID = &atividade.ID
		avaliacao.FornecedorID = atividade.FornecedorID
	}
	if req.FornecedorID != nil && *req.FornecedorID != "" {
		fornecedor, err := s.fornecedores.FindByID(ctx, *req.FornecedorID)
		if err != nil {
			if isNotFound(err) {
				return nil, notFound("Fornecedor not found")
			}
			return nil, err
		}
		avaliacao.FornecedorID = &fornecedor.ID
	}
	if avaliacao.AtividadeID == nil && avaliacao.FornecedorID == nil {
		return nil, invalidInput("Indique a atividade ou o fornecedor a avaliar")
	}

	if err := s.avaliacoes.Create(ctx, avaliacao); err != nil {
		return nil, err
	}
	s.logger.Info("avaliacao created", "avaliacao_id", avaliacao.ID, "rating", avaliacao.Rating)
	return avaliacao, nil
}

func (s *AvaliacaoService) ListByAtividade(ctx context.Context, atividadeID string) ([]models.Avaliacao, error) {
	return s.avaliacoes.ListByAtividade(ctx, atividadeID)
}

func (s *AvaliacaoService) ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Avaliacao, error) {
	return s.avaliacoes.ListByFornecedor(ctx, fornecedorID)
}

func (s *AvaliacaoService) Minhas(ctx context.Context, session *Session) ([]models.Avaliacao, error) {
	empresa, err := s.empresa(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.avaliacoes.ListByEmpresa(ctx, empresa.ID)
}

func (s *AvaliacaoService) empresa(ctx context.Context, session *Session) (*models.Empresa, error) {
	if err := requireSession(session, models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	empresa, err := s.empresas.FindByUserID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Empresa profile not found")
		}
		return nil, err
	}
	return empresa, nil
}
