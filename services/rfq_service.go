// File: /services/rfq_service.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"teamsync-api/models"
	"teamsync-api/utils"
)

type RFQService struct {
	rfqs         RFQRepository
	propostas    PropostaRepository
	empresas     EmpresaRepository
	fornecedores FornecedorRepository
	notifier     Notifier
	logger       *slog.Logger
}

func NewRFQService(rfqs RFQRepository, propostas PropostaRepository, empresas EmpresaRepository, fornecedores FornecedorRepository, notifier Notifier, logger *slog.Logger) *RFQService {
	return &RFQService{
		rfqs:         rfqs,
		propostas:    propostas,
		empresas:     empresas,
		fornecedores: fornecedores,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *RFQService) Create(ctx context.Context, session *Session, req models.RFQRequest) (*models.RFQResumo, error) {
	empresa, err := s.empresaDaSessao(ctx, session)
	if err != nil {
		return nil, err
	}

	preferida, err := utils.ParseDate(req.DataPreferida)
	if err != nil {
		return nil, invalidInput("Data preferida inválida")
	}
	var alternativa *time.Time
	if req.DataAlternativa != nil && *req.DataAlternativa != "" {
		d, err := utils.ParseDate(*req.DataAlternativa)
		if err != nil {
			return nil, invalidInput("Data alternativa inválida")
		}
		alternativa = &d
	}
	raio := models.DefaultRaioKm
	if req.RaioKm != nil {
		raio = *req.RaioKm
	}

	rfq := &models.RFQ{
		ID:                 uuid.New().String(),
		EmpresaID:          empresa.ID,
		NPessoas:           req.NPessoas,
		DataPreferida:      preferida,
		DataAlternativa:    alternativa,
		Localizacao:        req.Localizacao,
		RaioKm:             raio,
		OrcamentoMax:       req.OrcamentoMax,
		Objetivo:           req.Objetivo,
		Preferencias:       req.Preferencias,
		CategoriaPreferida: req.CategoriaPreferida,
		ClimaPreferido:     req.ClimaPreferido,
		DuracaoMaxMinutos:  req.DuracaoMaxMinutos,
		Estado:             models.RFQAberto,
	}
	if err := s.rfqs.Create(ctx, rfq); err != nil {
		return nil, err
	}
	s.logger.Info("rfq created", "rfq_id", rfq.ID, "empresa_id", empresa.ID)

	if err := s.notifier.RFQCreated(ctx, session.Email, rfq); err != nil {
		s.logger.Warn("rfq notification failed", "rfq_id", rfq.ID, "error", err)
	}
	return &models.RFQResumo{RFQ: *rfq}, nil
}

// Minhas lists the calling company's RFQs with their proposal counts.
func (s *RFQService) Minhas(ctx context.Context, session *Session) ([]models.RFQResumo, error) {
	empresa, err := s.empresaDaSessao(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.rfqs.ListByEmpresa(ctx, empresa.ID)
}

// Get shows an RFQ to its owner, or to any supplier while it is still
// taking proposals.
func (s *RFQService) Get(ctx context.Context, session *Session, id string) (*models.RFQResumo, error) {
	if err := requireSession(session, models.UserTipoEmpresa, models.UserTipoFornecedor); err != nil {
		return nil, err
	}
	rfq, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Tipo {
	case models.UserTipoEmpresa:
		empresa, err := s.empresas.FindByUserID(ctx, session.UserID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		if empresa == nil || empresa.ID != rfq.EmpresaID {
			return nil, forbidden("Not authorized")
		}
	case models.UserTipoFornecedor:
		if !rfq.Estado.AcceptsPropostas() {
			return nil, forbidden("RFQ is not open")
		}
	}

	propostas, err := s.propostas.ListByRFQ(ctx, rfq.ID)
	if err != nil {
		return nil, err
	}
	return &models.RFQResumo{RFQ: *rfq, NumPropostas: int64(len(propostas))}, nil
}

// Disponiveis lists the open RFQs the calling supplier has not answered yet.
func (s *RFQService) Disponiveis(ctx context.Context, session *Session) ([]models.RFQ, error) {
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
	return s.rfqs.ListDisponiveis(ctx, fornecedor.ID)
}

func (s *RFQService) Cancelar(ctx context.Context, session *Session, id string) (*models.RFQ, error) {
	empresa, err := s.empresaDaSessao(ctx, session)
	if err != nil {
		return nil, err
	}
	rfq, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rfq.EmpresaID != empresa.ID {
		return nil, notFound("RFQ not found or not authorized")
	}
	if !rfq.Estado.AcceptsPropostas() {
		return nil, conflict("RFQ já está %s", rfq.Estado)
	}

	open := []models.RFQEstado{models.RFQAberto, models.RFQEmNegociacao}
	if err := s.rfqs.UpdateEstado(ctx, rfq.ID, open, models.RFQCancelado); err != nil {
		if errors.Is(err, models.ErrEstadoAlterado) {
			return nil, conflict("RFQ foi alterado entretanto")
		}
		return nil, err
	}
	rfq.Estado = models.RFQCancelado
	s.logger.Info("rfq cancelled", "rfq_id", rfq.ID)
	return rfq, nil
}

func (s *RFQService) find(ctx context.Context, id string) (*models.RFQ, error) {
	rfq, err := s.rfqs.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("RFQ not found")
		}
		return nil, err
	}
	return rfq, nil
}

func (s *RFQService) empresaDaSessao(ctx context.Context, session *Session) (*models.Empresa, error) {
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
