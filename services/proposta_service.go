// File: /services/proposta_service.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"teamsync-api/models"
	"teamsync-api/utils"
)

type PropostaService struct {
	propostas    PropostaRepository
	rfqs         RFQRepository
	reservas     ReservaRepository
	atividades   AtividadeRepository
	empresas     EmpresaRepository
	fornecedores FornecedorRepository
	notifier     Notifier
	validity     time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

func NewPropostaService(
	propostas PropostaRepository,
	rfqs RFQRepository,
	reservas ReservaRepository,
	atividades AtividadeRepository,
	empresas EmpresaRepository,
	fornecedores FornecedorRepository,
	notifier Notifier,
	validity time.Duration,
	logger *slog.Logger,
) *PropostaService {
	return &PropostaService{
		propostas:    propostas,
		rfqs:         rfqs,
		reservas:     reservas,
		atividades:   atividades,
		empresas:     empresas,
		fornecedores: fornecedores,
		notifier:     notifier,
		validity:     validity,
		logger:       logger,
		now:          time.Now,
	}
}

// RankPropostas orders proposals by total price, cheapest first, keeping the
// original order between equal prices. The first entry is flagged as the
// best price.
func RankPropostas(propostas []models.Proposta) []models.PropostaComparada {
	ranked := make([]models.PropostaComparada, len(propostas))
	for i, p := range propostas {
		ranked[i] = models.PropostaComparada{Proposta: p, Acoes: p.Estado.Acao()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PrecoTotal < ranked[j].PrecoTotal
	})
	if len(ranked) > 0 {
		ranked[0].MelhorPreco = true
	}
	return ranked
}

// Create submits a supplier's quote for an RFQ. One of the two prices may be
// omitted and is derived from the RFQ headcount.
func (s *PropostaService) Create(ctx context.Context, session *Session, req models.PropostaRequest) (*models.Proposta, error) {
	fornecedor, err := s.fornecedorDaSessao(ctx, session)
	if err != nil {
		return nil, err
	}
	rfq, err := s.rfqs.FindByID(ctx, req.RFQID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("RFQ not found")
		}
		return nil, err
	}
	if !rfq.Estado.AcceptsPropostas() {
		return nil, conflict("RFQ não está aberto a propostas")
	}

	if req.AtividadeID != nil && *req.AtividadeID != "" {
		atividade, err := s.atividades.FindByID(ctx, *req.AtividadeID)
		if err != nil {
			if isNotFound(err) {
				return nil, notFound("Atividade not found")
			}
			return nil, err
		}
		if atividade.FornecedorID == nil || *atividade.FornecedorID != fornecedor.ID {
			return nil, forbidden("A atividade não pertence a este fornecedor")
		}
	}

	total, porPessoa, err := resolvePrecos(req.PrecoTotal, req.PrecoPorPessoa, rfq.NPessoas)
	if err != nil {
		return nil, err
	}

	proposta := &models.Proposta{
		ID:             uuid.New().String(),
		RFQID:          rfq.ID,
		FornecedorID:   fornecedor.ID,
		AtividadeID:    req.AtividadeID,
		PrecoTotal:     total,
		PrecoPorPessoa: porPessoa,
		Descricao:      req.Descricao,
		Extras:         req.Extras,
		Condicoes:      req.Condicoes,
		DuracaoMinutos: req.DuracaoMinutos,
		Estado:         models.PropostaPendente,
		DataExpiracao:  s.now().Add(s.validity),
	}
	if req.DataProposta != nil && *req.DataProposta != "" {
		d, err := utils.ParseDate(*req.DataProposta)
		if err != nil {
			return nil, invalidInput("Data da proposta inválida")
		}
		proposta.DataProposta = &d
	}

	if err := s.propostas.Create(ctx, proposta); err != nil {
		return nil, err
	}
	proposta.Fornecedor = fornecedor
	s.logger.Info("proposta created", "proposta_id", proposta.ID, "rfq_id", rfq.ID, "fornecedor_id", fornecedor.ID)

	if rfq.Estado == models.RFQAberto {
		err := s.rfqs.UpdateEstado(ctx, rfq.ID, []models.RFQEstado{models.RFQAberto}, models.RFQEmNegociacao)
		if err != nil && !errors.Is(err, models.ErrEstadoAlterado) {
			return nil, err
		}
	}

	if rfq.Empresa != nil && rfq.Empresa.User != nil {
		if err := s.notifier.PropostaReceived(ctx, rfq.Empresa.User.Email, rfq, proposta); err != nil {
			s.logger.Warn("proposta notification failed", "proposta_id", proposta.ID, "error", err)
		}
	}
	return proposta, nil
}

// resolvePrecos fills whichever price is missing and rejects a pair that
// disagrees by more than a cent per person.
func resolvePrecos(total, porPessoa *float64, nPessoas int) (float64, float64, error) {
	switch {
	case total != nil && porPessoa != nil:
		if !utils.PricesConsistent(*total, *porPessoa, nPessoas) {
			return 0, 0, utils.ValidationErrors{{
				Field:   "preco_total",
				Message: "O preço total não corresponde ao preço por pessoa",
			}}
		}
		return utils.Round2(*total), utils.Round2(*porPessoa), nil
	case total != nil:
		pp, err := utils.PerPersonFromTotal(*total, nPessoas)
		if err != nil {
			return 0, 0, invalidInput("Número de pessoas inválido")
		}
		return utils.Round2(*total), pp, nil
	case porPessoa != nil:
		t, err := utils.TotalFromPerPerson(*porPessoa, nPessoas)
		if err != nil {
			return 0, 0, invalidInput("Número de pessoas inválido")
		}
		return t, utils.Round2(*porPessoa), nil
	}
	return 0, 0, utils.ValidationErrors{{Field: "preco_total", Message: "Por favor, informe o preço"}}
}

func (s *PropostaService) Minhas(ctx context.Context, session *Session) ([]models.Proposta, error) {
	fornecedor, err := s.fornecedorDaSessao(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.propostas.ListByFornecedor(ctx, fornecedor.ID)
}

// ListByRFQ returns the ranked comparison of an RFQ's proposals to the
// company that issued it.
func (s *PropostaService) ListByRFQ(ctx context.Context, session *Session, rfqID string) ([]models.PropostaComparada, error) {
	if err := requireSession(session, models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	rfq, err := s.rfqs.FindByID(ctx, rfqID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("RFQ not found")
		}
		return nil, err
	}
	if err := s.checkOwner(ctx, session, rfq); err != nil {
		return nil, err
	}

	propostas, err := s.propostas.ListByRFQ(ctx, rfq.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(propostas))
	for i, p := range propostas {
		ids[i] = p.ID
	}
	reservaPorProposta, err := s.reservas.MapByPropostas(ctx, ids)
	if err != nil {
		return nil, err
	}

	ranked := RankPropostas(propostas)
	for i := range ranked {
		if reservaID, ok := reservaPorProposta[ranked[i].ID]; ok {
			id := reservaID
			ranked[i].ReservaID = &id
		}
	}
	return ranked, nil
}

// Aceitar accepts a proposal, closes its RFQ and books the reservation the
// company then pays for.
func (s *PropostaService) Aceitar(ctx context.Context, session *Session, id string) (*models.PropostaComparada, error) {
	proposta, rfq, err := s.forDecision(ctx, session, id, models.PropostaAceite)
	if err != nil {
		return nil, err
	}
	if !rfq.Estado.AcceptsPropostas() {
		return nil, conflict("RFQ já está %s", rfq.Estado)
	}

	preco := proposta.PrecoTotal
	if proposta.AtividadeID != nil {
		atividade, err := s.atividades.FindByID(ctx, *proposta.AtividadeID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		if atividade != nil {
			if t, err := utils.TotalFromPerPerson(atividade.PrecoPorPessoa, rfq.NPessoas); err == nil {
				preco = t
			}
		}
	}

	propostaID := proposta.ID
	reserva := &models.Reserva{
		ID:          uuid.New().String(),
		EmpresaID:   rfq.EmpresaID,
		AtividadeID: proposta.AtividadeID,
		PropostaID:  &propostaID,
		Data:        rfq.DataPreferida,
		NPessoas:    rfq.NPessoas,
		PrecoTotal:  preco,
		Estado:      models.ReservaPendente,
	}
	if err := s.propostas.Accept(ctx, proposta.ID, reserva); err != nil {
		if errors.Is(err, models.ErrEstadoAlterado) {
			return nil, conflict("Proposta já não está pendente")
		}
		return nil, err
	}
	proposta.Estado = models.PropostaAceite
	s.logger.Info("proposta accepted", "proposta_id", proposta.ID, "rfq_id", rfq.ID, "reserva_id", reserva.ID)

	if proposta.Fornecedor != nil && proposta.Fornecedor.User != nil {
		if err := s.notifier.PropostaAccepted(ctx, proposta.Fornecedor.User.Email, proposta, reserva.ID); err != nil {
			s.logger.Warn("proposta notification failed", "proposta_id", proposta.ID, "error", err)
		}
	}

	reservaID := reserva.ID
	return &models.PropostaComparada{Proposta: *proposta, ReservaID: &reservaID, Acoes: proposta.Estado.Acao()}, nil
}

func (s *PropostaService) Recusar(ctx context.Context, session *Session, id string) (*models.Proposta, error) {
	proposta, _, err := s.forDecision(ctx, session, id, models.PropostaRecusada)
	if err != nil {
		return nil, err
	}
	if err := s.propostas.UpdateEstado(ctx, proposta.ID, models.PropostaPendente, models.PropostaRecusada); err != nil {
		if errors.Is(err, models.ErrEstadoAlterado) {
			return nil, conflict("Proposta já não está pendente")
		}
		return nil, err
	}
	proposta.Estado = models.PropostaRecusada
	s.logger.Info("proposta rejected", "proposta_id", proposta.ID)
	return proposta, nil
}

// ExpireStale marks pending proposals past their validity as expired.
func (s *PropostaService) ExpireStale(ctx context.Context) (int64, error) {
	return s.propostas.ExpireBefore(ctx, s.now())
}

func (s *PropostaService) forDecision(ctx context.Context, session *Session, id string, to models.PropostaEstado) (*models.Proposta, *models.RFQ, error) {
	if err := requireSession(session, models.UserTipoEmpresa); err != nil {
		return nil, nil, err
	}
	proposta, err := s.propostas.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, notFound("Proposta not found")
		}
		return nil, nil, err
	}
	rfq, err := s.rfqs.FindByID(ctx, proposta.RFQID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, notFound("RFQ not found")
		}
		return nil, nil, err
	}
	if err := s.checkOwner(ctx, session, rfq); err != nil {
		return nil, nil, err
	}
	if !proposta.Estado.CanTransition(to) {
		return nil, nil, conflict("Proposta %s não pode passar a %s", proposta.Estado, to)
	}
	return proposta, rfq, nil
}

func (s *PropostaService) checkOwner(ctx context.Context, session *Session, rfq *models.RFQ) error {
	empresa, err := s.empresas.FindByUserID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return notFound("Empresa profile not found")
		}
		return err
	}
	if rfq.EmpresaID != empresa.ID {
		return forbidden("Not authorized")
	}
	return nil
}

func (s *PropostaService) fornecedorDaSessao(ctx context.Context, session *Session) (*models.Fornecedor, error) {
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
	return fornecedor, nil
}
