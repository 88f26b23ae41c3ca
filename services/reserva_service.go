// File: /services/reserva_service.go
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"teamsync-api/models"
	"teamsync-api/utils"
)

type ReservaService struct {
	reservas     ReservaRepository
	atividades   AtividadeRepository
	propostas    PropostaRepository
	empresas     EmpresaRepository
	fornecedores FornecedorRepository
	auth         *AuthService
	notifier     Notifier
	logger       *slog.Logger
}

func NewReservaService(
	reservas ReservaRepository,
	atividades AtividadeRepository,
	propostas PropostaRepository,
	empresas EmpresaRepository,
	fornecedores FornecedorRepository,
	auth *AuthService,
	notifier Notifier,
	logger *slog.Logger,
) *ReservaService {
	return &ReservaService{
		reservas:     reservas,
		atividades:   atividades,
		propostas:    propostas,
		empresas:     empresas,
		fornecedores: fornecedores,
		auth:         auth,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *ReservaService) Create(ctx context.Context, session *Session, req models.ReservaRequest) (*models.Reserva, error) {
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
	return s.book(ctx, empresa, req.AtividadeID, req.Data, req.NPessoas)
}

// CreateGuest books on behalf of a visitor without an account.
func (s *ReservaService) CreateGuest(ctx context.Context, req models.ReservaGuestRequest) (*models.Reserva, error) {
	// Check the activity first so a bad request leaves no guest account behind.
	if _, err := s.bookableAtividade(ctx, req.AtividadeID, req.NPessoas); err != nil {
		return nil, err
	}
	empresa, err := s.auth.GuestEmpresa(ctx, req.Email, req.NomeEmpresa, req.Telefone, req.Localizacao)
	if err != nil {
		return nil, err
	}
	return s.book(ctx, empresa, req.AtividadeID, req.Data, req.NPessoas)
}

func (s *ReservaService) book(ctx context.Context, empresa *models.Empresa, atividadeID, data string, nPessoas int) (*models.Reserva, error) {
	atividade, err := s.bookableAtividade(ctx, atividadeID, nPessoas)
	if err != nil {
		return nil, err
	}
	dia, err := utils.ParseDate(data)
	if err != nil {
		return nil, invalidInput("Data inválida")
	}
	total, err := utils.TotalFromPerPerson(atividade.PrecoPorPessoa, nPessoas)
	if err != nil {
		return nil, invalidInput("Número de pessoas inválido")
	}

	reserva := &models.Reserva{
		ID:          uuid.New().String(),
		EmpresaID:   empresa.ID,
		AtividadeID: &atividade.ID,
		Data:        dia,
		NPessoas:    nPessoas,
		PrecoTotal:  total,
		Estado:      models.ReservaPendente,
	}
	if err := s.reservas.Create(ctx, reserva); err != nil {
		return nil, err
	}
	reserva.Atividade = atividade

	s.logger.Info("reserva created", "reserva_id", reserva.ID, "empresa_id", empresa.ID, "atividade_id", atividade.ID)
	return reserva, nil
}

func (s *ReservaService) bookableAtividade(ctx context.Context, id string, nPessoas int) (*models.Atividade, error) {
	atividade, err := s.atividades.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Atividade not found")
		}
		return nil, err
	}
	if !atividade.Aprovada {
		return nil, invalidInput("Atividade não está disponível para reserva")
	}
	if nPessoas > atividade.CapacidadeMax {
		return nil, invalidInput("Número de pessoas excede a capacidade máxima (%d)", atividade.CapacidadeMax)
	}
	return atividade, nil
}

func (s *ReservaService) ListByEmpresa(ctx context.Context, session *Session, empresaID string) ([]models.Reserva, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	empresa, err := s.empresas.FindByID(ctx, empresaID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Empresa not found")
		}
		return nil, err
	}
	if empresa.UserID != session.UserID && !session.IsAdmin() {
		return nil, forbidden("Not enough permissions")
	}
	return s.reservas.ListByEmpresa(ctx, empresaID)
}

func (s *ReservaService) ListByFornecedor(ctx context.Context, session *Session, fornecedorID string) ([]models.Reserva, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	fornecedor, err := s.fornecedores.FindByID(ctx, fornecedorID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Fornecedor not found")
		}
		return nil, err
	}
	if fornecedor.UserID != session.UserID && !session.IsAdmin() {
		return nil, forbidden("Not enough permissions")
	}
	return s.reservas.ListByFornecedor(ctx, fornecedorID)
}

// Detalhe returns one reservation to either party of it.
func (s *ReservaService) Detalhe(ctx context.Context, session *Session, id string) (*models.Reserva, error) {
	reserva, parte, err := s.access(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if parte == parteNenhuma && !session.IsAdmin() {
		return nil, forbidden("Not enough permissions")
	}
	return reserva, nil
}

// Aceitar confirms a pending reservation. Only the supplier behind it may.
func (s *ReservaService) Aceitar(ctx context.Context, session *Session, id string) (*models.Reserva, error) {
	return s.decide(ctx, session, id, models.ReservaConfirmada)
}

func (s *ReservaService) Recusar(ctx context.Context, session *Session, id string) (*models.Reserva, error) {
	return s.decide(ctx, session, id, models.ReservaRecusada)
}

func (s *ReservaService) decide(ctx context.Context, session *Session, id string, to models.ReservaEstado) (*models.Reserva, error) {
	if err := requireSession(session, models.UserTipoFornecedor); err != nil {
		return nil, err
	}
	reserva, parte, err := s.access(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if parte != parteFornecedor {
		return nil, forbidden("Not enough permissions")
	}
	if err := s.transition(ctx, reserva, to); err != nil {
		return nil, err
	}

	if to == models.ReservaConfirmada {
		s.notifyEmpresa(ctx, reserva)
	}
	return reserva, nil
}

func (s *ReservaService) Cancelar(ctx context.Context, session *Session, id string) (*models.Reserva, error) {
	reserva, parte, err := s.access(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if parte != parteEmpresa && !session.IsAdmin() {
		return nil, forbidden("Not enough permissions")
	}
	if err := s.transition(ctx, reserva, models.ReservaCancelada); err != nil {
		return nil, err
	}
	return reserva, nil
}

func (s *ReservaService) transition(ctx context.Context, reserva *models.Reserva, to models.ReservaEstado) error {
	if !reserva.Estado.CanTransition(to) {
		return conflict("Reserva %s não pode passar a %s", reserva.Estado, to)
	}
	if err := s.reservas.UpdateEstado(ctx, reserva.ID, []models.ReservaEstado{reserva.Estado}, to); err != nil {
		if errors.Is(err, models.ErrEstadoAlterado) {
			return conflict("Reserva foi alterada entretanto")
		}
		return err
	}
	s.logger.Info("reserva estado changed", "reserva_id", reserva.ID, "from", reserva.Estado, "to", to)
	reserva.Estado = to
	return nil
}

func (s *ReservaService) notifyEmpresa(ctx context.Context, reserva *models.Reserva) {
	empresa, err := s.empresas.FindByID(ctx, reserva.EmpresaID)
	if err != nil || empresa.User == nil {
		return
	}
	if err := s.notifier.ReservaConfirmed(ctx, empresa.User.Email, reserva); err != nil {
		s.logger.Warn("reserva notification failed", "reserva_id", reserva.ID, "error", err)
	}
}

type parteReserva int

const (
	parteNenhuma parteReserva = iota
	parteEmpresa
	parteFornecedor
)

func (s *ReservaService) access(ctx context.Context, session *Session, id string) (*models.Reserva, parteReserva, error) {
	if err := requireSession(session); err != nil {
		return nil, parteNenhuma, err
	}
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, parteNenhuma, notFound("Reserva not found")
		}
		return nil, parteNenhuma, err
	}
	parte, err := reservaParte(ctx, session, reserva, s.empresas, s.fornecedores, s.propostas)
	if err != nil {
		return nil, parteNenhuma, err
	}
	return reserva, parte, nil
}

// reservaParte tells which side of the reservation the session is on. The
// supplier is found through the booked activity, or through the accepted
// proposal for bookings made from an RFQ.
func reservaParte(ctx context.Context, session *Session, reserva *models.Reserva, empresas EmpresaRepository, fornecedores FornecedorRepository, propostas PropostaRepository) (parteReserva, error) {
	switch session.Tipo {
	case models.UserTipoEmpresa:
		empresa, err := empresas.FindByUserID(ctx, session.UserID)
		if err != nil {
			if isNotFound(err) {
				return parteNenhuma, nil
			}
			return parteNenhuma, err
		}
		if empresa.ID == reserva.EmpresaID {
			return parteEmpresa, nil
		}
	case models.UserTipoFornecedor:
		fornecedor, err := fornecedores.FindByUserID(ctx, session.UserID)
		if err != nil {
			if isNotFound(err) {
				return parteNenhuma, nil
			}
			return parteNenhuma, err
		}
		fornecedorID, err := fornecedorDaReserva(ctx, reserva, propostas)
		if err != nil {
			return parteNenhuma, err
		}
		if fornecedorID != "" && fornecedorID == fornecedor.ID {
			return parteFornecedor, nil
		}
	}
	return parteNenhuma, nil
}

func fornecedorDaReserva(ctx context.Context, reserva *models.Reserva, propostas PropostaRepository) (string, error) {
	if reserva.Atividade != nil && reserva.Atividade.FornecedorID != nil {
		return *reserva.Atividade.FornecedorID, nil
	}
	if reserva.PropostaID == nil {
		return "", nil
	}
	proposta, err := propostas.FindByID(ctx, *reserva.PropostaID)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return proposta.FornecedorID, nil
}
