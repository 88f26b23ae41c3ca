// File: /services/pagamento_service.go
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"teamsync-api/models"
)

// PagamentoIntent is returned when a payment is opened at the gateway.
type PagamentoIntent struct {
	PagamentoID     string                 `json:"pagamento_id"`
	PaymentIntentID string                 `json:"payment_intent_id,omitempty"`
	PaymentID       string                 `json:"payment_id,omitempty"`
	ClientSecret    string                 `json:"client_secret,omitempty"`
	Status          string                 `json:"status"`
	Estado          models.PagamentoEstado `json:"estado"`
	Gateway         string                 `json:"gateway"`
	PublicKey       string                 `json:"public_key,omitempty"`
	Telefone        string                 `json:"telefone,omitempty"`
}

type PagamentoService struct {
	pagamentos    PagamentoRepository
	reservas      ReservaRepository
	empresas      EmpresaRepository
	gateway       PaymentGateway
	notifier      Notifier
	webhookSecret string
	expiry        time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

func NewPagamentoService(
	pagamentos PagamentoRepository,
	reservas ReservaRepository,
	empresas EmpresaRepository,
	gateway PaymentGateway,
	notifier Notifier,
	webhookSecret string,
	expiry time.Duration,
	logger *slog.Logger,
) *PagamentoService {
	return &PagamentoService{
		pagamentos:    pagamentos,
		reservas:      reservas,
		empresas:      empresas,
		gateway:       gateway,
		notifier:      notifier,
		webhookSecret: webhookSecret,
		expiry:        expiry,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *PagamentoService) Cartao(ctx context.Context, session *Session, req models.PagamentoCartaoRequest) (*PagamentoIntent, error) {
	reserva, err := s.payableReserva(ctx, session, req.ReservaID)
	if err != nil {
		return nil, err
	}

	numero := strings.ReplaceAll(strings.ReplaceAll(req.NumeroCartao, " ", ""), "-", "")
	if len(numero) < 12 {
		return nil, invalidInput("Número de cartão inválido")
	}
	ultimos4 := numero[len(numero)-4:]

	pagamento, err := s.open(ctx, reserva, models.MetodoCartao, req.Descricao, req.EmailFatura, func(p *models.Pagamento) {
		p.CartaoUltimos4 = &ultimos4
	})
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateCardIntent(ctx, pagamento.Valor, map[string]string{
		"reserva_id":      reserva.ID,
		"empresa_id":      reserva.EmpresaID,
		"pagamento_id":    pagamento.ID,
		"cartao_ultimos4": ultimos4,
	})
	if err != nil {
		s.failOpen(ctx, pagamento, err)
		return nil, err
	}
	if err := s.pagamentos.MarkProcessing(ctx, pagamento.ID, intent.PaymentID, models.RawJSON(intent.Raw)); err != nil {
		s.failOpen(ctx, pagamento, err)
		return nil, err
	}
	s.logger.Info("card payment opened", "pagamento_id", pagamento.ID, "reserva_id", reserva.ID, "gateway_payment_id", intent.PaymentID)

	return &PagamentoIntent{
		PagamentoID:     pagamento.ID,
		PaymentIntentID: intent.PaymentID,
		ClientSecret:    intent.ClientSecret,
		Status:          intent.Status,
		Estado:          models.PagamentoProcessando,
		Gateway:         s.gateway.Name(),
		PublicKey:       s.gateway.PublicKey(),
	}, nil
}

func (s *PagamentoService) MBWay(ctx context.Context, session *Session, req models.PagamentoMBWayRequest) (*PagamentoIntent, error) {
	reserva, err := s.payableReserva(ctx, session, req.ReservaID)
	if err != nil {
		return nil, err
	}

	telefone := strings.TrimSpace(req.Telefone)
	pagamento, err := s.open(ctx, reserva, models.MetodoMBWay, req.Descricao, req.EmailFatura, func(p *models.Pagamento) {
		p.Telefone = &telefone
	})
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateMBWayRequest(ctx, pagamento.Valor, telefone, map[string]string{
		"reserva_id":   reserva.ID,
		"empresa_id":   reserva.EmpresaID,
		"pagamento_id": pagamento.ID,
	})
	if err != nil {
		s.failOpen(ctx, pagamento, err)
		return nil, err
	}
	if err := s.pagamentos.MarkProcessing(ctx, pagamento.ID, intent.PaymentID, models.RawJSON(intent.Raw)); err != nil {
		s.failOpen(ctx, pagamento, err)
		return nil, err
	}
	s.logger.Info("mbway payment opened", "pagamento_id", pagamento.ID, "reserva_id", reserva.ID, "gateway_payment_id", intent.PaymentID)

	return &PagamentoIntent{
		PagamentoID: pagamento.ID,
		PaymentID:   intent.PaymentID,
		Status:      intent.Status,
		Estado:      models.PagamentoProcessando,
		Gateway:     "mbway",
		Telefone:    telefone,
	}, nil
}

// open creates the payment row for a reservation, or reopens a failed or
// expired one as a fresh attempt.
func (s *PagamentoService) open(ctx context.Context, reserva *models.Reserva, metodo models.MetodoPagamento, descricao, emailFatura *string, apply func(*models.Pagamento)) (*models.Pagamento, error) {
	if descricao == nil || *descricao == "" {
		d := fmt.Sprintf("Pagamento reserva #%s", reserva.ID)
		descricao = &d
	}

	existing, err := s.pagamentos.FindByReservaID(ctx, reserva.ID)
	switch {
	case err == nil:
		if !existing.Estado.Retryable() {
			return nil, invalidInput("Payment already exists for this reservation")
		}
		existing.Metodo = metodo
		existing.Valor = reserva.PrecoTotal
		existing.Estado = models.PagamentoPendente
		existing.Gateway = s.gateway.Name()
		existing.GatewayPaymentID = nil
		existing.GatewayTransactionID = nil
		existing.GatewayResponse = nil
		existing.CartaoUltimos4 = nil
		existing.Telefone = nil
		existing.DataConclusao = nil
		existing.Descricao = descricao
		existing.EmailFatura = emailFatura
		apply(existing)
		if err := s.pagamentos.Save(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("payment retry", "pagamento_id", existing.ID, "reserva_id", reserva.ID)
		return existing, nil
	case isNotFound(err):
	default:
		return nil, err
	}

	pagamento := &models.Pagamento{
		ID:          uuid.New().String(),
		ReservaID:   reserva.ID,
		Valor:       reserva.PrecoTotal,
		Metodo:      metodo,
		Estado:      models.PagamentoPendente,
		Gateway:     s.gateway.Name(),
		Descricao:   descricao,
		EmailFatura: emailFatura,
	}
	apply(pagamento)
	if err := s.pagamentos.Create(ctx, pagamento); err != nil {
		return nil, err
	}
	return pagamento, nil
}

func (s *PagamentoService) failOpen(ctx context.Context, pagamento *models.Pagamento, cause error) {
	s.logger.Error("payment could not be opened", "pagamento_id", pagamento.ID, "error", cause)
	if err := s.pagamentos.Fail(ctx, pagamento.ID, models.PagamentoFalhado, nil); err != nil {
		s.logger.Error("could not mark payment failed", "pagamento_id", pagamento.ID, "error", err)
	}
}

// Confirmar settles a payment with the outcome reported by the gateway.
func (s *PagamentoService) Confirmar(ctx context.Context, session *Session, id string) (*models.Pagamento, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	pagamento, err := s.pagamentos.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Payment not found")
		}
		return nil, err
	}
	if _, err := s.ownedReserva(ctx, session, pagamento.ReservaID); err != nil {
		return nil, err
	}

	if pagamento.Estado.Terminal() {
		return pagamento, nil
	}
	if pagamento.GatewayPaymentID == nil {
		return nil, conflict("Pagamento ainda não foi enviado ao gateway")
	}

	result, err := s.gateway.GetPaymentStatus(ctx, *pagamento.GatewayPaymentID)
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, pagamento, result)
}

// VerifyWebhookSecret compares the shared secret in constant time. An empty
// configured secret rejects every call.
func (s *PagamentoService) VerifyWebhookSecret(provided string) bool {
	if s.webhookSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(s.webhookSecret)) == 1
}

// Webhook applies a gateway callback. Repeated deliveries are harmless.
func (s *PagamentoService) Webhook(ctx context.Context, req models.GatewayWebhookRequest) (*models.Pagamento, error) {
	pagamento, err := s.pagamentos.FindByGatewayPaymentID(ctx, req.GatewayPaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Payment not found")
		}
		return nil, err
	}
	result := &GatewayResult{
		Status:        GatewayStatus(req.Status),
		TransactionID: req.TransactionID,
		Raw:           []byte(req.Raw),
	}
	return s.settle(ctx, pagamento, result)
}

// settle moves a payment to the gateway's outcome. A success already
// recorded with the same transaction id is returned untouched.
func (s *PagamentoService) settle(ctx context.Context, pagamento *models.Pagamento, result *GatewayResult) (*models.Pagamento, error) {
	switch result.Status {
	case GatewaySucceeded:
		if pagamento.Estado.Terminal() {
			return idempotent(pagamento, result.TransactionID)
		}
		if result.TransactionID == "" {
			return nil, invalidInput("transaction_id em falta")
		}
		if !pagamento.Estado.CanTransition(models.PagamentoConcluido) {
			return nil, conflict("Pagamento %s não pode ser concluído", pagamento.Estado)
		}

		err := s.pagamentos.Complete(ctx, pagamento.ID, result.TransactionID, models.RawJSON(result.Raw), s.now())
		if errors.Is(err, models.ErrEstadoAlterado) {
			current, ferr := s.pagamentos.FindByID(ctx, pagamento.ID)
			if ferr != nil {
				return nil, ferr
			}
			return idempotent(current, result.TransactionID)
		}
		if err != nil {
			return nil, err
		}

		updated, err := s.pagamentos.FindByID(ctx, pagamento.ID)
		if err != nil {
			return nil, err
		}
		s.logger.Info("payment completed", "pagamento_id", updated.ID, "reserva_id", updated.ReservaID, "transaction_id", result.TransactionID)
		s.notifyCompleted(ctx, updated)
		return updated, nil

	case GatewayFailed:
		if pagamento.Estado.Terminal() {
			if pagamento.Estado == models.PagamentoFalhado {
				return pagamento, nil
			}
			return nil, conflict("Pagamento já está %s", pagamento.Estado)
		}
		err := s.pagamentos.Fail(ctx, pagamento.ID, models.PagamentoFalhado, models.RawJSON(result.Raw))
		if err != nil && !errors.Is(err, models.ErrEstadoAlterado) {
			return nil, err
		}
		s.logger.Info("payment failed", "pagamento_id", pagamento.ID, "reserva_id", pagamento.ReservaID)
		return s.pagamentos.FindByID(ctx, pagamento.ID)
	}

	return pagamento, nil
}

func idempotent(pagamento *models.Pagamento, transactionID string) (*models.Pagamento, error) {
	if pagamento.Estado == models.PagamentoConcluido &&
		pagamento.GatewayTransactionID != nil && *pagamento.GatewayTransactionID == transactionID {
		return pagamento, nil
	}
	return nil, conflict("Pagamento já está %s", pagamento.Estado)
}

func (s *PagamentoService) notifyCompleted(ctx context.Context, pagamento *models.Pagamento) {
	reserva, err := s.reservas.FindByID(ctx, pagamento.ReservaID)
	if err != nil {
		return
	}
	empresa, err := s.empresas.FindByID(ctx, reserva.EmpresaID)
	if err != nil || empresa.User == nil {
		return
	}
	to := empresa.User.Email
	if pagamento.EmailFatura != nil && *pagamento.EmailFatura != "" {
		to = *pagamento.EmailFatura
	}
	if err := s.notifier.PaymentCompleted(ctx, to, pagamento); err != nil {
		s.logger.Warn("payment notification failed", "pagamento_id", pagamento.ID, "error", err)
	}
	if err := s.notifier.ReservaConfirmed(ctx, empresa.User.Email, reserva); err != nil {
		s.logger.Warn("reserva notification failed", "reserva_id", reserva.ID, "error", err)
	}
}

func (s *PagamentoService) GetByReserva(ctx context.Context, session *Session, reservaID string) (*models.Pagamento, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if _, err := s.ownedReserva(ctx, session, reservaID); err != nil {
		return nil, err
	}
	pagamento, err := s.pagamentos.FindByReservaID(ctx, reservaID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Payment not found")
		}
		return nil, err
	}
	return pagamento, nil
}

// ExpireStale gives up on payments the gateway never settled.
func (s *PagamentoService) ExpireStale(ctx context.Context) (int64, error) {
	return s.pagamentos.ExpireStale(ctx, s.now().Add(-s.expiry))
}

func (s *PagamentoService) payableReserva(ctx context.Context, session *Session, reservaID string) (*models.Reserva, error) {
	if err := requireSession(session, models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	reserva, err := s.ownedReserva(ctx, session, reservaID)
	if err != nil {
		return nil, err
	}
	if reserva.Estado == models.ReservaCancelada || reserva.Estado == models.ReservaRecusada {
		return nil, conflict("Reserva %s não pode ser paga", reserva.Estado)
	}
	return reserva, nil
}

func (s *PagamentoService) ownedReserva(ctx context.Context, session *Session, reservaID string) (*models.Reserva, error) {
	reserva, err := s.reservas.FindByID(ctx, reservaID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Reserva not found")
		}
		return nil, err
	}
	if session.IsAdmin() {
		return reserva, nil
	}
	empresa, err := s.empresas.FindByUserID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, forbidden("Not authorized")
		}
		return nil, err
	}
	if reserva.EmpresaID != empresa.ID {
		return nil, forbidden("Not authorized")
	}
	return reserva, nil
}
