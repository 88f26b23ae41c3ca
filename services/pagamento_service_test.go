package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/services/mocks"
)

type pagamentoFixture struct {
	pagamentos *mocks.MockPagamentoRepository
	reservas   *mocks.MockReservaRepository
	empresas   *mocks.MockEmpresaRepository
	gateway    *mocks.MockPaymentGateway
	notifier   *mocks.MockNotifier
	service    *services.PagamentoService
}

func newPagamentoFixture(ctrl *gomock.Controller) *pagamentoFixture {
	f := &pagamentoFixture{
		pagamentos: mocks.NewMockPagamentoRepository(ctrl),
		reservas:   mocks.NewMockReservaRepository(ctrl),
		empresas:   mocks.NewMockEmpresaRepository(ctrl),
		gateway:    mocks.NewMockPaymentGateway(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
	}
	f.service = services.NewPagamentoService(f.pagamentos, f.reservas, f.empresas, f.gateway, f.notifier, "whsec", 30*time.Minute, discardLogger())
	return f
}

func (f *pagamentoFixture) expectOwnedReserva(reserva *models.Reserva) {
	f.reservas.EXPECT().FindByID(gomock.Any(), reserva.ID).Return(reserva, nil)
	f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: reserva.EmpresaID}, nil)
}

func pendingReserva() *models.Reserva {
	return &models.Reserva{ID: "res-1", EmpresaID: "emp-1", NPessoas: 20, PrecoTotal: 500, Estado: models.ReservaPendente}
}

func processingPagamento() *models.Pagamento {
	return &models.Pagamento{
		ID:               "pag-1",
		ReservaID:        "res-1",
		Valor:            500,
		Metodo:           models.MetodoCartao,
		Estado:           models.PagamentoProcessando,
		GatewayPaymentID: strPtr("mock_pi_1"),
	}
}

func TestPagamentoService_Cartao(t *testing.T) {
	ctx := context.Background()

	t.Run("opens intent and stores only the last digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		f.expectOwnedReserva(pendingReserva())
		f.pagamentos.EXPECT().FindByReservaID(gomock.Any(), "res-1").Return(nil, gorm.ErrRecordNotFound)
		f.gateway.EXPECT().Name().Return("mock").AnyTimes()
		f.gateway.EXPECT().PublicKey().Return("pk_test")
		f.pagamentos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Pagamento) error {
			if p.CartaoUltimos4 == nil || *p.CartaoUltimos4 != "4242" {
				t.Fatalf("expected last digits 4242, got %v", p.CartaoUltimos4)
			}
			if p.Valor != 500 || p.Estado != models.PagamentoPendente {
				t.Fatalf("unexpected pagamento %+v", p)
			}
			return nil
		})
		f.gateway.EXPECT().CreateCardIntent(gomock.Any(), 500.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ float64, metadata map[string]string) (*services.GatewayIntent, error) {
				for k, v := range metadata {
					if v == "4242 4242 4242 4242" || v == "4242424242424242" {
						t.Fatalf("full card number leaked in %s", k)
					}
				}
				return &services.GatewayIntent{PaymentID: "mock_pi_1", ClientSecret: "secret", Status: "requires_payment_method"}, nil
			})
		f.pagamentos.EXPECT().MarkProcessing(gomock.Any(), gomock.Any(), "mock_pi_1", gomock.Any()).Return(nil)

		intent, err := f.service.Cartao(ctx, empresaSession(), models.PagamentoCartaoRequest{
			ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242 4242 4242 4242",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if intent.Estado != models.PagamentoProcessando || intent.PaymentIntentID != "mock_pi_1" {
			t.Fatalf("unexpected intent %+v", intent)
		}
	})

	t.Run("existing payment blocks a new one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		f.expectOwnedReserva(pendingReserva())
		f.pagamentos.EXPECT().FindByReservaID(gomock.Any(), "res-1").Return(processingPagamento(), nil)

		_, err := f.service.Cartao(ctx, empresaSession(), models.PagamentoCartaoRequest{
			ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242424242424242",
		})
		expectKind(t, err, services.ErrInvalidInput)
	})

	t.Run("failed payment is reopened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		failed := processingPagamento()
		failed.Estado = models.PagamentoFalhado
		failed.GatewayTransactionID = strPtr("old")

		f.expectOwnedReserva(pendingReserva())
		f.pagamentos.EXPECT().FindByReservaID(gomock.Any(), "res-1").Return(failed, nil)
		f.gateway.EXPECT().Name().Return("mock").AnyTimes()
		f.gateway.EXPECT().PublicKey().Return("")
		f.pagamentos.EXPECT().Save(gomock.Any(), failed).DoAndReturn(func(_ context.Context, p *models.Pagamento) error {
			if p.Estado != models.PagamentoPendente || p.GatewayPaymentID != nil || p.GatewayTransactionID != nil {
				t.Fatalf("expected a clean retry, got %+v", p)
			}
			return nil
		})
		f.gateway.EXPECT().CreateCardIntent(gomock.Any(), 500.0, gomock.Any()).Return(&services.GatewayIntent{PaymentID: "mock_pi_2"}, nil)
		f.pagamentos.EXPECT().MarkProcessing(gomock.Any(), "pag-1", "mock_pi_2", gomock.Any()).Return(nil)

		if _, err := f.service.Cartao(ctx, empresaSession(), models.PagamentoCartaoRequest{
			ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242424242424242",
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("cancelled reservation cannot be paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		reserva := pendingReserva()
		reserva.Estado = models.ReservaCancelada
		f.expectOwnedReserva(reserva)

		_, err := f.service.Cartao(ctx, empresaSession(), models.PagamentoCartaoRequest{
			ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242424242424242",
		})
		expectKind(t, err, services.ErrConflict)
	})

	t.Run("gateway failure marks the payment failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		f.expectOwnedReserva(pendingReserva())
		f.pagamentos.EXPECT().FindByReservaID(gomock.Any(), "res-1").Return(nil, gorm.ErrRecordNotFound)
		f.gateway.EXPECT().Name().Return("mock").AnyTimes()
		f.pagamentos.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.gateway.EXPECT().CreateCardIntent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		f.pagamentos.EXPECT().Fail(gomock.Any(), gomock.Any(), models.PagamentoFalhado, gomock.Any()).Return(nil)

		_, err := f.service.Cartao(ctx, empresaSession(), models.PagamentoCartaoRequest{
			ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242424242424242",
		})
		if err == nil || err.Error() != "gateway down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("storage failure after the intent leaves the payment retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		var stored *models.Pagamento
		req := models.PagamentoCartaoRequest{ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242424242424242"}
		f.gateway.EXPECT().Name().Return("mock").AnyTimes()
		f.gateway.EXPECT().PublicKey().Return("pk_test").AnyTimes()
		f.gateway.EXPECT().CreateCardIntent(gomock.Any(), 500.0, gomock.Any()).
			Return(&services.GatewayIntent{PaymentID: "mock_pi_1", Status: "processing"}, nil).Times(2)

		// first attempt
		f.expectOwnedReserva(pendingReserva())
		f.pagamentos.EXPECT().FindByReservaID(gomock.Any(), "res-1").Return(nil, gorm.ErrRecordNotFound)
		f.pagamentos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Pagamento) error {
			stored = p
			return nil
		})
		f.pagamentos.EXPECT().MarkProcessing(gomock.Any(), gomock.Any(), "mock_pi_1", gomock.Any()).Return(errors.New("db blip"))
		f.pagamentos.EXPECT().Fail(gomock.Any(), gomock.Any(), models.PagamentoFalhado, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, to models.PagamentoEstado, _ models.RawJSON) error {
				if id != stored.ID {
					t.Fatalf("expected %s to be failed, got %s", stored.ID, id)
				}
				stored.Estado = to
				return nil
			})

		if _, err := f.service.Cartao(ctx, empresaSession(), req); err == nil || err.Error() != "db blip" {
			t.Fatalf("expected the storage error, got %v", err)
		}
		if stored.Estado != models.PagamentoFalhado {
			t.Fatalf("expected falhado, got %s", stored.Estado)
		}

		// retry reopens the same row
		f.expectOwnedReserva(pendingReserva())
		f.pagamentos.EXPECT().FindByReservaID(gomock.Any(), "res-1").DoAndReturn(func(context.Context, string) (*models.Pagamento, error) {
			return stored, nil
		})
		f.pagamentos.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.pagamentos.EXPECT().MarkProcessing(gomock.Any(), gomock.Any(), "mock_pi_1", gomock.Any()).Return(nil)

		intent, err := f.service.Cartao(ctx, empresaSession(), req)
		if err != nil {
			t.Fatalf("expected the retry to succeed, got %v", err)
		}
		if intent.PagamentoID != stored.ID || intent.Estado != models.PagamentoProcessando {
			t.Fatalf("unexpected intent %+v", intent)
		}
	})
}

func TestPagamentoService_Confirmar(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway success completes once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		concluded := processingPagamento()
		concluded.Estado = models.PagamentoConcluido
		concluded.GatewayTransactionID = strPtr("mock_tx_1")

		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(processingPagamento(), nil)
		f.expectOwnedReserva(pendingReserva())
		f.gateway.EXPECT().GetPaymentStatus(gomock.Any(), "mock_pi_1").Return(&services.GatewayResult{Status: services.GatewaySucceeded, TransactionID: "mock_tx_1"}, nil)
		f.pagamentos.EXPECT().Complete(gomock.Any(), "pag-1", "mock_tx_1", gomock.Any(), gomock.Any()).Return(nil).Times(1)
		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(concluded, nil)
		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(pendingReserva(), nil)
		f.empresas.EXPECT().FindByID(gomock.Any(), "emp-1").Return(&models.Empresa{ID: "emp-1", User: &models.User{Email: "empresa@example.com"}}, nil)
		f.notifier.EXPECT().PaymentCompleted(gomock.Any(), "empresa@example.com", concluded).Return(nil)
		f.notifier.EXPECT().ReservaConfirmed(gomock.Any(), "empresa@example.com", gomock.Any()).Return(nil)

		got, err := f.service.Confirmar(ctx, empresaSession(), "pag-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Estado != models.PagamentoConcluido {
			t.Fatalf("expected concluido, got %s", got.Estado)
		}
	})

	t.Run("still pending at the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(processingPagamento(), nil)
		f.expectOwnedReserva(pendingReserva())
		f.gateway.EXPECT().GetPaymentStatus(gomock.Any(), "mock_pi_1").Return(&services.GatewayResult{Status: services.GatewayPending}, nil)

		got, err := f.service.Confirmar(ctx, empresaSession(), "pag-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Estado != models.PagamentoProcessando {
			t.Fatalf("expected processando, got %s", got.Estado)
		}
	})

	t.Run("terminal payment is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		concluded := processingPagamento()
		concluded.Estado = models.PagamentoConcluido
		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(concluded, nil)
		f.expectOwnedReserva(pendingReserva())

		got, err := f.service.Confirmar(ctx, empresaSession(), "pag-1")
		if err != nil || got != concluded {
			t.Fatalf("expected the stored payment, got %+v (%v)", got, err)
		}
	})

	t.Run("lost race with same transaction is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		concluded := processingPagamento()
		concluded.Estado = models.PagamentoConcluido
		concluded.GatewayTransactionID = strPtr("mock_tx_1")

		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(processingPagamento(), nil)
		f.expectOwnedReserva(pendingReserva())
		f.gateway.EXPECT().GetPaymentStatus(gomock.Any(), "mock_pi_1").Return(&services.GatewayResult{Status: services.GatewaySucceeded, TransactionID: "mock_tx_1"}, nil)
		f.pagamentos.EXPECT().Complete(gomock.Any(), "pag-1", "mock_tx_1", gomock.Any(), gomock.Any()).Return(models.ErrEstadoAlterado)
		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(concluded, nil)

		got, err := f.service.Confirmar(ctx, empresaSession(), "pag-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Estado != models.PagamentoConcluido {
			t.Fatalf("expected concluido, got %s", got.Estado)
		}
	})

	t.Run("someone else's payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(processingPagamento(), nil)
		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(pendingReserva(), nil)
		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-2"}, nil)

		_, err := f.service.Confirmar(ctx, empresaSession(), "pag-1")
		expectKind(t, err, services.ErrForbidden)
	})
}

func TestPagamentoService_Webhook(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated delivery has no side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		concluded := processingPagamento()
		concluded.Estado = models.PagamentoConcluido
		concluded.GatewayTransactionID = strPtr("mock_tx_1")
		f.pagamentos.EXPECT().FindByGatewayPaymentID(gomock.Any(), "mock_pi_1").Return(concluded, nil)

		got, err := f.service.Webhook(ctx, models.GatewayWebhookRequest{GatewayPaymentID: "mock_pi_1", TransactionID: "mock_tx_1", Status: "succeeded"})
		if err != nil || got != concluded {
			t.Fatalf("expected stored payment, got %+v (%v)", got, err)
		}
	})

	t.Run("different transaction on a concluded payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		concluded := processingPagamento()
		concluded.Estado = models.PagamentoConcluido
		concluded.GatewayTransactionID = strPtr("mock_tx_1")
		f.pagamentos.EXPECT().FindByGatewayPaymentID(gomock.Any(), "mock_pi_1").Return(concluded, nil)

		_, err := f.service.Webhook(ctx, models.GatewayWebhookRequest{GatewayPaymentID: "mock_pi_1", TransactionID: "mock_tx_2", Status: "succeeded"})
		expectKind(t, err, services.ErrConflict)
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPagamentoFixture(ctrl)

		failed := processingPagamento()
		failed.Estado = models.PagamentoFalhado
		f.pagamentos.EXPECT().FindByGatewayPaymentID(gomock.Any(), "mock_pi_1").Return(processingPagamento(), nil)
		f.pagamentos.EXPECT().Fail(gomock.Any(), "pag-1", models.PagamentoFalhado, gomock.Any()).Return(nil)
		f.pagamentos.EXPECT().FindByID(gomock.Any(), "pag-1").Return(failed, nil)

		got, err := f.service.Webhook(ctx, models.GatewayWebhookRequest{GatewayPaymentID: "mock_pi_1", Status: "failed"})
		if err != nil || got.Estado != models.PagamentoFalhado {
			t.Fatalf("expected falhado, got %+v (%v)", got, err)
		}
	})
}

func TestPagamentoService_VerifyWebhookSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPagamentoFixture(ctrl)

	if !f.service.VerifyWebhookSecret("whsec") {
		t.Fatalf("expected matching secret to pass")
	}
	if f.service.VerifyWebhookSecret("wrong") || f.service.VerifyWebhookSecret("") {
		t.Fatalf("expected wrong secret to fail")
	}

	open := services.NewPagamentoService(nil, nil, nil, nil, nil, "", time.Minute, discardLogger())
	if open.VerifyWebhookSecret("") {
		t.Fatalf("expected an unset secret to reject every call")
	}
}
