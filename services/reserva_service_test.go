package services_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/services/mocks"
)

type reservaFixture struct {
	reservas     *mocks.MockReservaRepository
	atividades   *mocks.MockAtividadeRepository
	propostas    *mocks.MockPropostaRepository
	empresas     *mocks.MockEmpresaRepository
	fornecedores *mocks.MockFornecedorRepository
	notifier     *mocks.MockNotifier
	service      *services.ReservaService
}

func newReservaFixture(ctrl *gomock.Controller) *reservaFixture {
	f := &reservaFixture{
		reservas:     mocks.NewMockReservaRepository(ctrl),
		atividades:   mocks.NewMockAtividadeRepository(ctrl),
		propostas:    mocks.NewMockPropostaRepository(ctrl),
		empresas:     mocks.NewMockEmpresaRepository(ctrl),
		fornecedores: mocks.NewMockFornecedorRepository(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
	}
	f.service = services.NewReservaService(f.reservas, f.atividades, f.propostas, f.empresas, f.fornecedores, nil, f.notifier, discardLogger())
	return f
}

func approvedAtividade() *models.Atividade {
	a := &models.Atividade{ID: "atv-1", Nome: "Canoagem no Tejo", PrecoPorPessoa: 25, CapacidadeMax: 30, FornecedorID: strPtr("forn-1")}
	a.SetEstado(models.AtividadeAprovada)
	return a
}

func TestReservaService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.atividades.EXPECT().FindByID(gomock.Any(), "atv-1").Return(approvedAtividade(), nil)
		f.reservas.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		reserva, err := f.service.Create(ctx, empresaSession(), models.ReservaRequest{AtividadeID: "atv-1", Data: "2026-06-12", NPessoas: 12})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reserva.PrecoTotal != 300 || reserva.Estado != models.ReservaPendente {
			t.Fatalf("unexpected reserva %+v", reserva)
		}
	})

	t.Run("over capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.atividades.EXPECT().FindByID(gomock.Any(), "atv-1").Return(approvedAtividade(), nil)

		_, err := f.service.Create(ctx, empresaSession(), models.ReservaRequest{AtividadeID: "atv-1", Data: "2026-06-12", NPessoas: 31})
		expectKind(t, err, services.ErrInvalidInput)
	})

	t.Run("pending activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		pendente := approvedAtividade()
		pendente.SetEstado(models.AtividadePendente)
		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.atividades.EXPECT().FindByID(gomock.Any(), "atv-1").Return(pendente, nil)

		_, err := f.service.Create(ctx, empresaSession(), models.ReservaRequest{AtividadeID: "atv-1", Data: "2026-06-12", NPessoas: 2})
		expectKind(t, err, services.ErrInvalidInput)
	})

	t.Run("unknown activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.atividades.EXPECT().FindByID(gomock.Any(), "x").Return(nil, gorm.ErrRecordNotFound)

		_, err := f.service.Create(ctx, empresaSession(), models.ReservaRequest{AtividadeID: "x", Data: "2026-06-12", NPessoas: 2})
		expectKind(t, err, services.ErrNotFound)
	})
}

func TestReservaService_Transitions(t *testing.T) {
	ctx := context.Background()

	reservaWith := func(estado models.ReservaEstado) *models.Reserva {
		return &models.Reserva{ID: "res-1", EmpresaID: "emp-1", Estado: estado, Atividade: approvedAtividade()}
	}

	t.Run("supplier accepts a pending booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reservaWith(models.ReservaPendente), nil)
		f.fornecedores.EXPECT().FindByUserID(gomock.Any(), "user-forn").Return(&models.Fornecedor{ID: "forn-1"}, nil)
		f.reservas.EXPECT().UpdateEstado(gomock.Any(), "res-1", []models.ReservaEstado{models.ReservaPendente}, models.ReservaConfirmada).Return(nil)
		f.empresas.EXPECT().FindByID(gomock.Any(), "emp-1").Return(&models.Empresa{ID: "emp-1", User: &models.User{Email: "empresa@example.com"}}, nil)
		f.notifier.EXPECT().ReservaConfirmed(gomock.Any(), "empresa@example.com", gomock.Any()).Return(nil)

		reserva, err := f.service.Aceitar(ctx, fornecedorSession(), "res-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reserva.Estado != models.ReservaConfirmada {
			t.Fatalf("expected confirmada, got %s", reserva.Estado)
		}
	})

	t.Run("accepting a refused booking is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reservaWith(models.ReservaRecusada), nil)
		f.fornecedores.EXPECT().FindByUserID(gomock.Any(), "user-forn").Return(&models.Fornecedor{ID: "forn-1"}, nil)

		_, err := f.service.Aceitar(ctx, fornecedorSession(), "res-1")
		expectKind(t, err, services.ErrConflict)
	})

	t.Run("another supplier is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reservaWith(models.ReservaPendente), nil)
		f.fornecedores.EXPECT().FindByUserID(gomock.Any(), "user-forn").Return(&models.Fornecedor{ID: "forn-2"}, nil)

		_, err := f.service.Recusar(ctx, fornecedorSession(), "res-1")
		expectKind(t, err, services.ErrForbidden)
	})

	t.Run("supplier found through the accepted proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		reserva := &models.Reserva{ID: "res-1", EmpresaID: "emp-1", PropostaID: strPtr("p-1"), Estado: models.ReservaPendente}
		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reserva, nil)
		f.fornecedores.EXPECT().FindByUserID(gomock.Any(), "user-forn").Return(&models.Fornecedor{ID: "forn-1"}, nil)
		f.propostas.EXPECT().FindByID(gomock.Any(), "p-1").Return(&models.Proposta{ID: "p-1", FornecedorID: "forn-1"}, nil)
		f.reservas.EXPECT().UpdateEstado(gomock.Any(), "res-1", []models.ReservaEstado{models.ReservaPendente}, models.ReservaRecusada).Return(nil)

		if _, err := f.service.Recusar(ctx, fornecedorSession(), "res-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("company cancels a confirmed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reservaWith(models.ReservaConfirmada), nil)
		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.reservas.EXPECT().UpdateEstado(gomock.Any(), "res-1", []models.ReservaEstado{models.ReservaConfirmada}, models.ReservaCancelada).Return(nil)

		reserva, err := f.service.Cancelar(ctx, empresaSession(), "res-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reserva.Estado != models.ReservaCancelada {
			t.Fatalf("expected cancelada, got %s", reserva.Estado)
		}
	})

	t.Run("cancelling twice is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reservaWith(models.ReservaCancelada), nil)
		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)

		_, err := f.service.Cancelar(ctx, empresaSession(), "res-1")
		expectKind(t, err, services.ErrConflict)
	})

	t.Run("concurrent change is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReservaFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reservaWith(models.ReservaPendente), nil)
		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.reservas.EXPECT().UpdateEstado(gomock.Any(), "res-1", gomock.Any(), models.ReservaCancelada).Return(models.ErrEstadoAlterado)

		_, err := f.service.Cancelar(ctx, empresaSession(), "res-1")
		expectKind(t, err, services.ErrConflict)
	})
}

func TestReservaService_ListByEmpresa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReservaFixture(ctrl)

	f.empresas.EXPECT().FindByID(gomock.Any(), "emp-1").Return(&models.Empresa{ID: "emp-1", UserID: "someone-else"}, nil)

	_, err := f.service.ListByEmpresa(context.Background(), empresaSession(), "emp-1")
	expectKind(t, err, services.ErrForbidden)
}
