package services_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/services/mocks"
)

type eventoDetalheFixture struct {
	reservas     *mocks.MockReservaRepository
	empresas     *mocks.MockEmpresaRepository
	fornecedores *mocks.MockFornecedorRepository
	propostas    *mocks.MockPropostaRepository
	eventos      *mocks.MockEventoRepository
	service      *services.EventoDetalheService
}

func newEventoDetalheFixture(ctrl *gomock.Controller) *eventoDetalheFixture {
	f := &eventoDetalheFixture{
		reservas:     mocks.NewMockReservaRepository(ctrl),
		empresas:     mocks.NewMockEmpresaRepository(ctrl),
		fornecedores: mocks.NewMockFornecedorRepository(ctrl),
		propostas:    mocks.NewMockPropostaRepository(ctrl),
		eventos:      mocks.NewMockEventoRepository(ctrl),
	}
	f.service = services.NewEventoDetalheService(f.reservas, f.empresas, f.fornecedores, f.propostas, f.eventos, mocks.NewMockNotifier(ctrl), discardLogger())
	return f
}

func TestEventoDetalheService_Access(t *testing.T) {
	ctx := context.Background()

	t.Run("another company is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEventoDetalheFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(&models.Reserva{ID: "res-1", EmpresaID: "emp-1", Atividade: approvedAtividade()}, nil)
		f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-2"}, nil)

		_, err := f.service.Get(ctx, empresaSession(), "res-1")
		expectKind(t, err, services.ErrForbidden)
	})

	t.Run("another supplier is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEventoDetalheFixture(ctrl)

		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(&models.Reserva{ID: "res-1", EmpresaID: "emp-1", Atividade: approvedAtividade()}, nil)
		f.fornecedores.EXPECT().FindByUserID(gomock.Any(), "user-forn").Return(&models.Fornecedor{ID: "forn-9"}, nil)

		_, err := f.service.ListNotas(ctx, fornecedorSession(), "res-1")
		expectKind(t, err, services.ErrForbidden)
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEventoDetalheFixture(ctrl)

		_, err := f.service.Get(ctx, nil, "res-1")
		expectKind(t, err, services.ErrUnauthorized)
	})

	t.Run("supplier of the accepted proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEventoDetalheFixture(ctrl)

		reserva := &models.Reserva{ID: "res-1", EmpresaID: "emp-1", PropostaID: strPtr("p-1")}
		f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(reserva, nil)
		f.fornecedores.EXPECT().FindByUserID(gomock.Any(), "user-forn").Return(&models.Fornecedor{ID: "forn-1"}, nil)
		f.propostas.EXPECT().FindByID(gomock.Any(), "p-1").Return(&models.Proposta{ID: "p-1", FornecedorID: "forn-1"}, nil).Times(2)
		f.empresas.EXPECT().FindByID(gomock.Any(), "emp-1").Return(&models.Empresa{ID: "emp-1"}, nil)
		f.fornecedores.EXPECT().FindByID(gomock.Any(), "forn-1").Return(&models.Fornecedor{ID: "forn-1"}, nil)
		f.eventos.EXPECT().ListNotas(gomock.Any(), "res-1").Return([]models.NotaEvento{{ID: "n-1", ReservaID: "res-1", Titulo: "Logística"}}, nil)

		notas, err := f.service.ListNotas(ctx, fornecedorSession(), "res-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(notas) != 1 {
			t.Fatalf("expected 1 nota, got %d", len(notas))
		}
	})
}

func TestEventoDetalheService_ListMensagens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEventoDetalheFixture(ctrl)

	f.reservas.EXPECT().FindByID(gomock.Any(), "res-1").Return(&models.Reserva{ID: "res-1", EmpresaID: "emp-1", Atividade: approvedAtividade()}, nil)
	f.empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
	f.empresas.EXPECT().FindByID(gomock.Any(), "emp-1").Return(&models.Empresa{ID: "emp-1"}, nil)
	f.fornecedores.EXPECT().FindByID(gomock.Any(), "forn-1").Return(&models.Fornecedor{ID: "forn-1"}, nil)
	f.eventos.EXPECT().ListMensagens(gomock.Any(), "res-1").Return([]models.Mensagem{
		{ID: "m-1", RemetenteID: "user-forn", DestinatarioID: "user-emp", Conteudo: "Confirmamos o horário"},
		{ID: "m-2", RemetenteID: "user-emp", DestinatarioID: "user-forn", Conteudo: "Obrigado"},
	}, nil)
	f.eventos.EXPECT().MarkMensagensLidas(gomock.Any(), "res-1", "user-emp").Return(nil)

	mensagens, err := f.service.ListMensagens(context.Background(), empresaSession(), "res-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !mensagens[0].Lida {
		t.Fatalf("expected the received message to be read")
	}
	if mensagens[1].Lida {
		t.Fatalf("expected the sent message to stay unread")
	}
}
