package services_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/services/mocks"
)

func TestAvaliacaoService_Create(t *testing.T) {
	ctx := context.Background()

	setup := func(ctrl *gomock.Controller) (*services.AvaliacaoService, *mocks.MockAvaliacaoRepository, *mocks.MockAtividadeRepository, *mocks.MockEmpresaRepository) {
		avaliacoes := mocks.NewMockAvaliacaoRepository(ctrl)
		atividades := mocks.NewMockAtividadeRepository(ctrl)
		empresas := mocks.NewMockEmpresaRepository(ctrl)
		svc := services.NewAvaliacaoService(avaliacoes, atividades, mocks.NewMockFornecedorRepository(ctrl), empresas, discardLogger())
		return svc, avaliacoes, atividades, empresas
	}

	t.Run("review of an activity credits its supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, avaliacoes, atividades, empresas := setup(ctrl)

		empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)
		atividades.EXPECT().FindByID(gomock.Any(), "atv-1").Return(approvedAtividade(), nil)
		avaliacoes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *models.Avaliacao) error {
			if a.EmpresaID != "emp-1" || *a.AtividadeID != "atv-1" || a.FornecedorID == nil || *a.FornecedorID != "forn-1" {
				t.Fatalf("unexpected avaliacao %+v", a)
			}
			return nil
		})

		if _, err := svc.Create(ctx, empresaSession(), models.AvaliacaoRequest{AtividadeID: strPtr("atv-1"), Rating: 5}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _, empresas := setup(ctrl)

		empresas.EXPECT().FindByUserID(gomock.Any(), "user-emp").Return(&models.Empresa{ID: "emp-1"}, nil)

		_, err := svc.Create(ctx, empresaSession(), models.AvaliacaoRequest{AtividadeID: strPtr("atv-1"), Rating: 6})
		expectKind(t, err, services.ErrInvalidInput)
	})

	t.Run("suppliers cannot review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _, _ := setup(ctrl)

		_, err := svc.Create(ctx, fornecedorSession(), models.AvaliacaoRequest{AtividadeID: strPtr("atv-1"), Rating: 4})
		expectKind(t, err, services.ErrForbidden)
	})
}
