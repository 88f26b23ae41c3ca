// File: /services/perfil_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"teamsync-api/models"
)

// PerfilService manages the company and supplier profiles attached to
// user accounts.
type PerfilService struct {
	empresas     EmpresaRepository
	fornecedores FornecedorRepository
}

func NewPerfilService(empresas EmpresaRepository, fornecedores FornecedorRepository) *PerfilService {
	return &PerfilService{empresas: empresas, fornecedores: fornecedores}
}

func (s *PerfilService) ListEmpresas(ctx context.Context, session *Session, skip, limit int) ([]models.Empresa, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	return s.empresas.List(ctx, skip, limit)
}

// EmpresaDoUtilizador returns the profile of the calling company.
func (s *PerfilService) EmpresaDoUtilizador(ctx context.Context, session *Session) (*models.Empresa, error) {
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

func (s *PerfilService) GetEmpresa(ctx context.Context, session *Session, id string) (*models.Empresa, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	empresa, err := s.empresas.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Empresa not found")
		}
		return nil, err
	}
	return empresa, nil
}

func (s *PerfilService) CreateEmpresa(ctx context.Context, session *Session, req models.EmpresaRequest) (*models.Empresa, error) {
	if err := requireSession(session, models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	if _, err := s.empresas.FindByUserID(ctx, session.UserID); err == nil {
		return nil, invalidInput("Empresa profile already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	empresa := &models.Empresa{ID: uuid.New().String(), UserID: session.UserID}
	applyEmpresa(empresa, req)
	if err := s.empresas.Create(ctx, empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

func (s *PerfilService) UpdateEmpresa(ctx context.Context, session *Session, id string, req models.EmpresaRequest) (*models.Empresa, error) {
	empresa, err := s.ownedEmpresa(ctx, session, id)
	if err != nil {
		return nil, err
	}
	applyEmpresa(empresa, req)
	if err := s.empresas.Update(ctx, empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

func (s *PerfilService) DeleteEmpresa(ctx context.Context, session *Session, id string) error {
	if _, err := s.ownedEmpresa(ctx, session, id); err != nil {
		return err
	}
	return s.empresas.Delete(ctx, id)
}

func (s *PerfilService) ownedEmpresa(ctx context.Context, session *Session, id string) (*models.Empresa, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	empresa, err := s.empresas.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Empresa not found")
		}
		return nil, err
	}
	if empresa.UserID != session.UserID && !session.IsAdmin() {
		return nil, forbidden("Not enough permissions")
	}
	return empresa, nil
}

func applyEmpresa(empresa *models.Empresa, req models.EmpresaRequest) {
	empresa.Nome = req.Nome
	empresa.Setor = req.Setor
	empresa.NFuncionarios = req.NFuncionarios
	empresa.Localizacao = req.Localizacao
	empresa.OrcamentoMedio = req.OrcamentoMedio
	empresa.PreferenciaAtividades = req.PreferenciaAtividades
	empresa.Telefone = req.Telefone
}

func (s *PerfilService) ListFornecedores(ctx context.Context, skip, limit int) ([]models.Fornecedor, error) {
	return s.fornecedores.List(ctx, skip, limit)
}

func (s *PerfilService) FornecedorDoUtilizador(ctx context.Context, session *Session) (*models.Fornecedor, error) {
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

func (s *PerfilService) GetFornecedor(ctx context.Context, id string) (*models.Fornecedor, error) {
	fornecedor, err := s.fornecedores.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Fornecedor not found")
		}
		return nil, err
	}
	return fornecedor, nil
}

func (s *PerfilService) CreateFornecedor(ctx context.Context, session *Session, req models.FornecedorRequest) (*models.Fornecedor, error) {
	if err := requireSession(session, models.UserTipoFornecedor); err != nil {
		return nil, err
	}
	if _, err := s.fornecedores.FindByUserID(ctx, session.UserID); err == nil {
		return nil, invalidInput("Fornecedor profile already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	fornecedor := &models.Fornecedor{
		ID:          uuid.New().String(),
		UserID:      session.UserID,
		Nome:        req.Nome,
		Localizacao: req.Localizacao,
		Descricao:   req.Descricao,
		Contacto:    req.Contacto,
	}
	if err := s.fornecedores.Create(ctx, fornecedor); err != nil {
		return nil, err
	}
	return fornecedor, nil
}

func (s *PerfilService) UpdateFornecedor(ctx context.Context, session *Session, id string, req models.FornecedorRequest) (*models.Fornecedor, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	fornecedor, err := s.GetFornecedor(ctx, id)
	if err != nil {
		return nil, err
	}
	if fornecedor.UserID != session.UserID && !session.IsAdmin() {
		return nil, forbidden("Not enough permissions")
	}

	fornecedor.Nome = req.Nome
	fornecedor.Localizacao = req.Localizacao
	fornecedor.Descricao = req.Descricao
	fornecedor.Contacto = req.Contacto
	if err := s.fornecedores.Update(ctx, fornecedor); err != nil {
		return nil, err
	}
	return fornecedor, nil
}
