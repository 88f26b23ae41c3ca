package repositories

import (
	"context"

	"gorm.io/gorm"

	"teamsync-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type EmpresaRepository struct {
	db *gorm.DB
}

func NewEmpresaRepository(db *gorm.DB) *EmpresaRepository {
	return &EmpresaRepository{db: db}
}

func (r *EmpresaRepository) Create(ctx context.Context, empresa *models.Empresa) error {
	return r.db.WithContext(ctx).Omit("User").Create(empresa).Error
}

func (r *EmpresaRepository) Update(ctx context.Context, empresa *models.Empresa) error {
	return r.db.WithContext(ctx).Omit("User").Save(empresa).Error
}

func (r *EmpresaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Empresa{}).Error
}

// FindByID loads the company with its user account, used to reach the
// company by email.
func (r *EmpresaRepository) FindByID(ctx context.Context, id string) (*models.Empresa, error) {
	var empresa models.Empresa
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&empresa).Error; err != nil {
		return nil, err
	}
	return &empresa, nil
}

func (r *EmpresaRepository) FindByUserID(ctx context.Context, userID string) (*models.Empresa, error) {
	var empresa models.Empresa
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&empresa).Error; err != nil {
		return nil, err
	}
	return &empresa, nil
}

func (r *EmpresaRepository) List(ctx context.Context, skip, limit int) ([]models.Empresa, error) {
	var empresas []models.Empresa
	err := r.db.WithContext(ctx).
		Order("nome ASC").
		Offset(skip).
		Limit(normalizeLimit(limit)).
		Find(&empresas).Error
	return empresas, err
}

type FornecedorRepository struct {
	db *gorm.DB
}

func NewFornecedorRepository(db *gorm.DB) *FornecedorRepository {
	return &FornecedorRepository{db: db}
}

func (r *FornecedorRepository) Create(ctx context.Context, fornecedor *models.Fornecedor) error {
	return r.db.WithContext(ctx).Omit("User").Create(fornecedor).Error
}

func (r *FornecedorRepository) Update(ctx context.Context, fornecedor *models.Fornecedor) error {
	return r.db.WithContext(ctx).Omit("User").Save(fornecedor).Error
}

func (r *FornecedorRepository) FindByID(ctx context.Context, id string) (*models.Fornecedor, error) {
	var fornecedor models.Fornecedor
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&fornecedor).Error; err != nil {
		return nil, err
	}
	return &fornecedor, nil
}

func (r *FornecedorRepository) FindByUserID(ctx context.Context, userID string) (*models.Fornecedor, error) {
	var fornecedor models.Fornecedor
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&fornecedor).Error; err != nil {
		return nil, err
	}
	return &fornecedor, nil
}

func (r *FornecedorRepository) List(ctx context.Context, skip, limit int) ([]models.Fornecedor, error) {
	var fornecedores []models.Fornecedor
	err := r.db.WithContext(ctx).
		Order("nome ASC").
		Offset(skip).
		Limit(normalizeLimit(limit)).
		Find(&fornecedores).Error
	return fornecedores, err
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}
