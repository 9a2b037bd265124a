// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"tienda/internal/models"

	"github.com/stretchr/testify/mock"
)

// CategoryRepository is a mock implementation of repositories.CategoryRepository
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *CategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// ProductRepository is a mock implementation of repositories.ProductRepository
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// ClientRepository is a mock implementation of repositories.ClientRepository
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *ClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ClientRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

// SaleRepository is a mock implementation of repositories.SaleRepository
type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) GetAll(ctx context.Context) ([]models.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *SaleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *SaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *SaleRepository) Update(ctx context.Context, sale *models.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *SaleRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
