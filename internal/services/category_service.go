package services

import (
	"context"
	"errors"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/validation"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo  repositories.CategoryRepository
	rules *validation.Engine
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, rules *validation.Engine) *CategoryService {
	return &CategoryService{
		repo:  repo,
		rules: rules,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

// GetCategoryByID retrieves a single category, or a NotFound rejection.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, validation.NotFoundFor(validation.CategoryResource)
	}
	return category, err
}

// CreateCategory validates and stores a new category. The id is assigned by
// the store.
func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	category.ID = 0
	if err := s.rules.Category(ctx, category, 0); err != nil {
		return err
	}
	return s.repo.Create(ctx, category)
}

// UpdateCategory overwrites the category at id with the payload.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, category *models.Category) (*models.Category, error) {
	if category.ID != id {
		return nil, validation.IDMismatchFor(validation.CategoryResource)
	}
	existing, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.rules.Category(ctx, category, id); err != nil {
		return nil, err
	}

	existing.Name = category.Name
	existing.Description = category.Description
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory removes the category at id.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return validation.NotFoundFor(validation.CategoryResource)
	}
	return err
}
