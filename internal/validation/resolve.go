package validation

import (
	"context"
	"errors"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// ResolveCategory swaps an inbound category reference for the stored row.
// Only ref.ID is trusted.
func (e *Engine) ResolveCategory(ctx context.Context, ref *models.Category) (*models.Category, error) {
	if ref == nil {
		return nil, Reject(CodeCategoryNotFound, "La categoría no existe")
	}
	category, err := e.categories.GetByID(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, Reject(CodeCategoryNotFound, "La categoría no existe")
		}
		return nil, err
	}
	return category, nil
}

// ResolveProduct returns the stored product, category included, for ref.ID.
func (e *Engine) ResolveProduct(ctx context.Context, ref *models.Product) (*models.Product, error) {
	if ref == nil {
		return nil, Reject(CodeMissingProduct, "El producto es obligatorio")
	}
	product, err := e.products.GetByID(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, Reject(CodeProductNotFound, "El producto no existe")
		}
		return nil, err
	}
	return product, nil
}

// ResolveClient returns the stored client for ref.ID.
func (e *Engine) ResolveClient(ctx context.Context, ref *models.Client) (*models.Client, error) {
	if ref == nil {
		return nil, Reject(CodeMissingClient, "El cliente es obligatorio")
	}
	client, err := e.clients.GetByID(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, Reject(CodeClientNotFound, "El cliente no existe")
		}
		return nil, err
	}
	return client, nil
}
