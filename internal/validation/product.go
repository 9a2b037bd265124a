package validation

import (
	"context"

	"tienda/internal/models"
)

// Product checks the product's own fields and name uniqueness. The category
// reference is checked separately by ResolveCategory.
func (e *Engine) Product(ctx context.Context, p *models.Product, excludeID uint) error {
	if !e.passes(p.Name, "notblank") {
		return Reject(CodeEmptyName, "El nombre es obligatorio")
	}
	if !p.Price.IsPositive() {
		return Reject(CodeInvalidPrice, "El precio debe ser mayor a 0")
	}
	if !e.passes(p.StockQuantity, "gte=0") {
		return Reject(CodeNegativeStock, "La cantidad en stock no puede ser negativa")
	}

	taken, err := e.products.ExistsByName(ctx, p.Name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Reject(CodeDuplicateName, "Ya existe un producto con el mismo nombre")
	}
	return nil
}
