package validation

import (
	"context"
	"errors"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// Sale checks a sale whose references were already resolved. The product and
// client are looked up again at the end, so a row deleted between resolution
// and validation is still caught.
func (e *Engine) Sale(ctx context.Context, s *models.Sale) error {
	if !e.passes(s.Quantity, "gt=0") {
		return Reject(CodeInvalidQuantity, "La cantidad debe ser mayor a 0")
	}
	if !s.Total.IsPositive() {
		return Reject(CodeInvalidTotal, "El total debe ser mayor a 0")
	}
	if s.Product == nil {
		return Reject(CodeMissingProduct, "El producto es obligatorio")
	}
	if s.Client == nil {
		return Reject(CodeMissingClient, "El cliente es obligatorio")
	}

	if _, err := e.products.GetByID(ctx, s.Product.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return Reject(CodeProductNotFound, "El producto no existe")
		}
		return err
	}
	if _, err := e.clients.GetByID(ctx, s.Client.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return Reject(CodeClientNotFound, "El cliente no existe")
		}
		return err
	}
	if s.SaleDate.IsZero() {
		return Reject(CodeMissingSaleDate, "La fecha de venta es obligatoria")
	}
	return nil
}
