package validation

import (
	"context"

	"tienda/internal/models"
)

// Category checks c. excludeID is the id being edited, or 0 on create.
func (e *Engine) Category(ctx context.Context, c *models.Category, excludeID uint) error {
	if !e.passes(c.Name, "notblank") {
		return Reject(CodeEmptyName, "El nombre es obligatorio")
	}

	taken, err := e.categories.ExistsByName(ctx, c.Name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Reject(CodeDuplicateName, "Ya existe una categoría con el mismo nombre")
	}
	return nil
}
