package validation

import (
	"context"

	"tienda/internal/models"
)

// Client checks c. Rules run in a fixed order and the first failure wins.
func (e *Engine) Client(ctx context.Context, c *models.Client, excludeID uint) error {
	switch {
	case !e.passes(c.FirstName, "notblank"):
		return Reject(CodeEmptyFirstName, "El nombre es obligatorio")
	case !e.passes(c.FirstName, "nodigits"):
		return Reject(CodeFirstNameHasDigits, "El nombre no debe contener números")
	case !e.passes(c.LastName, "notblank"):
		return Reject(CodeEmptyLastName, "El apellido es obligatorio")
	case !e.passes(c.LastName, "nodigits"):
		return Reject(CodeLastNameHasDigits, "El apellido no debe contener números")
	case !e.passes(c.Email, "notblank"):
		return Reject(CodeEmptyEmail, "El email es obligatorio")
	case !e.passes(c.Email, "contains=@,contains=."):
		return Reject(CodeInvalidEmail, "El email ingresado no es válido")
	}

	// A blank phone counts as absent.
	if c.Phone != nil && e.passes(*c.Phone, "notblank") {
		if !e.passes(*c.Phone, "startswith=09,len=10,number") {
			return Reject(CodeInvalidPhone, "El número de teléfono debe iniciar con 09 y tener exactamente 10 dígitos")
		}
	}

	taken, err := e.clients.ExistsByEmail(ctx, c.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Reject(CodeDuplicateEmail, "Ya existe un cliente con el mismo email")
	}
	return nil
}
