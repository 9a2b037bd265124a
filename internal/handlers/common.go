package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"tienda/internal/metrics"
	"tienda/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Responder turns service outcomes into HTTP responses.
//
// A business-rule rejection is not a fault: by default it is answered with
// 200 and a {code, message} body, which is the contract existing clients
// rely on. With strict set, NotFound maps to 404 and every other rejection
// to 400.
type Responder struct {
	strict  bool
	metrics *metrics.Metrics
}

// NewResponder creates a Responder. m may be nil.
func NewResponder(strict bool, m *metrics.Metrics) *Responder {
	return &Responder{strict: strict, metrics: m}
}

// Fail renders err for the given resource.
func (r *Responder) Fail(c *fiber.Ctx, resource string, err error) error {
	if rej, ok := validation.AsRejection(err); ok {
		if r.metrics != nil {
			r.metrics.Rejected(resource, string(rej.Code))
		}
		return c.Status(r.rejectionStatus(rej)).JSON(fiber.Map{
			"code":    rej.Code,
			"message": rej.Message,
		})
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		slog.Warn("write rejected by store constraint", "resource", resource, "error", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "The store rejected the write because of a conflicting or referenced row",
			"error":   err.Error(),
		})
	}

	slog.Error("request failed", "resource", resource, "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fmt.Sprintf("Could not process %s request", resource),
		"error":   err.Error(),
	})
}

func (r *Responder) rejectionStatus(rej *validation.Rejection) int {
	if !r.strict {
		return fiber.StatusOK
	}
	if rej.NotFound() {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// BadRequest answers a request whose body or path could not be decoded.
func (r *Responder) BadRequest(c *fiber.Ctx, message string, err error) error {
	slog.Debug("bad request", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// Deleted confirms a delete with the removed id.
func (r *Responder) Deleted(c *fiber.Ctx, res validation.Resource, id uint) error {
	return c.JSON(fiber.Map{
		"message": validation.DeletedMessage(res, id),
		"id":      id,
	})
}

// pathID reads the :id route parameter.
func pathID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fmt.Errorf("id must be an integer: %w", err)
	}
	if id < 0 {
		return 0, fmt.Errorf("id must not be negative, got %d", id)
	}
	return uint(id), nil
}
