package handlers

import (
	"tienda/internal/models"
	"tienda/internal/services"
	"tienda/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const salesResource = "ventas"

// SaleHandler handles HTTP requests for sales. Every sale it returns carries
// the full product (with category) and client.
type SaleHandler struct {
	service *services.SaleService
	respond *Responder
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(service *services.SaleService, respond *Responder) *SaleHandler {
	return &SaleHandler{
		service: service,
		respond: respond,
	}
}

// RegisterRoutes registers the sale routes with the Fiber app.
func (h *SaleHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + salesResource)
	routes.Get("/", h.HandleGetSales)
	routes.Get("/:id", h.HandleGetSaleByID)
	routes.Post("/", h.HandleCreateSale)
	routes.Put("/:id", h.HandleUpdateSale)
	routes.Delete("/:id", h.HandleDeleteSale)
}

func (h *SaleHandler) HandleGetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales(c.UserContext())
	if err != nil {
		return h.respond.Fail(c, salesResource, err)
	}
	return c.JSON(sales)
}

func (h *SaleHandler) HandleGetSaleByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid sale ID", err)
	}
	sale, err := h.service.GetSaleByID(c.UserContext(), id)
	if err != nil {
		return h.respond.Fail(c, salesResource, err)
	}
	return c.JSON(sale)
}

// HandleCreateSale records a sale. The body references product and client
// by id only.
func (h *SaleHandler) HandleCreateSale(c *fiber.Ctx) error {
	var sale models.Sale
	if err := c.BodyParser(&sale); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	created, err := h.service.CreateSale(c.UserContext(), &sale)
	if err != nil {
		return h.respond.Fail(c, salesResource, err)
	}
	return c.JSON(created)
}

func (h *SaleHandler) HandleUpdateSale(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid sale ID", err)
	}
	var sale models.Sale
	if err := c.BodyParser(&sale); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	updated, err := h.service.UpdateSale(c.UserContext(), id, &sale)
	if err != nil {
		return h.respond.Fail(c, salesResource, err)
	}
	return c.JSON(updated)
}

func (h *SaleHandler) HandleDeleteSale(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid sale ID", err)
	}
	if err := h.service.DeleteSale(c.UserContext(), id); err != nil {
		return h.respond.Fail(c, salesResource, err)
	}
	return h.respond.Deleted(c, validation.SaleResource, id)
}
