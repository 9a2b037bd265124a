package handlers

import (
	"tienda/internal/models"
	"tienda/internal/services"
	"tienda/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const categoriesResource = "categorias"

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
	respond *Responder
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, respond *Responder) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		respond: respond,
	}
}

// RegisterRoutes registers the category routes under router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + categoriesResource)
	routes.Get("/", h.HandleGetCategories)
	routes.Get("/:id", h.HandleGetCategoryByID)
	routes.Post("/", h.HandleCreateCategory)
	routes.Put("/:id", h.HandleUpdateCategory)
	routes.Delete("/:id", h.HandleDeleteCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return h.respond.Fail(c, categoriesResource, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid category ID", err)
	}
	category, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return h.respond.Fail(c, categoriesResource, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	if err := h.service.CreateCategory(c.UserContext(), &category); err != nil {
		return h.respond.Fail(c, categoriesResource, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid category ID", err)
	}
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	updated, err := h.service.UpdateCategory(c.UserContext(), id, &category)
	if err != nil {
		return h.respond.Fail(c, categoriesResource, err)
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid category ID", err)
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return h.respond.Fail(c, categoriesResource, err)
	}
	return h.respond.Deleted(c, validation.CategoryResource, id)
}
