package handlers

import (
	"tienda/internal/models"
	"tienda/internal/services"
	"tienda/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const productsResource = "productos"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	respond *Responder
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, respond *Responder) *ProductHandler {
	return &ProductHandler{
		service: service,
		respond: respond,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + productsResource)
	routes.Get("/", h.HandleGetProducts)
	routes.Get("/:id", h.HandleGetProductByID)
	routes.Post("/", h.HandleCreateProduct)
	routes.Put("/:id", h.HandleUpdateProduct)
	routes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists every product with its category embedded.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return h.respond.Fail(c, productsResource, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid product ID", err)
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return h.respond.Fail(c, productsResource, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product. Only the id of the embedded
// category is read; the stored category is returned in its place.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		return h.respond.Fail(c, productsResource, err)
	}
	return c.JSON(product)
}

// HandleUpdateProduct replaces the product at :id.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid product ID", err)
	}
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	updated, err := h.service.UpdateProduct(c.UserContext(), id, &product)
	if err != nil {
		return h.respond.Fail(c, productsResource, err)
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes the product at :id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid product ID", err)
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return h.respond.Fail(c, productsResource, err)
	}
	return h.respond.Deleted(c, validation.ProductResource, id)
}
