package handlers

import (
	"tienda/internal/models"
	"tienda/internal/services"
	"tienda/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const clientsResource = "clientes"

// ClientHandler handles HTTP requests for clients.
type ClientHandler struct {
	service *services.ClientService
	respond *Responder
}

func NewClientHandler(service *services.ClientService, respond *Responder) *ClientHandler {
	return &ClientHandler{
		service: service,
		respond: respond,
	}
}

func (h *ClientHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + clientsResource)
	routes.Get("/", h.HandleGetClients)
	routes.Get("/:id", h.HandleGetClientByID)
	routes.Post("/", h.HandleCreateClient)
	routes.Put("/:id", h.HandleUpdateClient)
	routes.Delete("/:id", h.HandleDeleteClient)
}

func (h *ClientHandler) HandleGetClients(c *fiber.Ctx) error {
	clients, err := h.service.GetAllClients(c.UserContext())
	if err != nil {
		return h.respond.Fail(c, clientsResource, err)
	}
	return c.JSON(clients)
}

func (h *ClientHandler) HandleGetClientByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid client ID", err)
	}
	client, err := h.service.GetClientByID(c.UserContext(), id)
	if err != nil {
		return h.respond.Fail(c, clientsResource, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) HandleCreateClient(c *fiber.Ctx) error {
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	if err := h.service.CreateClient(c.UserContext(), &client); err != nil {
		return h.respond.Fail(c, clientsResource, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) HandleUpdateClient(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid client ID", err)
	}
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return h.respond.BadRequest(c, "Invalid request body", err)
	}
	updated, err := h.service.UpdateClient(c.UserContext(), id, &client)
	if err != nil {
		return h.respond.Fail(c, clientsResource, err)
	}
	return c.JSON(updated)
}

// HandleDeleteClient deletes a client together with its sales.
func (h *ClientHandler) HandleDeleteClient(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond.BadRequest(c, "Invalid client ID", err)
	}
	if err := h.service.DeleteClient(c.UserContext(), id); err != nil {
		return h.respond.Fail(c, clientsResource, err)
	}
	return h.respond.Deleted(c, validation.ClientResource, id)
}
