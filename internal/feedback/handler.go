package feedback

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pet-adoption-backend/internal/auth"
)

const thankYouMessage = "Thank you for your feedback! We are constantly striving to be better."

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/user/feedback", h.feedbackForm)
	app.Post("/user/feedback", h.submit)
}

type feedbackRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

func (h *Handler) feedbackForm(c *fiber.Ctx) error {
	response := fiber.Map{"page": "feedback"}
	if identity, err := auth.CurrentUser(c); err == nil {
		response["user"] = identity
	}
	return c.JSON(response)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(feedbackRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if _, err := h.service.Create(payload.Name, payload.Email, payload.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendString(thankYouMessage)
}
