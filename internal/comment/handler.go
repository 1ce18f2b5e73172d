package comment

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pet-adoption-backend/internal/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App, authRequired fiber.Handler) {
	app.Post("/pet/comment/:petId", authRequired, h.create)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Post("/:petId/comment/:commentId/delete", h.delete)
}

type commentRequest struct {
	Content string `json:"content" form:"content"`
}

func (h *Handler) create(c *fiber.Ctx) error {
	petID, err := strconv.Atoi(c.Params("petId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	identity, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	payload := new(commentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if _, err := h.service.Create(payload.Content, petID, identity.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect(fmt.Sprintf("/pet/%d", petID))
}

func (h *Handler) delete(c *fiber.Ctx) error {
	petID, err := strconv.Atoi(c.Params("petId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	commentID, err := strconv.Atoi(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.DeleteForPet(commentID, petID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Comment not found")
		case ErrWrongPet:
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	return c.Redirect(fmt.Sprintf("/pet/%d", petID))
}
