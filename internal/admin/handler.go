// Package admin holds the admin views that join across entities: the
// dashboard and the per-user detail page. Entity-scoped admin routes live
// with their entity packages.
package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pet-adoption-backend/internal/donation"
	"github.com/wichananm65/pet-adoption-backend/internal/pet"
	"github.com/wichananm65/pet-adoption-backend/internal/user"
)

const latestPetsLimit = 5

type Handler struct {
	pets      *pet.Service
	users     *user.Service
	donations *donation.Service
}

func NewHandler(pets *pet.Service, users *user.Service, donations *donation.Service) *Handler {
	return &Handler{pets: pets, users: users, donations: donations}
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/dashboard", h.dashboard)
	admin.Get("/user/:id/view", h.viewUser)
}

func (h *Handler) dashboard(c *fiber.Ctx) error {
	totalPets, err := h.pets.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(fiber.Map{
		"totalPets":      totalPets,
		"totalUsers":     len(h.users.List()),
		"totalDonations": h.donations.Total(),
		"latestPets":     h.pets.ListLatest(latestPetsLimit),
	})
}

func (h *Handler) viewUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	u, err := h.users.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("User not found")
	}
	u.Password = ""

	return c.JSON(fiber.Map{
		"user": u,
		"pets": h.pets.ListByCreator(id),
	})
}
