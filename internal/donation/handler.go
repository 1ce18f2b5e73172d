package donation

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pet-adoption-backend/internal/auth"
)

const thankYouMessage = "Thank you for your donation! Our team will contact you within 24 hours."

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/user/donate", h.donateForm)
	app.Post("/user/donate", h.donate)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/donations", h.list)
	admin.Get("/donations/search", h.search)
	admin.Get("/donation/:id/update", h.updateForm)
	admin.Post("/donation/:id/update", h.update)
	admin.Post("/donation/:id/delete", h.delete)
}

type donateRequest struct {
	Name      string `json:"name" form:"name"`
	Address   string `json:"address" form:"address"`
	Age       string `json:"age" form:"age"`
	Gender    string `json:"gender" form:"gender"`
	Email     string `json:"email" form:"email"`
	ContactNo string `json:"contactNo" form:"contactNo"`
	Amount    string `json:"amount" form:"amount"`
}

func (h *Handler) donateForm(c *fiber.Ctx) error {
	response := fiber.Map{"page": "donate"}
	if identity, err := auth.CurrentUser(c); err == nil {
		response["user"] = identity
	}
	return c.JSON(response)
}

func (h *Handler) donate(c *fiber.Ctx) error {
	payload := new(donateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	amount, err := strconv.ParseFloat(payload.Amount, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("amount must be a number")
	}

	if _, err := h.service.Create(Donation{
		Name:      payload.Name,
		Address:   payload.Address,
		Age:       payload.Age,
		Gender:    payload.Gender,
		Email:     payload.Email,
		ContactNo: payload.ContactNo,
		Amount:    amount,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendString(thankYouMessage)
}

func (h *Handler) list(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) search(c *fiber.Ctx) error {
	donations, err := h.service.Search(c.Query("search"))
	if err != nil {
		if err == ErrEmptyQuery {
			return c.Status(fiber.StatusBadRequest).SendString("Please provide a search query")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	return c.JSON(donations)
}

func (h *Handler) updateForm(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	d, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Donation not found")
	}

	return c.JSON(d)
}

// donationUpdateRequest is the allow-list of admin-mutable donation fields.
type donationUpdateRequest struct {
	Name      *string  `json:"name" form:"name"`
	Address   *string  `json:"address" form:"address"`
	Age       *string  `json:"age" form:"age"`
	Gender    *string  `json:"gender" form:"gender"`
	Email     *string  `json:"email" form:"email"`
	ContactNo *string  `json:"contactNo" form:"contactNo"`
	Amount    *float64 `json:"amount" form:"amount"`
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	payload := new(donationUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if _, err := h.service.Update(id, Update{
		Name:      payload.Name,
		Address:   payload.Address,
		Age:       payload.Age,
		Gender:    payload.Gender,
		Email:     payload.Email,
		ContactNo: payload.ContactNo,
		Amount:    payload.Amount,
	}); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Donation not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect("/admin/donations")
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Donation not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect("/admin/donations")
}
