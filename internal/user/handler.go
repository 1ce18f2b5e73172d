package user

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pet-adoption-backend/internal/auth"
)

type Handler struct {
	service   *Service
	jwtSecret string
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/user/signin", h.signinForm)
	app.Post("/user/signin", h.signin)
	app.Get("/user/signup", h.signupForm)
	app.Post("/user/signup", h.signup)
	app.Get("/user/logout", h.logout)
}

// RegisterAdminRoutes mounts the user management endpoints on the admin
// group.
func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/users", h.listUsers)
	admin.Get("/users/search", h.searchUsers)
	admin.Get("/user/:id/update", h.updateForm)
	admin.Post("/user/:id/update", h.update)
	admin.Post("/user/:id/delete", h.delete)
}

type signinRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type signupRequest struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) signinForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "signin"})
}

func (h *Handler) signupForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "signup"})
}

func (h *Handler) signin(c *fiber.Ctx) error {
	payload := new(signinRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		// failed sign-in re-renders the form with an error, it is not a
		// hard HTTP failure
		return c.JSON(fiber.Map{"page": "signin", "error": "Incorrect Email or Password"})
	}

	token, err := auth.IssueToken(h.jwtSecret, auth.Identity{
		UserID:   u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Expires:  time.Now().Add(auth.TokenTTL),
		HTTPOnly: true,
	})
	return c.Redirect("/")
}

func (h *Handler) signup(c *fiber.Ctx) error {
	payload := new(signupRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if payload.FullName == "" || payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	if _, err := h.service.Register(payload.FullName, payload.Email, payload.Password); err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusConflict).SendString("Email already exists")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect("/")
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/")
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	return c.JSON(sanitizeUsers(h.service.List()))
}

func (h *Handler) searchUsers(c *fiber.Ctx) error {
	return c.JSON(sanitizeUsers(h.service.Search(c.Query("search"))))
}

func (h *Handler) updateForm(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("User not found")
	}

	return c.JSON(sanitizeUser(u))
}

// userUpdateRequest is the allow-list of admin-mutable user fields. Anything
// else in the body is ignored instead of being merged into the record.
type userUpdateRequest struct {
	FullName *string `json:"fullName" form:"fullName"`
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
	Address  *string `json:"address" form:"address"`
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	payload := new(userUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if _, err := h.service.Update(id, Update{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
		Address:  payload.Address,
	}); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("User not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect("/admin/users")
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("User not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect("/admin/users")
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}

func sanitizeUsers(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, sanitizeUser(u))
	}
	return out
}
