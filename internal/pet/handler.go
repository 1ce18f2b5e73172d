package pet

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pet-adoption-backend/internal/auth"
	"github.com/wichananm65/pet-adoption-backend/internal/comment"
	"github.com/wichananm65/pet-adoption-backend/internal/user"
)

// ImageStore persists an uploaded cover image and returns its public URL
// path. Satisfied by upload.Storage; tests plug in a fake.
type ImageStore interface {
	Store(c *fiber.Ctx, file *multipart.FileHeader) (string, error)
}

type Handler struct {
	service  *Service
	users    *user.Service
	comments *comment.Service
	images   ImageStore
}

func NewHandler(service *Service, users *user.Service, comments *comment.Service, images ImageStore) *Handler {
	return &Handler{service: service, users: users, comments: comments, images: images}
}

// RegisterRoutes mounts the public-facing pet routes. The /pet/add-new route
// must come before /pet/:id so the static segment wins.
func (h *Handler) RegisterRoutes(app *fiber.App, authRequired fiber.Handler) {
	app.Get("/pet/add-new", authRequired, h.addNewForm)
	app.Post("/pet/", authRequired, h.create)
	app.Get("/pet/:id", h.detail)

	app.Get("/user/search", h.searchByType)
	app.Get("/user/mypets", authRequired, h.myPets)
	app.Post("/user/:petId/updateAdoptionStatus", authRequired, h.updateAdoptionStatus)
	app.Post("/user/:petId/delete", authRequired, h.deleteOwned)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/pets", h.adminList)
	admin.Get("/pets/search", h.adminSearch)
	admin.Get("/pet/:id/update", h.updateForm)
	admin.Post("/pet/:id/update", h.update)
	admin.Post("/pet/:id/delete", h.adminDelete)
}

func (h *Handler) addNewForm(c *fiber.Ctx) error {
	identity, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}
	return c.JSON(fiber.Map{"page": "addPet", "user": identity})
}

func (h *Handler) create(c *fiber.Ctx) error {
	identity, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	file, err := c.FormFile("coverImage")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("coverImage is required")
	}

	coverURL, err := h.images.Store(c, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	// if the record insert fails the stored file is orphaned; a known gap,
	// mirrored from the upload-then-insert ordering of the original flow
	created, err := h.service.Create(Pet{
		Name:           c.FormValue("petName"),
		Type:           c.FormValue("petType"),
		Age:            c.FormValue("petAge"),
		MedicalHistory: c.FormValue("petMedicalHis"),
		Address:        c.FormValue("petAddress"),
		ContactNo:      c.FormValue("petContactNo"),
		AdditionalInfo: c.FormValue("additionalInfo"),
		CoverImageURL:  coverURL,
		CreatedByID:    identity.UserID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect(fmt.Sprintf("/pet/%d", created.ID))
}

func (h *Handler) detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Pet not found")
	}
	h.populateCreator(&p)

	comments := h.comments.ListByPet(id)
	for i := range comments {
		if creator, err := h.users.GetByID(comments[i].CreatedByID); err == nil {
			creator.Password = ""
			comments[i].Creator = &creator
		}
	}

	response := fiber.Map{"pet": p, "comments": comments}
	if identity, err := auth.CurrentUser(c); err == nil {
		response["user"] = identity
	}
	return c.JSON(response)
}

func (h *Handler) searchByType(c *fiber.Ctx) error {
	pets := h.service.SearchByType(c.Query("query"))
	response := fiber.Map{"pets": pets}
	if identity, err := auth.CurrentUser(c); err == nil {
		response["user"] = identity
	}
	return c.JSON(response)
}

func (h *Handler) myPets(c *fiber.Ctx) error {
	identity, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}
	return c.JSON(fiber.Map{"pets": h.service.ListByCreator(identity.UserID), "user": identity})
}

func (h *Handler) updateAdoptionStatus(c *fiber.Ctx) error {
	petID, err := strconv.Atoi(c.Params("petId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	identity, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	status := c.FormValue("adoptionStatus")
	if _, err := h.service.UpdateAdoptionStatusOwned(petID, status, identity.UserID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Pet not found")
		case ErrNotOwner:
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).SendString("Invalid adoption status")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("Error updating adoption status")
		}
	}

	return c.Redirect("/user/mypets")
}

func (h *Handler) deleteOwned(c *fiber.Ctx) error {
	petID, err := strconv.Atoi(c.Params("petId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	identity, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	if err := h.service.DeleteOwned(petID, identity.UserID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Pet not found")
		case ErrNotOwner:
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("Error deleting pet")
		}
	}

	return c.Redirect("/user/mypets")
}

func (h *Handler) adminList(c *fiber.Ctx) error {
	return c.JSON(h.withCreators(h.service.List()))
}

func (h *Handler) adminSearch(c *fiber.Ctx) error {
	return c.JSON(h.withCreators(h.service.Search(c.Query("search"))))
}

func (h *Handler) updateForm(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Pet not found")
	}

	return c.JSON(p)
}

// petUpdateRequest is the allow-list of mutable listing fields for admin
// updates. The creator reference and timestamps cannot be overwritten.
type petUpdateRequest struct {
	Name           *string `json:"petName" form:"petName"`
	Type           *string `json:"petType" form:"petType"`
	Age            *string `json:"petAge" form:"petAge"`
	MedicalHistory *string `json:"petMedicalHis" form:"petMedicalHis"`
	Address        *string `json:"petAddress" form:"petAddress"`
	ContactNo      *string `json:"petContactNo" form:"petContactNo"`
	AdditionalInfo *string `json:"additionalInfo" form:"additionalInfo"`
	AdoptionStatus *string `json:"adoptionStatus" form:"adoptionStatus"`
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	payload := new(petUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if _, err := h.service.Update(id, Update{
		Name:           payload.Name,
		Type:           payload.Type,
		Age:            payload.Age,
		MedicalHistory: payload.MedicalHistory,
		Address:        payload.Address,
		ContactNo:      payload.ContactNo,
		AdditionalInfo: payload.AdditionalInfo,
		AdoptionStatus: payload.AdoptionStatus,
	}); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Pet not found")
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).SendString("Invalid adoption status")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	return c.Redirect("/admin/pets")
}

func (h *Handler) adminDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Pet not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Redirect("/admin/pets")
}

func (h *Handler) withCreators(pets []Pet) []Pet {
	for i := range pets {
		h.populateCreator(&pets[i])
	}
	return pets
}

func (h *Handler) populateCreator(p *Pet) {
	creator, err := h.users.GetByID(p.CreatedByID)
	if err != nil {
		return
	}
	creator.Password = ""
	p.Creator = &creator
}
