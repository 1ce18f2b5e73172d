package pet

import (
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/wichananm65/pet-adoption-backend/internal/comment"
	"github.com/wichananm65/pet-adoption-backend/internal/user"
)

type fakeImages struct {
	stored int
}

func (f *fakeImages) Store(_ *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	f.stored++
	return "/uploads/1700000000000-" + file.Filename, nil
}

// bootstrapAuth injects a jwt.Token built from the X-User-ID header so the
// handlers under test see an authenticated identity.
func bootstrapAuth(c *fiber.Ctx) error {
	if v := c.Get("X-User-ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			claims := jwt.MapClaims{"user_id": id, "role": "user"}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
	}
	return c.Next()
}

func requireAuth(c *fiber.Ctx) error {
	if c.Locals("user") == nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}
	return c.Next()
}

func makeApp(petSeed []Pet, userSeed []user.User, commentSeed []comment.Comment) (*fiber.App, *Service, *comment.Service, *fakeImages) {
	commentService := comment.NewService(comment.NewInMemoryRepository(commentSeed))
	petService := NewService(NewInMemoryRepository(petSeed), commentService)
	userService := user.NewService(user.NewInMemoryRepository(userSeed))
	images := &fakeImages{}
	handler := NewHandler(petService, userService, commentService, images)

	app := fiber.New()
	app.Use(bootstrapAuth)
	handler.RegisterRoutes(app, requireAuth)
	handler.RegisterAdminRoutes(app.Group("/admin"))
	return app, petService, commentService, images
}

func TestCreatePetRedirectsToDetail(t *testing.T) {
	app, petService, _, images := makeApp(nil, []user.User{{ID: 7, FullName: "Ann", Email: "ann@x.com"}}, nil)

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)
	writer.WriteField("petName", "Bella")
	writer.WriteField("petType", "dog")
	writer.WriteField("petAge", "3")
	writer.WriteField("petAddress", "Springfield")
	part, err := writer.CreateFormFile("coverImage", "bella.png")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write([]byte("PNGDATA"))
	writer.Close()

	req := httptest.NewRequest("POST", "/pet/", strings.NewReader(body.String()))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-User-ID", "7")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect after create, got %d", res.StatusCode)
	}
	loc := res.Header.Get("Location")
	if !strings.HasPrefix(loc, "/pet/") {
		t.Fatalf("expected redirect to pet detail, got %q", loc)
	}
	if images.stored != 1 {
		t.Fatalf("expected one stored image, got %d", images.stored)
	}

	id, err := strconv.Atoi(strings.TrimPrefix(loc, "/pet/"))
	if err != nil {
		t.Fatalf("redirect target is not a pet id: %q", loc)
	}
	created, err := petService.GetByID(id)
	if err != nil {
		t.Fatalf("created pet not found: %v", err)
	}
	if created.CoverImageURL == "" {
		t.Fatalf("expected non-empty cover image reference: %+v", created)
	}
	if created.CreatedByID != 7 {
		t.Fatalf("creator must come from the authenticated identity: %+v", created)
	}
}

func TestCreatePetRequiresCoverImage(t *testing.T) {
	app, _, _, _ := makeApp(nil, nil, nil)

	form := url.Values{}
	form.Set("petName", "Bella")
	form.Set("petType", "dog")
	req := httptest.NewRequest("POST", "/pet/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-ID", "7")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without coverImage, got %d", res.StatusCode)
	}
}

func TestDetailJoinsCreatorAndComments(t *testing.T) {
	app, _, _, _ := makeApp(
		[]Pet{{ID: 1, Name: "Bella", Type: "dog", CreatedByID: 7}},
		[]user.User{
			{ID: 7, FullName: "Ann", Email: "ann@x.com", Password: "hash"},
			{ID: 8, FullName: "Bob", Email: "bob@x.com", Password: "hash"},
		},
		[]comment.Comment{{ID: 1, Content: "such a good dog", PetID: 1, CreatedByID: 8}},
	)

	res, err := app.Test(httptest.NewRequest("GET", "/pet/1", nil))
	if err != nil {
		t.Fatalf("detail request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	s := string(body)
	if !strings.Contains(s, "Bella") || !strings.Contains(s, "Ann") {
		t.Fatalf("expected pet with joined creator, got %s", s)
	}
	if !strings.Contains(s, "such a good dog") || !strings.Contains(s, "Bob") {
		t.Fatalf("expected comments with joined creators, got %s", s)
	}
	if strings.Contains(s, "hash") {
		t.Fatalf("joined creators must not expose password hashes")
	}

	res, err = app.Test(httptest.NewRequest("GET", "/pet/42", nil))
	if err != nil {
		t.Fatalf("missing-pet request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown pet, got %d", res.StatusCode)
	}
}

func TestMyPetsListsOnlyOwn(t *testing.T) {
	app, _, _, _ := makeApp(
		[]Pet{
			{ID: 1, Name: "Bella", Type: "dog", CreatedByID: 7},
			{ID: 2, Name: "Rex", Type: "dog", CreatedByID: 8},
		},
		nil, nil,
	)

	req := httptest.NewRequest("GET", "/user/mypets", nil)
	req.Header.Set("X-User-ID", "7")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("mypets request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Bella") || strings.Contains(string(body), "Rex") {
		t.Fatalf("expected only the caller's pets, got %s", body)
	}

	// unauthenticated callers are rejected
	res, err = app.Test(httptest.NewRequest("GET", "/user/mypets", nil))
	if err != nil {
		t.Fatalf("unauthenticated request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", res.StatusCode)
	}
}

func TestOwnerStatusUpdateEnforcesOwnership(t *testing.T) {
	app, petService, _, _ := makeApp(
		[]Pet{{ID: 1, Name: "Bella", Type: "dog", AdoptionStatus: StatusAvailable, CreatedByID: 7}},
		nil, nil,
	)

	form := url.Values{}
	form.Set("adoptionStatus", StatusAdopted)

	// stranger gets a 403 and the status stays put
	req := httptest.NewRequest("POST", "/user/1/updateAdoptionStatus", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-ID", "8")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("stranger update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", res.StatusCode)
	}
	if p, _ := petService.GetByID(1); p.AdoptionStatus != StatusAvailable {
		t.Fatalf("status must not change for non-owner: %+v", p)
	}

	// owner succeeds and is sent back to mypets
	req = httptest.NewRequest("POST", "/user/1/updateAdoptionStatus", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-ID", "7")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect for owner, got %d", res.StatusCode)
	}
	if res.Header.Get("Location") != "/user/mypets" {
		t.Fatalf("expected redirect to /user/mypets, got %q", res.Header.Get("Location"))
	}
	if p, _ := petService.GetByID(1); p.AdoptionStatus != StatusAdopted {
		t.Fatalf("status not applied for owner: %+v", p)
	}

	// invalid status values are rejected
	form.Set("adoptionStatus", "lost")
	req = httptest.NewRequest("POST", "/user/1/updateAdoptionStatus", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-ID", "7")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("invalid status update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", res.StatusCode)
	}
}

func TestOwnerDeleteEnforcesOwnershipAndCascades(t *testing.T) {
	app, petService, commentService, _ := makeApp(
		[]Pet{{ID: 1, Name: "Bella", Type: "dog", CreatedByID: 7}},
		nil,
		[]comment.Comment{{ID: 1, Content: "cute", PetID: 1, CreatedByID: 8}},
	)

	req := httptest.NewRequest("POST", "/user/1/delete", nil)
	req.Header.Set("X-User-ID", "8")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("stranger delete failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/user/1/delete", nil)
	req.Header.Set("X-User-ID", "7")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect for owner, got %d", res.StatusCode)
	}
	if _, err := petService.GetByID(1); err != ErrNotFound {
		t.Fatalf("expected pet gone, got %v", err)
	}
	if got := commentService.ListByPet(1); len(got) != 0 {
		t.Fatalf("expected comments cascaded, got %d", len(got))
	}
}

func TestAdminSearchPets(t *testing.T) {
	app, _, _, _ := makeApp(
		[]Pet{
			{ID: 1, Name: "Bella", Type: "dog", Address: "Springfield", CreatedByID: 1},
			{ID: 2, Name: "Mittens", Type: "cat", Address: "Shelbyville", CreatedByID: 1},
		},
		nil, nil,
	)

	res, err := app.Test(httptest.NewRequest("GET", "/admin/pets/search?search=Bella", nil))
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Bella") || strings.Contains(string(body), "Mittens") {
		t.Fatalf("expected only Bella, got %s", body)
	}

	// query far from every field comes back empty
	res, err = app.Test(httptest.NewRequest("GET", "/admin/pets/search?search=zzzzzzzzzz", nil))
	if err != nil {
		t.Fatalf("distant search failed: %v", err)
	}
	body, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(body), "[]") {
		t.Fatalf("expected empty result set, got %s", body)
	}
}

func TestSearchByTypeRoute(t *testing.T) {
	app, _, _, _ := makeApp(
		[]Pet{
			{ID: 1, Name: "Bella", Type: "dog", CreatedByID: 1},
			{ID: 2, Name: "Mittens", Type: "cat", CreatedByID: 1},
		},
		nil, nil,
	)

	res, err := app.Test(httptest.NewRequest("GET", "/user/search?query=dpg", nil))
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Bella") || strings.Contains(string(body), "Mittens") {
		t.Fatalf("expected typo-tolerant match on petType, got %s", body)
	}
}
