package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wichananm65/pet-adoption-backend/internal/auth"
	"github.com/wichananm65/pet-adoption-backend/internal/search"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Search fuzzy-matches users on name, email, role and address.
func (s *Service) Search(query string) []User {
	return search.Search(s.repo.List(), query, func(u User) []string {
		return []string{u.FullName, u.Email, u.Role, u.Address}
	}, search.DefaultOptions())
}

// Update applies the allow-listed mutable fields. The caller cannot change
// the id, the stored hash (except via a fresh password) or createdAt.
func (s *Service) Update(id int, update Update) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if update.FullName != nil {
		existing.FullName = *update.FullName
	}
	if update.Email != nil {
		existing.Email = *update.Email
	}
	if update.Role != nil {
		existing.Role = *update.Role
	}
	if update.Address != nil {
		existing.Address = *update.Address
	}
	if update.Password != nil && *update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		existing.Password = string(hashed)
	}

	return s.repo.Update(id, existing)
}

// Update lists the fields an admin (or the user) may change. Nil means
// "leave alone"; anything outside this struct is immutable through updates.
type Update struct {
	FullName *string
	Email    *string
	Password *string
	Role     *string
	Address  *string
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// Register creates an account with a freshly hashed password. New accounts
// get the regular user role.
func (s *Service) Register(fullName, email, password string) (User, error) {
	if _, err := s.repo.GetByEmail(email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(User{
		FullName:  fullName,
		Email:     email,
		Password:  string(hashed),
		Role:      auth.RoleUser,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
