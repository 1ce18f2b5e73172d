package pet

import (
	"errors"
	"time"

	"github.com/wichananm65/pet-adoption-backend/internal/search"
)

// CommentDeleter removes every comment attached to a pet. Satisfied by the
// comment service; declared here so deleting a pet can cascade without an
// import cycle.
type CommentDeleter interface {
	DeleteByPet(petID int) error
}

type Service struct {
	repo     Repository
	comments CommentDeleter
}

func NewService(repo Repository, comments CommentDeleter) *Service {
	return &Service{repo: repo, comments: comments}
}

func (s *Service) List() []Pet {
	return s.repo.List()
}

func (s *Service) ListLatest(limit int) []Pet {
	return s.repo.ListLatest(limit)
}

func (s *Service) ListByCreator(userID int) []Pet {
	return s.repo.ListByCreator(userID)
}

func (s *Service) Count() (int, error) {
	return s.repo.Count()
}

func (s *Service) GetByID(id int) (Pet, error) {
	return s.repo.GetByID(id)
}

// Create validates the listing and stamps the defaults. The creator must be
// set by the caller from the authenticated identity.
func (s *Service) Create(p Pet) (Pet, error) {
	if p.Name == "" || p.Type == "" {
		return Pet{}, errors.New("petName and petType are required")
	}
	if p.CreatedByID <= 0 {
		return Pet{}, errors.New("pet requires a creator")
	}
	if p.AdoptionStatus == "" {
		p.AdoptionStatus = StatusAvailable
	}
	if !ValidStatus(p.AdoptionStatus) {
		return Pet{}, ErrInvalidStatus
	}
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.repo.Create(p)
}

// Search fuzzy-matches pets on name, type and address.
func (s *Service) Search(query string) []Pet {
	return search.Search(s.repo.List(), query, func(p Pet) []string {
		return []string{p.Name, p.Type, p.Address}
	}, search.DefaultOptions())
}

// SearchByType fuzzy-matches pets on type only, for the public search page.
func (s *Service) SearchByType(query string) []Pet {
	return search.Search(s.repo.List(), query, func(p Pet) []string {
		return []string{p.Type}
	}, search.DefaultOptions())
}

// Update is the allow-list of mutable listing fields. Creator, id and
// createdAt are immutable.
type Update struct {
	Name           *string
	Type           *string
	Age            *string
	MedicalHistory *string
	Address        *string
	ContactNo      *string
	AdditionalInfo *string
	AdoptionStatus *string
}

func (s *Service) Update(id int, update Update) (Pet, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Pet{}, err
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Type != nil {
		existing.Type = *update.Type
	}
	if update.Age != nil {
		existing.Age = *update.Age
	}
	if update.MedicalHistory != nil {
		existing.MedicalHistory = *update.MedicalHistory
	}
	if update.Address != nil {
		existing.Address = *update.Address
	}
	if update.ContactNo != nil {
		existing.ContactNo = *update.ContactNo
	}
	if update.AdditionalInfo != nil {
		existing.AdditionalInfo = *update.AdditionalInfo
	}
	if update.AdoptionStatus != nil {
		if !ValidStatus(*update.AdoptionStatus) {
			return Pet{}, ErrInvalidStatus
		}
		existing.AdoptionStatus = *update.AdoptionStatus
	}

	return s.repo.Update(id, existing)
}

// UpdateAdoptionStatusOwned changes the adoption status of a pet on behalf
// of its owner. Non-owners get ErrNotOwner.
func (s *Service) UpdateAdoptionStatusOwned(id int, status string, actorID int) (Pet, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Pet{}, err
	}
	if existing.CreatedByID != actorID {
		return Pet{}, ErrNotOwner
	}
	if !ValidStatus(status) {
		return Pet{}, ErrInvalidStatus
	}

	existing.AdoptionStatus = status
	return s.repo.Update(id, existing)
}

// Delete removes a pet and its comments. Comments cannot outlive their pet.
func (s *Service) Delete(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	return s.comments.DeleteByPet(id)
}

// DeleteOwned is Delete restricted to the pet's owner.
func (s *Service) DeleteOwned(id, actorID int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.CreatedByID != actorID {
		return ErrNotOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	return s.comments.DeleteByPet(id)
}
