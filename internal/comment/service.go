package comment

import (
	"errors"
	"time"
)

// ErrWrongPet is returned when a comment is addressed through a pet it does
// not belong to.
var ErrWrongPet = errors.New("comment does not belong to this pet")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByPet(petID int) []Comment {
	return s.repo.ListByPet(petID)
}

func (s *Service) GetByID(id int) (Comment, error) {
	return s.repo.GetByID(id)
}

// Create attaches a comment to a pet on behalf of the authenticated user.
func (s *Service) Create(content string, petID, createdBy int) (Comment, error) {
	if content == "" {
		return Comment{}, errors.New("content is required")
	}
	if petID <= 0 || createdBy <= 0 {
		return Comment{}, errors.New("comment requires a pet and a creator")
	}

	return s.repo.Create(Comment{
		Content:     content,
		PetID:       petID,
		CreatedByID: createdBy,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// DeleteForPet deletes a comment only if its stored pet reference matches
// petID. A mismatch leaves the comment in place and reports ErrWrongPet.
func (s *Service) DeleteForPet(commentID, petID int) error {
	c, err := s.repo.GetByID(commentID)
	if err != nil {
		return err
	}
	if c.PetID != petID {
		return ErrWrongPet
	}
	return s.repo.Delete(commentID)
}

// DeleteByPet removes every comment on a pet (cascade on pet deletion).
func (s *Service) DeleteByPet(petID int) error {
	return s.repo.DeleteByPet(petID)
}
