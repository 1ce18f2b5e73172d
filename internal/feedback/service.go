package feedback

import (
	"errors"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(name, email, message string) (Feedback, error) {
	if name == "" || email == "" || message == "" {
		return Feedback{}, errors.New("name, email and message are required")
	}

	return s.repo.Create(Feedback{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
