package donation

import (
	"errors"
	"strconv"
	"time"
)

// ErrEmptyQuery is returned when the donation search is called without a
// query; the endpoint turns it into a 400.
var ErrEmptyQuery = errors.New("search query is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Donation {
	return s.repo.List()
}

func (s *Service) Total() float64 {
	total := 0.0
	for _, d := range s.repo.List() {
		total += d.Amount
	}
	return total
}

func (s *Service) GetByID(id int) (Donation, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(d Donation) (Donation, error) {
	if d.Name == "" || d.Email == "" {
		return Donation{}, errors.New("name and email are required")
	}
	if d.CreatedAt == "" {
		d.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.repo.Create(d)
}

// Search is the exact/substring path: case-insensitive substring on name and
// email, plus numeric equality on amount when the query parses as a number.
// Unlike the fuzzy endpoints, an empty query is an error here.
func (s *Service) Search(query string) ([]Donation, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var amount *float64
	if v, err := strconv.ParseFloat(query, 64); err == nil {
		amount = &v
	}

	return s.repo.Search(query, amount), nil
}

// Update is the allow-list of admin-mutable donation fields.
type Update struct {
	Name      *string
	Address   *string
	Age       *string
	Gender    *string
	Email     *string
	ContactNo *string
	Amount    *float64
}

func (s *Service) Update(id int, update Update) (Donation, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Donation{}, err
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Address != nil {
		existing.Address = *update.Address
	}
	if update.Age != nil {
		existing.Age = *update.Age
	}
	if update.Gender != nil {
		existing.Gender = *update.Gender
	}
	if update.Email != nil {
		existing.Email = *update.Email
	}
	if update.ContactNo != nil {
		existing.ContactNo = *update.ContactNo
	}
	if update.Amount != nil {
		existing.Amount = *update.Amount
	}

	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
