package donation

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("donation not found")

type Repository interface {
	List() []Donation
	GetByID(id int) (Donation, error)
	Create(d Donation) (Donation, error)
	Update(id int, d Donation) (Donation, error)
	Delete(id int) error
	// Search matches the query as a case-insensitive substring of name or
	// email; when amount is non-nil it also matches donations of exactly
	// that amount. This is deliberately not the fuzzy path.
	Search(query string, amount *float64) []Donation
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	donations []Donation
	nextID    int
}

func NewInMemoryRepository(seed []Donation) *InMemoryRepository {
	repo := &InMemoryRepository{
		donations: make([]Donation, 0, len(seed)),
		nextID:    1,
	}

	maxID := 0
	for _, d := range seed {
		repo.donations = append(repo.donations, d)
		if d.ID > maxID {
			maxID = d.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Donation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Donation, len(r.donations))
	copy(out, r.donations)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.donations {
		if d.ID == id {
			return d, nil
		}
	}

	return Donation{}, ErrNotFound
}

func (r *InMemoryRepository) Create(d Donation) (Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == 0 {
		d.ID = r.nextID
		r.nextID++
	}

	r.donations = append(r.donations, d)
	return d, nil
}

func (r *InMemoryRepository) Update(id int, update Donation) (Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.donations {
		if r.donations[i].ID == id {
			update.ID = id
			r.donations[i] = update
			return update, nil
		}
	}

	return Donation{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.donations {
		if r.donations[i].ID == id {
			r.donations = append(r.donations[:i], r.donations[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (r *InMemoryRepository) Search(query string, amount *float64) []Donation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]Donation, 0)
	for _, d := range r.donations {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Email), q) ||
			(amount != nil && d.Amount == *amount) {
			out = append(out, d)
		}
	}
	return out
}
