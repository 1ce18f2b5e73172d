package comment

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("comment not found")

type Repository interface {
	ListByPet(petID int) []Comment
	GetByID(id int) (Comment, error)
	Create(c Comment) (Comment, error)
	Delete(id int) error
	DeleteByPet(petID int) error
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	comments []Comment
	nextID   int
}

func NewInMemoryRepository(seed []Comment) *InMemoryRepository {
	repo := &InMemoryRepository{
		comments: make([]Comment, 0, len(seed)),
		nextID:   1,
	}

	maxID := 0
	for _, c := range seed {
		repo.comments = append(repo.comments, c)
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) ListByPet(petID int) []Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Comment, 0)
	for _, c := range r.comments {
		if c.PetID == petID {
			out = append(out, c)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.comments {
		if c.ID == id {
			return c, nil
		}
	}

	return Comment{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Comment) (Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}

	r.comments = append(r.comments, c)
	return c, nil
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (r *InMemoryRepository) DeleteByPet(petID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.PetID != petID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}
