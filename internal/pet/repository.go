package pet

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound      = errors.New("pet not found")
	ErrNotOwner      = errors.New("pet does not belong to this user")
	ErrInvalidStatus = errors.New("invalid adoption status")
)

type Repository interface {
	List() []Pet
	ListLatest(limit int) []Pet
	ListByCreator(userID int) []Pet
	Count() (int, error)
	GetByID(id int) (Pet, error)
	Create(p Pet) (Pet, error)
	Update(id int, p Pet) (Pet, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	pets   []Pet
	nextID int
}

func NewInMemoryRepository(seed []Pet) *InMemoryRepository {
	repo := &InMemoryRepository{
		pets:   make([]Pet, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, p := range seed {
		repo.pets = append(repo.pets, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]Pet, len(r.pets))
	copy(pets, r.pets)
	return pets
}

func (r *InMemoryRepository) ListLatest(limit int) []Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]Pet, len(r.pets))
	copy(pets, r.pets)
	sort.SliceStable(pets, func(i, j int) bool {
		return pets[i].CreatedAt > pets[j].CreatedAt
	})
	if len(pets) > limit {
		pets = pets[:limit]
	}
	return pets
}

func (r *InMemoryRepository) ListByCreator(userID int) []Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]Pet, 0)
	for _, p := range r.pets {
		if p.CreatedByID == userID {
			pets = append(pets, p)
		}
	}
	return pets
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pets), nil
}

func (r *InMemoryRepository) GetByID(id int) (Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pets {
		if p.ID == id {
			return p, nil
		}
	}

	return Pet{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Pet) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}

	r.pets = append(r.pets, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, update Pet) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pets {
		if r.pets[i].ID == id {
			update.ID = id
			r.pets[i] = update
			return update, nil
		}
	}

	return Pet{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pets {
		if r.pets[i].ID == id {
			r.pets = append(r.pets[:i], r.pets[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
