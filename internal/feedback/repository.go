package feedback

import "sync"

type Repository interface {
	Create(f Feedback) (Feedback, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	feedback []Feedback
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(f Feedback) (Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == 0 {
		f.ID = r.nextID
		r.nextID++
	}

	r.feedback = append(r.feedback, f)
	return f, nil
}

// All returns every stored entry; used by tests.
func (r *InMemoryRepository) All() []Feedback {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Feedback, len(r.feedback))
	copy(out, r.feedback)
	return out
}
