package comment

import "github.com/wichananm65/pet-adoption-backend/internal/user"

// Comment is user feedback attached to a pet listing. Both references are
// required at creation time.
type Comment struct {
	ID          int    `json:"commentId"`
	Content     string `json:"content"`
	PetID       int    `json:"petId"`
	CreatedByID int    `json:"createdBy"`
	CreatedAt   string `json:"createdAt,omitempty"`

	Creator *user.User `json:"creator,omitempty"`
}
