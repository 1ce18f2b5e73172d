package pet

import "github.com/wichananm65/pet-adoption-backend/internal/user"

// Adoption lifecycle states. A pet starts available and moves through
// pending to adopted.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusAdopted   = "adopted"
)

// Pet is an adoption listing. CreatedByID is required at creation time;
// Creator is populated for views that join the owning user.
type Pet struct {
	ID             int    `json:"petId"`
	Name           string `json:"petName"`
	Type           string `json:"petType"`
	Age            string `json:"petAge,omitempty"`
	MedicalHistory string `json:"petMedicalHis,omitempty"`
	Address        string `json:"petAddress,omitempty"`
	ContactNo      string `json:"petContactNo,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
	CoverImageURL  string `json:"coverImageURL,omitempty"`
	AdoptionStatus string `json:"adoptionStatus"`
	CreatedByID    int    `json:"createdBy"`
	CreatedAt      string `json:"createdAt,omitempty"`

	Creator *user.User `json:"creator,omitempty"`
}

// ValidStatus reports whether s is one of the adoption lifecycle states.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}
