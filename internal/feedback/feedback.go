package feedback

// Feedback is a message submitted through the feedback form. Records are
// immutable once stored; there are no update or delete paths.
type Feedback struct {
	ID        int    `json:"feedbackId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt,omitempty"`
}
