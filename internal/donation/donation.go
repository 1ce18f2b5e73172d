package donation

// Donation is a monetary contribution submitted through the donate form.
type Donation struct {
	ID        int     `json:"donationId"`
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Age       string  `json:"age,omitempty"`
	Gender    string  `json:"gender,omitempty"`
	Email     string  `json:"email"`
	ContactNo string  `json:"contactNo,omitempty"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
