package user

// User is an account on the adoption site. Passwords are stored as bcrypt
// hashes; JSON marshalling drops the hash unless explicitly set.
type User struct {
	ID        int    `json:"userId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
