package entity

// User is keyed by username; the key never changes after registration.
type User struct {
	Username string  `json:"username"`
	Password *string `json:"password"` // stored in plain text, matching the existing frontend contract
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}
