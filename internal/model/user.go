package model

// User represents an application user record as stored in the `user` table.
// The password hash is excluded from JSON so a stored credential never leaks
// through an API response.
type User struct {
	ID           uint64 `json:"id"`      // user.id
	Email        string `json:"email"`   // user.email (unique)
	PasswordHash string `json:"-"`       // user.password_hash (bcrypt)
	Name         string `json:"name"`    // user.name
	Surname      string `json:"surname"` // user.surname
	Phone        string `json:"phone"`   // user.phone
}
