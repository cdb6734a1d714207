package model

// Admin is a separate credential record for back-office access. Admins are
// not linked to marketplace users and never appear in marketplace responses
// beyond their id and email.
type Admin struct {
	ID           uint64 `json:"id"`    // admin.id
	Email        string `json:"email"` // admin.email (unique)
	PasswordHash string `json:"-"`     // admin.password_hash (bcrypt)
}
