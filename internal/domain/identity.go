package domain

// Identity represents a registered user account without persistence concerns.
// PasswordHash holds the salted one-way hash of the credential; the raw
// password is never stored.
type Identity struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	PasswordHash string `json:"-"`
	Position     string `json:"position"`
}
