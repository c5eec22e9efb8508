package domain

import "time"

// MaterialOperation is one immutable entry of the material ledger. Username
// and Position are snapshots of the acting identity taken at record time and
// do not follow later profile changes.
type MaterialOperation struct {
	ID         uint      `json:"id"`
	IdentityID uint      `json:"identityID"`
	Username   string    `json:"username"`
	Position   string    `json:"position"`
	Subject    string    `json:"subject"`
	Quantity   int       `json:"quantity"`
	Sender     string    `json:"sender"`
	Receiver   string    `json:"receiver"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}
