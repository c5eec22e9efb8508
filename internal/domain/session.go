package domain

import "time"

// Session binds a request token to an authenticated identity. Sessions are
// ephemeral and do not survive a restart of their backing store.
type Session struct {
	Token      string    `json:"token"`
	IdentityID uint      `json:"identityID"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
