package model

import (
	"time"
)

// RefreshToken is the single long-lived token persisted per user. A new login
// supersedes the previous row; logout or expiry deletes it.
type RefreshToken struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
