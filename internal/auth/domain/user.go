package domain

import "time"

// User is keyed by email; there is no separate numeric ID. The reset
// fields are only present between a forgot-password request and a
// successful reset.
type User struct {
	Email            string     `bson:"email" json:"email"`
	PasswordHash     string     `bson:"password_hash" json:"-"`
	IsAdmin          bool       `bson:"is_admin" json:"is_admin"`
	ResetToken       string     `bson:"reset_token,omitempty" json:"reset_token,omitempty"`
	ResetRequestedAt *time.Time `bson:"reset_requested_at,omitempty" json:"reset_requested_at,omitempty"`
}
