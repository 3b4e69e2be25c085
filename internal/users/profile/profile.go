package profile

import "time"

// Profile is a known sender of the bot.
//
// Profiles are created lazily the first time a sender interacts; there is no
// registration step. FirstName and Username are nullable because the
// transport does not always know them.
type Profile struct {
	UserID       int64     `json:"user_id"`
	FirstName    *string   `json:"first_name,omitempty"`
	Username     *string   `json:"username,omitempty"`
	LanguagePref string    `json:"language_pref"`
	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}
