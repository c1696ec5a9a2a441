package models

import "time"

// MessengerLinks holds optional outbound contact handles for a person.
type MessengerLinks struct {
	Phone    string `json:"phone,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Viber    string `json:"viber,omitempty"`
}

// Friend is an entry in the local user's roster. LastCheckIn is only ever
// advanced externally; the local user's own check-in never touches it.
type Friend struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Avatar      string          `json:"avatar"`
	LastCheckIn int64           `json:"lastCheckIn"`
	// Status is a display cache recomputed from LastCheckIn on every read.
	// It is never an authoritative source of truth.
	Status     Status          `json:"status"`
	Points     int             `json:"points"`
	Mood       string          `json:"mood,omitempty"`
	Messengers *MessengerLinks `json:"messengers,omitempty"`
}

// RefreshStatus recomputes the cached status from the timestamp.
func (f *Friend) RefreshStatus(now int64, warning, alert time.Duration) {
	f.Status = ClassifyStatus(f.LastCheckIn, now, warning, alert)
}

// FriendRequest is a pending incoming request.
type FriendRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Timestamp int64  `json:"timestamp"`
}
