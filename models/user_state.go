package models

import "time"

// Language tags supported by the app.
const (
	LanguageEN = "en"
	LanguageUA = "ua"
)

// UserState is the root aggregate: the whole document is persisted as one JSON
// blob under a single key and rewritten after every mutation.
type UserState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mood string `json:"mood,omitempty"`

	Points        int   `json:"points"`
	Streak        int   `json:"streak"`
	HighestStreak int   `json:"highestStreak"`
	LastCheckIn   int64 `json:"lastCheckIn"`

	Coins            int      `json:"coins"`
	Level            int      `json:"level"`
	XP               int      `json:"xp"`
	UnlockedFeatures []string `json:"unlockedFeatures"`

	Language             string         `json:"language"`
	NotificationsEnabled bool           `json:"notificationsEnabled"`
	Messengers           MessengerLinks `json:"messengers"`

	Friends         []Friend             `json:"friends"`
	PendingRequests []FriendRequest      `json:"pendingRequests"`
	Messages        map[string][]Message `json:"messages"`

	// LastAffirmation is the most recent generator result surfaced after a
	// check-in. It arrives as a follow-up mutation once the call resolves.
	LastAffirmation string `json:"lastAffirmation,omitempty"`
}

// HasUnlocked reports whether a feature id has been purchased.
func (s *UserState) HasUnlocked(id string) bool {
	for _, f := range s.UnlockedFeatures {
		if f == id {
			return true
		}
	}
	return false
}

// IsVIP reports whether the VIP feature is unlocked.
func (s *UserState) IsVIP() bool {
	return s.HasUnlocked(FeatureVIP)
}

// FindFriend returns a pointer into the roster, or nil when the id is unknown.
func (s *UserState) FindFriend(id string) *Friend {
	for i := range s.Friends {
		if s.Friends[i].ID == id {
			return &s.Friends[i]
		}
	}
	return nil
}

// RefreshStatuses recomputes every friend's cached status. Stored status values
// are overwritten rather than trusted.
func (s *UserState) RefreshStatuses(now int64, warning, alert time.Duration) {
	for i := range s.Friends {
		s.Friends[i].RefreshStatus(now, warning, alert)
	}
}

// SeedState builds the first-launch document with demo friends and one pending
// request, mirroring hour offsets that land in each status band.
func SeedState(now time.Time) *UserState {
	ms := now.UnixMilli()
	hour := int64(time.Hour / time.Millisecond)
	return &UserState{
		ID:               "user_1",
		Name:             "Alex",
		Mood:             "😊",
		Level:            1,
		UnlockedFeatures: []string{},
		Language:         LanguageEN,
		Messengers: MessengerLinks{
			Phone:    "+380990000000",
			Telegram: "alex_okay",
		},
		Friends: []Friend{
			{
				ID:          "f1",
				Name:        "Maria",
				Avatar:      "https://picsum.photos/seed/maria/200",
				LastCheckIn: ms - 10*hour,
				Points:      450,
				Mood:        "😊",
				Messengers: &MessengerLinks{
					Phone:    "+380991234567",
					Telegram: "maria_safety",
					WhatsApp: "+380991234567",
				},
			},
			{
				ID:          "f2",
				Name:        "Ivan",
				Avatar:      "https://picsum.photos/seed/ivan/200",
				LastCheckIn: ms - 30*hour,
				Points:      1200,
				Mood:        "😴",
				Messengers: &MessengerLinks{
					Phone: "+380997654321",
					Viber: "+380997654321",
				},
			},
			{
				ID:          "f3",
				Name:        "Olena",
				Avatar:      "https://picsum.photos/seed/olena/200",
				LastCheckIn: ms - 50*hour,
				Points:      800,
				Mood:        "😤",
				Messengers: &MessengerLinks{
					Facebook: "olena.safety.official",
				},
			},
		},
		PendingRequests: []FriendRequest{
			{
				ID:        "r1",
				Name:      "Taras",
				Avatar:    "https://picsum.photos/seed/taras/200",
				Timestamp: ms - hour,
			},
		},
		Messages: map[string][]Message{},
	}
}
