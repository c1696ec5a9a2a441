package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedState(t *testing.T) {
	now := time.Now()
	s := SeedState(now)

	assert.Equal(t, "user_1", s.ID)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, int64(0), s.LastCheckIn)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, LanguageEN, s.Language)
	assert.Len(t, s.Friends, 3)
	assert.Len(t, s.PendingRequests, 1)
	assert.NotNil(t, s.Messages)

	// Seed offsets land one friend in each status band.
	nowMs := now.UnixMilli()
	s.RefreshStatuses(nowMs, warning, alert)
	assert.Equal(t, StatusSafe, s.Friends[0].Status)
	assert.Equal(t, StatusWarning, s.Friends[1].Status)
	assert.Equal(t, StatusAlert, s.Friends[2].Status)
}

func TestUserStateRoundTrip(t *testing.T) {
	s := SeedState(time.Now())
	s.Streak = 5
	s.HighestStreak = 9
	s.LastCheckIn = time.Now().UnixMilli()
	s.Coins = 120
	s.UnlockedFeatures = []string{"gold"}
	s.Mood = "😴"
	s.Messages["f1"] = []Message{
		{ID: "m1", SenderID: "user_1", Text: "hey", Timestamp: 1700000000000},
		{ID: "m2", SenderID: "f1", Text: "hi!", Timestamp: 1700000005000},
	}

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var restored UserState
	require.NoError(t, json.Unmarshal(b, &restored))
	assert.Equal(t, *s, restored)
}

func TestHasUnlocked(t *testing.T) {
	s := &UserState{UnlockedFeatures: []string{"gold", FeatureVIP}}
	assert.True(t, s.HasUnlocked("gold"))
	assert.True(t, s.IsVIP())
	assert.False(t, s.HasUnlocked("dark_theme"))
	assert.False(t, (&UserState{}).IsVIP())
}

func TestFindFriend(t *testing.T) {
	s := SeedState(time.Now())

	f := s.FindFriend("f2")
	require.NotNil(t, f)
	assert.Equal(t, "Ivan", f.Name)

	assert.Nil(t, s.FindFriend("missing"))
}

func TestRefreshStatusesOverwritesStoredCache(t *testing.T) {
	now := time.Now().UnixMilli()
	s := &UserState{Friends: []Friend{
		// Stored status claims safe but the timestamp says otherwise.
		{ID: "f1", Name: "Maria", LastCheckIn: now - ms(60*time.Hour), Status: StatusSafe},
	}}

	s.RefreshStatuses(now, warning, alert)
	assert.Equal(t, StatusAlert, s.Friends[0].Status)
}
