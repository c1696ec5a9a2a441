package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imokay/models"
)

func rosterState(now time.Time) *models.UserState {
	return &models.UserState{
		Level: 1,
		Friends: []models.Friend{
			{ID: "f1", Name: "Maria", LastCheckIn: now.UnixMilli()},
			{ID: "f2", Name: "Ivan", LastCheckIn: now.UnixMilli()},
		},
		PendingRequests: []models.FriendRequest{
			{ID: "r1", Name: "Taras", Timestamp: now.UnixMilli()},
		},
		Messages: map[string][]models.Message{
			"f1": {{ID: "m1", SenderID: "user_1", Text: "hey"}},
		},
	}
}

func TestRemoveFriend(t *testing.T) {
	now := time.Now()
	s := rosterState(now)

	assert.True(t, RemoveFriend(s, "f1"))
	assert.Nil(t, s.FindFriend("f1"))
	assert.Len(t, s.Friends, 1)
	assert.Len(t, s.Messages["f1"], 1, "transcript survives removal")

	assert.False(t, RemoveFriend(s, "f1"), "second removal is a no-op")
	assert.Len(t, s.Friends, 1)
}

func TestAcceptRequest(t *testing.T) {
	eng := testEngine()
	now := time.Now()
	s := rosterState(now)

	friend := eng.AcceptRequest(s, "r1", now)
	require.NotNil(t, friend)
	assert.Equal(t, "r1", friend.ID)
	assert.Equal(t, "Taras", friend.Name)
	assert.Equal(t, now.UnixMilli(), friend.LastCheckIn)
	assert.Equal(t, models.StatusSafe, friend.Status)
	assert.Empty(t, s.PendingRequests)
	assert.Len(t, s.Friends, 3)

	assert.Nil(t, eng.AcceptRequest(s, "r1", now), "consumed request is gone")
}

func TestDeclineRequest(t *testing.T) {
	now := time.Now()
	s := rosterState(now)

	assert.True(t, DeclineRequest(s, "r1"))
	assert.Empty(t, s.PendingRequests)
	assert.Len(t, s.Friends, 2, "roster untouched")

	assert.False(t, DeclineRequest(s, "nope"))
}

func TestSimulateRequest(t *testing.T) {
	now := time.Now()
	s := rosterState(now)

	req := SimulateRequest(s, now)
	assert.NotEmpty(t, req.ID)
	assert.NotEmpty(t, req.Name)
	assert.Contains(t, req.Avatar, "picsum.photos")
	assert.Equal(t, now.UnixMilli(), req.Timestamp)
	assert.Len(t, s.PendingRequests, 2)
}

func TestFilterFriends(t *testing.T) {
	friends := []models.Friend{
		{ID: "f1", Name: "Maria"},
		{ID: "f2", Name: "Ivan"},
		{ID: "f3", Name: "Olena"},
	}

	assert.Len(t, FilterFriends(friends, ""), 3)
	assert.Len(t, FilterFriends(friends, "  "), 3)

	got := FilterFriends(friends, "mar")
	require.Len(t, got, 1)
	assert.Equal(t, "Maria", got[0].Name)

	got = FilterFriends(friends, "IVAN")
	require.Len(t, got, 1)
	assert.Equal(t, "Ivan", got[0].Name)

	assert.Empty(t, FilterFriends(friends, "zzz"))
	assert.Len(t, friends, 3, "input not modified")
}

func TestAppendMessage(t *testing.T) {
	now := time.Now()
	s := rosterState(now)

	msg, ok := AppendMessage(s, "f2", "user_1", "  you okay?  ", now)
	require.True(t, ok)
	assert.Equal(t, "you okay?", msg.Text)
	assert.Equal(t, "user_1", msg.SenderID)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, now.UnixMilli(), msg.Timestamp)
	require.Len(t, s.Messages["f2"], 1)
	assert.Equal(t, msg, s.Messages["f2"][0])

	_, ok = AppendMessage(s, "f2", "user_1", "   ", now)
	assert.False(t, ok, "blank text is dropped")
	assert.Len(t, s.Messages["f2"], 1)

	_, ok = AppendMessage(s, "ghost", "user_1", "hello", now)
	assert.False(t, ok, "unknown friend is dropped")
}

func TestAppendMessageInitializesMap(t *testing.T) {
	now := time.Now()
	s := &models.UserState{
		Friends: []models.Friend{{ID: "f1", Name: "Maria"}},
	}

	_, ok := AppendMessage(s, "f1", "f1", "hi", now)
	require.True(t, ok)
	assert.Len(t, s.Messages["f1"], 1)
}
