package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"imokay/models"
)

// RemoveFriend drops a roster entry by id. A missing id is a silent no-op.
// The chat transcript is append-only and survives removal.
func RemoveFriend(s *models.UserState, friendID string) bool {
	for i := range s.Friends {
		if s.Friends[i].ID == friendID {
			s.Friends = append(s.Friends[:i], s.Friends[i+1:]...)
			return true
		}
	}
	return false
}

// AcceptRequest moves a pending request into the roster. The new friend gets
// a fresh lastCheckIn of now, so they start out safe. Returns nil when the
// request id is unknown.
func (e *Engine) AcceptRequest(s *models.UserState, requestID string, now time.Time) *models.Friend {
	req, ok := takeRequest(s, requestID)
	if !ok {
		return nil
	}
	ms := now.UnixMilli()
	friend := models.Friend{
		ID:          req.ID,
		Name:        req.Name,
		Avatar:      req.Avatar,
		LastCheckIn: ms,
	}
	friend.RefreshStatus(ms, e.warning, e.alert)
	s.Friends = append(s.Friends, friend)
	return &s.Friends[len(s.Friends)-1]
}

// DeclineRequest discards a pending request. Missing ids are a no-op.
func DeclineRequest(s *models.UserState, requestID string) bool {
	_, ok := takeRequest(s, requestID)
	return ok
}

func takeRequest(s *models.UserState, requestID string) (models.FriendRequest, bool) {
	for i := range s.PendingRequests {
		if s.PendingRequests[i].ID == requestID {
			req := s.PendingRequests[i]
			s.PendingRequests = append(s.PendingRequests[:i], s.PendingRequests[i+1:]...)
			return req, true
		}
	}
	return models.FriendRequest{}, false
}

var demoRequestNames = []string{"Taras", "Oksana", "Dmytro", "Sofia", "Petro", "Iryna"}

// SimulateRequest appends a demo friend request, used by the UI's simulate
// button to exercise the accept/decline flow.
func SimulateRequest(s *models.UserState, now time.Time) models.FriendRequest {
	name := demoRequestNames[int(now.UnixMilli())%len(demoRequestNames)]
	req := models.FriendRequest{
		ID:        uuid.NewString(),
		Name:      name,
		Avatar:    fmt.Sprintf("https://picsum.photos/seed/%s/200", strings.ToLower(name)),
		Timestamp: now.UnixMilli(),
	}
	s.PendingRequests = append(s.PendingRequests, req)
	return req
}

// FilterFriends returns roster entries whose name contains the query,
// case-insensitively. An empty query matches everything. Pure; the input
// slice is not modified.
func FilterFriends(friends []models.Friend, query string) []models.Friend {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Friend, 0, len(friends))
	for _, f := range friends {
		if query == "" || strings.Contains(strings.ToLower(f.Name), query) {
			out = append(out, f)
		}
	}
	return out
}
