package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"imokay/models"
)

// AppendMessage adds one entry to a friend's transcript. Empty or
// whitespace-only text and unknown friend ids are silent no-ops, reported via
// the second return value so callers can skip the simulated reply.
func AppendMessage(s *models.UserState, friendID, senderID, text string, now time.Time) (models.Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, false
	}
	if s.FindFriend(friendID) == nil {
		return models.Message{}, false
	}
	msg := models.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: now.UnixMilli(),
	}
	if s.Messages == nil {
		s.Messages = map[string][]models.Message{}
	}
	s.Messages[friendID] = append(s.Messages[friendID], msg)
	return msg, true
}
