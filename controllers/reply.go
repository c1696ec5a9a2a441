package controllers

import (
	"context"
	"time"

	"imokay/engine"
	"imokay/gemini"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// appendAndScheduleReply appends an outbound message and schedules the
// simulated friend reply: generator call, fixed artificial delay, then an
// append applied against current state. The goroutine is bound to the server
// lifetime context, so a completion after shutdown is discarded; a friend
// removed mid-flight makes the append a no-op.
func appendAndScheduleReply(appCtx context.Context, st *store.Store, gen gemini.Generator, delay time.Duration, friendID, text string) (models.Message, bool) {
	var (
		msg        models.Message
		ok         bool
		friendName string
		friendMood string
		lang       string
	)
	st.Update(appCtx, func(s *models.UserState) {
		if f := s.FindFriend(friendID); f != nil {
			friendName, friendMood = f.Name, f.Mood
		}
		lang = s.Language
		msg, ok = engine.AppendMessage(s, friendID, s.ID, text, time.Now())
	})
	if !ok {
		return msg, false
	}

	go func() {
		reply, err := gen.ChatReply(appCtx, friendName, friendMood, text, lang)
		if err != nil {
			// No fallback reply; the friend just stays silent.
			if utils.Sugar != nil {
				utils.Sugar.Debugf("chat reply generation failed: %v", err)
			}
			return
		}
		select {
		case <-appCtx.Done():
			return
		case <-time.After(delay):
		}
		st.Update(appCtx, func(s *models.UserState) {
			engine.AppendMessage(s, friendID, friendID, reply, time.Now())
		})
	}()
	return msg, true
}
