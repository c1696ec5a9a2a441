package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"imokay/config"
	"imokay/engine"
	"imokay/gemini"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// FriendController manages the roster, pending requests, contact links, and
// the AI support-message flow.
type FriendController struct {
	store  *store.Store
	eng    *engine.Engine
	gen    gemini.Generator
	appCtx context.Context
}

// NewFriendController creates a new controller instance.
func NewFriendController(appCtx context.Context, st *store.Store, eng *engine.Engine, gen gemini.Generator) *FriendController {
	return &FriendController{store: st, eng: eng, gen: gen, appCtx: appCtx}
}

// ListFriends returns the roster, optionally filtered by a case-insensitive
// name substring query.
func (fc *FriendController) ListFriends(ctx *gin.Context) {
	query := ctx.Query("query")
	var friends []models.Friend
	fc.store.View(func(s *models.UserState) {
		friends = engine.FilterFriends(s.Friends, query)
	})
	utils.Success(ctx, friends)
}

// GetFriend returns one roster entry with derived display fields.
func (fc *FriendController) GetFriend(ctx *gin.Context) {
	id := ctx.Param("id")
	now := time.Now().UnixMilli()
	var friend *models.Friend
	fc.store.View(func(s *models.UserState) {
		if f := s.FindFriend(id); f != nil {
			copied := *f
			friend = &copied
		}
	})
	if friend == nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "friend not found")
		return
	}
	utils.Success(ctx, gin.H{
		"friend":     friend,
		"hoursSince": models.HoursSince(friend.LastCheckIn, now),
	})
}

// DeleteFriend removes a roster entry. A missing id is a silent no-op.
func (fc *FriendController) DeleteFriend(ctx *gin.Context) {
	id := ctx.Param("id")
	fc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		engine.RemoveFriend(s, id)
	})
	utils.Notify(ctx, "info", "friend removed", nil)
}

// Contact builds the outbound deep link for one of a friend's messenger
// handles.
func (fc *FriendController) Contact(ctx *gin.Context) {
	id := ctx.Param("id")
	method := ctx.Query("method")

	var links *models.MessengerLinks
	fc.store.View(func(s *models.UserState) {
		if f := s.FindFriend(id); f != nil && f.Messengers != nil {
			copied := *f.Messengers
			links = &copied
		}
	})
	if links == nil {
		utils.Error(ctx, http.StatusNotFound, 40411, "no messenger links for friend")
		return
	}

	value := ""
	switch method {
	case "phone":
		value = links.Phone
	case "whatsapp":
		value = links.WhatsApp
	case "telegram":
		value = links.Telegram
	case "viber":
		value = links.Viber
	case "facebook":
		value = links.Facebook
	}
	if value == "" {
		utils.Error(ctx, http.StatusNotFound, 40412, "messenger link not set")
		return
	}
	utils.Success(ctx, gin.H{"url": engine.ContactURI(method, value)})
}

// SendSupport generates a caring message about a friend who has not checked
// in for a while and sends it to them; the simulated reply follows the usual
// chat flow.
func (fc *FriendController) SendSupport(ctx *gin.Context) {
	id := ctx.Param("id")
	now := time.Now().UnixMilli()

	var (
		name  string
		hours int
		lang  string
		found bool
	)
	fc.store.View(func(s *models.UserState) {
		if f := s.FindFriend(id); f != nil {
			name = f.Name
			hours = models.HoursSince(f.LastCheckIn, now)
			found = true
		}
		lang = s.Language
	})
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40410, "friend not found")
		return
	}

	// FriendSupport falls back to a fixed localized string, so the send
	// itself cannot fail on generator errors.
	text := fc.gen.FriendSupport(ctx.Request.Context(), name, hours, lang)
	msg, ok := appendAndScheduleReply(fc.appCtx, fc.store, fc.gen, config.Get().ReplyDelay(), id, text)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40410, "friend not found")
		return
	}
	utils.Success(ctx, msg)
}

// ListRequests returns the pending friend requests.
func (fc *FriendController) ListRequests(ctx *gin.Context) {
	var requests []models.FriendRequest
	fc.store.View(func(s *models.UserState) {
		requests = append(requests, s.PendingRequests...)
	})
	utils.Success(ctx, requests)
}

// SimulateRequest appends a demo pending request.
func (fc *FriendController) SimulateRequest(ctx *gin.Context) {
	var req models.FriendRequest
	fc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		req = engine.SimulateRequest(s, time.Now())
	})
	utils.Notify(ctx, "info", "new friend request", req)
}

// AcceptRequest moves a pending request into the roster.
func (fc *FriendController) AcceptRequest(ctx *gin.Context) {
	id := ctx.Param("id")
	var friend *models.Friend
	fc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		if f := fc.eng.AcceptRequest(s, id, time.Now()); f != nil {
			copied := *f
			friend = &copied
		}
	})
	if friend == nil {
		utils.Error(ctx, http.StatusNotFound, 40413, "friend request not found")
		return
	}
	utils.Notify(ctx, "success", "friend request accepted", friend)
}

// DeclineRequest discards a pending request.
func (fc *FriendController) DeclineRequest(ctx *gin.Context) {
	id := ctx.Param("id")
	var ok bool
	fc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		ok = engine.DeclineRequest(s, id)
	})
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40413, "friend request not found")
		return
	}
	utils.Notify(ctx, "info", "friend request declined", nil)
}
