package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"imokay/config"
	"imokay/gemini"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// ChatController serves per-friend transcripts and accepts outbound messages.
type ChatController struct {
	store  *store.Store
	gen    gemini.Generator
	appCtx context.Context
}

// NewChatController creates a new controller instance.
func NewChatController(appCtx context.Context, st *store.Store, gen gemini.Generator) *ChatController {
	return &ChatController{store: st, gen: gen, appCtx: appCtx}
}

// ListMessages returns a friend's transcript in append order.
func (cc *ChatController) ListMessages(ctx *gin.Context) {
	id := ctx.Param("id")
	var messages []models.Message
	cc.store.View(func(s *models.UserState) {
		messages = append(messages, s.Messages[id]...)
	})
	utils.Success(ctx, messages)
}

// SendMessage appends an outbound message and schedules the simulated friend
// reply. Empty or whitespace-only text is a silent no-op.
func (cc *ChatController) SendMessage(ctx *gin.Context) {
	id := ctx.Param("id")
	var req struct {
		Text string `json:"text"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	var known bool
	cc.store.View(func(s *models.UserState) {
		known = s.FindFriend(id) != nil
	})
	if !known {
		utils.Error(ctx, http.StatusNotFound, 40410, "friend not found")
		return
	}

	text := utils.Sanitize(req.Text)
	msg, ok := appendAndScheduleReply(cc.appCtx, cc.store, cc.gen, config.Get().ReplyDelay(), id, text)
	if !ok {
		// Blank text: ignored, nothing appended.
		utils.Success(ctx, nil)
		return
	}
	utils.Success(ctx, msg)
}
