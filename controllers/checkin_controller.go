package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"imokay/engine"
	"imokay/gemini"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// CheckInController handles the daily safety confirmation.
type CheckInController struct {
	store  *store.Store
	eng    *engine.Engine
	gen    gemini.Generator
	appCtx context.Context
}

// NewCheckInController creates a new controller instance.
func NewCheckInController(appCtx context.Context, st *store.Store, eng *engine.Engine, gen gemini.Generator) *CheckInController {
	return &CheckInController{store: st, eng: eng, gen: gen, appCtx: appCtx}
}

// CheckIn records a check-in and kicks off the affirmation request. The state
// mutation commits before and independently of the generator call: the
// affirmation (or its fallback) arrives later as a follow-up update.
func (cc *CheckInController) CheckIn(ctx *gin.Context) {
	now := time.Now()
	var (
		res  engine.CheckInResult
		lang string
	)
	cc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		res = cc.eng.CheckIn(s, now)
		lang = s.Language
	})

	go func() {
		text := cc.gen.DailyAffirmation(cc.appCtx, lang)
		select {
		case <-cc.appCtx.Done():
			return
		default:
		}
		cc.store.Update(cc.appCtx, func(s *models.UserState) {
			s.LastAffirmation = text
		})
	}()

	utils.Sugar.Infow("check-in recorded",
		"streak", res.Streak, "level", res.Level, "leveled_up", res.LeveledUp)
	utils.Notify(ctx, "success", "checked in", res)
}

// Affirmation returns the most recently surfaced affirmation text.
func (cc *CheckInController) Affirmation(ctx *gin.Context) {
	var text string
	cc.store.View(func(s *models.UserState) {
		text = s.LastAffirmation
	})
	utils.Success(ctx, gin.H{"affirmation": text})
}
