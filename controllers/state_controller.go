package controllers

import (
	"github.com/gin-gonic/gin"

	"imokay/engine"
	"imokay/i18n"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// StateController serves the whole state document and derived display values.
type StateController struct {
	store *store.Store
	eng   *engine.Engine
}

// NewStateController creates a new controller instance.
func NewStateController(st *store.Store, eng *engine.Engine) *StateController {
	return &StateController{store: st, eng: eng}
}

// GetState returns the full document. Friend statuses are recomputed on read.
func (sc *StateController) GetState(ctx *gin.Context) {
	snap, err := sc.store.Snapshot()
	if err != nil {
		utils.Error(ctx, 500, 50010, "failed to read state")
		return
	}
	utils.Success(ctx, snap)
}

// FormattedStreak renders the current streak in display units.
func (sc *StateController) FormattedStreak(ctx *gin.Context) {
	var streak int
	var lang string
	sc.store.View(func(s *models.UserState) {
		streak = s.Streak
		lang = s.Language
	})
	utils.Success(ctx, gin.H{
		"streak":    streak,
		"formatted": engine.FormatStreak(streak, lang),
	})
}

// Share composes the social share text for the share card.
func (sc *StateController) Share(ctx *gin.Context) {
	var name, mood, lang string
	var streak int
	sc.store.View(func(s *models.UserState) {
		name, mood, lang, streak = s.Name, s.Mood, s.Language, s.Streak
	})
	t := i18n.For(lang)
	utils.Success(ctx, gin.H{
		"title":   t.ShareTitle,
		"message": i18n.ShareMessage(lang, name, mood, engine.FormatStreak(streak, lang)),
		"url":     "https://im-okay.app",
	})
}
