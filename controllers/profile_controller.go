package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// ProfileController handles identity and preference updates.
type ProfileController struct {
	store *store.Store
}

// NewProfileController creates a new controller instance.
func NewProfileController(st *store.Store) *ProfileController {
	return &ProfileController{store: st}
}

// UpdateProfile patches the display name and messenger links. Omitted fields
// are left untouched.
func (pc *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req struct {
		Name       *string                `json:"name"`
		Messengers *models.MessengerLinks `json:"messengers"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}
	if req.Name != nil {
		name := utils.Sanitize(strings.TrimSpace(*req.Name))
		if name == "" {
			utils.Error(ctx, http.StatusBadRequest, 40021, "name cannot be empty")
			return
		}
		*req.Name = name
	}

	pc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Messengers != nil {
			s.Messengers = *req.Messengers
		}
	})
	utils.Notify(ctx, "success", "profile updated", nil)
}

// SetMood records the user's current mood emoji.
func (pc *ProfileController) SetMood(ctx *gin.Context) {
	var req struct {
		Mood string `json:"mood" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}
	mood := utils.Sanitize(strings.TrimSpace(req.Mood))
	pc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		s.Mood = mood
	})
	utils.Notify(ctx, "info", "mood updated", gin.H{"mood": mood})
}

// SetLanguage toggles the interface language.
func (pc *ProfileController) SetLanguage(ctx *gin.Context) {
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}
	if req.Language != models.LanguageEN && req.Language != models.LanguageUA {
		utils.Error(ctx, http.StatusBadRequest, 40022, "unsupported language")
		return
	}
	pc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		s.Language = req.Language
	})
	utils.Success(ctx, gin.H{"language": req.Language})
}

// SetNotifications flips the notification preference.
func (pc *ProfileController) SetNotifications(ctx *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}
	pc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		s.NotificationsEnabled = *req.Enabled
	})
	utils.Success(ctx, gin.H{"enabled": *req.Enabled})
}
