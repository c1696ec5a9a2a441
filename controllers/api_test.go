package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imokay/config"
	"imokay/engine"
	"imokay/gemini"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// newTestAPI wires the controllers onto a bare router with an in-memory store
// and an unconfigured generator, skipping the access log and rate limiter.
func newTestAPI(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if utils.Sugar == nil {
		require.NoError(t, utils.InitLogger(config.AppConfig{LogLevel: "error"}))
	}

	cfg := config.AppConfig{
		WarningThresholdHours: 24,
		AlertThresholdHours:   48,
		CheckinRewardPoints:   10,
		XPPerCheckin:          25,
		BaseCoinBonus:         10,
		VIPCoinBonus:          20,
	}
	eng := engine.New(cfg)
	st := store.New(nil, cfg.WarningThreshold(), cfg.AlertThreshold())
	require.NoError(t, st.Load(context.Background(), time.Now()))

	gen, err := gemini.NewClient(context.Background(), config.AppConfig{GeminiModel: "gemini-3-flash-preview"})
	require.NoError(t, err)

	appCtx := context.Background()
	checkin := NewCheckInController(appCtx, st, eng, gen)
	state := NewStateController(st, eng)
	friends := NewFriendController(appCtx, st, eng, gen)
	chat := NewChatController(appCtx, st, gen)
	shop := NewShopController(st)
	profile := NewProfileController(st)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/state", state.GetState)
	api.GET("/streak/formatted", state.FormattedStreak)
	api.GET("/share", state.Share)
	api.GET("/affirmation", checkin.Affirmation)
	api.POST("/checkin", checkin.CheckIn)
	api.GET("/friends", friends.ListFriends)
	api.GET("/friends/:id", friends.GetFriend)
	api.DELETE("/friends/:id", friends.DeleteFriend)
	api.GET("/friends/:id/contact", friends.Contact)
	api.POST("/friends/:id/support", friends.SendSupport)
	api.GET("/friends/:id/messages", chat.ListMessages)
	api.POST("/friends/:id/messages", chat.SendMessage)
	api.GET("/requests", friends.ListRequests)
	api.POST("/requests/simulate", friends.SimulateRequest)
	api.POST("/requests/:id/accept", friends.AcceptRequest)
	api.POST("/requests/:id/decline", friends.DeclineRequest)
	api.GET("/shop/items", shop.ListItems)
	api.POST("/shop/buy", shop.Buy)
	api.PATCH("/profile", profile.UpdateProfile)
	api.POST("/profile/mood", profile.SetMood)
	api.POST("/settings/language", profile.SetLanguage)
	api.POST("/settings/notifications", profile.SetNotifications)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, utils.JSONResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetState(t *testing.T) {
	r, _ := newTestAPI(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Code)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "user_1", data["id"])
	assert.Len(t, data["friends"], 3)
}

func TestCheckInEndpoint(t *testing.T) {
	r, st := newTestAPI(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Notify)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), data["streak"])
	assert.Equal(t, float64(10), data["coinsAwarded"])

	// The affirmation arrives as an asynchronous follow-up update.
	require.Eventually(t, func() bool {
		var text string
		st.View(func(s *models.UserState) { text = s.LastAffirmation })
		return text != ""
	}, 2*time.Second, 10*time.Millisecond)

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/affirmation", nil)
	data = resp.Data.(map[string]any)
	assert.Equal(t, "Have a great day!", data["affirmation"])
}

func TestFriendEndpoints(t *testing.T) {
	r, _ := newTestAPI(t)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/friends?query=mar", nil)
	friends := resp.Data.([]any)
	require.Len(t, friends, 1)
	assert.Equal(t, "Maria", friends[0].(map[string]any)["name"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/friends/f2", nil)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "warning", data["friend"].(map[string]any)["status"])
	assert.Equal(t, float64(30), data["hoursSince"])

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/friends/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40410, resp.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/friends/f1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/friends", nil)
	assert.Len(t, resp.Data.([]any), 2)

	// Deleting again stays a silent no-op.
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/friends/f1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/friends/f1/contact?method=telegram", nil)
	data := resp.Data.(map[string]any)
	assert.Contains(t, data["url"], "https://t.me/")

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/friends/ghost/contact?method=phone", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40411, resp.Code)
}

func TestChatEndpoints(t *testing.T) {
	r, _ := newTestAPI(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/friends/f1/messages", gin.H{"text": "you okay?"})
	data := resp.Data.(map[string]any)
	assert.Equal(t, "you okay?", data["text"])
	assert.Equal(t, "user_1", data["senderId"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/friends/f1/messages", nil)
	assert.Len(t, resp.Data.([]any), 1)

	// Blank text is accepted but nothing is appended.
	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/friends/f1/messages", gin.H{"text": "   "})
	assert.Nil(t, resp.Data)
	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/friends/f1/messages", nil)
	assert.Len(t, resp.Data.([]any), 1)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/friends/ghost/messages", gin.H{"text": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40410, resp.Code)
}

func TestSupportEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)

	// Unconfigured generator falls back to the fixed caring message.
	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/friends/f3/support", nil)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "How are you? Just checking in.", data["text"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/friends/f3/messages", nil)
	assert.Len(t, resp.Data.([]any), 1)
}

func TestRequestEndpoints(t *testing.T) {
	r, _ := newTestAPI(t)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/requests", nil)
	require.Len(t, resp.Data.([]any), 1)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/requests/r1/accept", nil)
	assert.Equal(t, "success", resp.Notify)
	friend := resp.Data.(map[string]any)
	assert.Equal(t, "Taras", friend["name"])
	assert.Equal(t, "safe", friend["status"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/friends", nil)
	assert.Len(t, resp.Data.([]any), 4)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/requests/r1/decline", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40413, resp.Code)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/requests/simulate", nil)
	assert.Equal(t, "info", resp.Notify)
	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/requests", nil)
	assert.Len(t, resp.Data.([]any), 1)
}

func TestShopEndpoints(t *testing.T) {
	r, st := newTestAPI(t)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/shop/items", nil)
	data := resp.Data.(map[string]any)
	assert.Len(t, data["items"], 4)
	assert.Equal(t, float64(0), data["coins"])

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/shop/buy", gin.H{"itemId": "gold"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40031, resp.Code)

	st.Update(context.Background(), func(s *models.UserState) { s.Coins = 200 })

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/shop/buy", gin.H{"itemId": "gold"})
	assert.Equal(t, "success", resp.Notify)
	assert.Equal(t, float64(50), resp.Data.(map[string]any)["coins"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/shop/buy", gin.H{"itemId": "gold"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40032, resp.Code)

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/shop/buy", gin.H{"itemId": "unknown"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40420, resp.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r, st := newTestAPI(t)

	_, resp := doJSON(t, r, http.MethodPatch, "/api/v1/profile", gin.H{"name": "  Sasha <b>x</b> "})
	assert.Equal(t, "success", resp.Notify)
	st.View(func(s *models.UserState) {
		assert.Equal(t, "Sasha x", s.Name)
	})

	w, resp := doJSON(t, r, http.MethodPatch, "/api/v1/profile", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40021, resp.Code)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/profile/mood", gin.H{"mood": "😴"})
	assert.Equal(t, "😴", resp.Data.(map[string]any)["mood"])

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/settings/language", gin.H{"language": "ua"})
	assert.Equal(t, "ua", resp.Data.(map[string]any)["language"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/settings/language", gin.H{"language": "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40022, resp.Code)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/settings/notifications", gin.H{"enabled": false})
	assert.Equal(t, false, resp.Data.(map[string]any)["enabled"])
	st.View(func(s *models.UserState) {
		assert.False(t, s.NotificationsEnabled)
	})
}

func TestStreakAndShareEndpoints(t *testing.T) {
	r, _ := newTestAPI(t)

	doJSON(t, r, http.MethodPost, "/api/v1/checkin", nil)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/streak/formatted", nil)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), data["streak"])
	assert.Equal(t, "1 days", data["formatted"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/share", nil)
	data = resp.Data.(map[string]any)
	assert.Equal(t, "I'm Okay!", data["title"])
	assert.Contains(t, data["message"], "Alex")
	assert.Contains(t, data["message"], "1 days")
}
