package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"imokay/engine"
	"imokay/models"
	"imokay/store"
	"imokay/utils"
)

// ShopController handles the coin-gated feature shop.
type ShopController struct {
	store *store.Store
}

// NewShopController creates a new controller instance.
func NewShopController(st *store.Store) *ShopController {
	return &ShopController{store: st}
}

// ListItems returns the catalog annotated with ownership, plus the balance.
func (sc *ShopController) ListItems(ctx *gin.Context) {
	type shopEntry struct {
		models.ShopItem
		Owned bool `json:"owned"`
	}
	var entries []shopEntry
	var coins int
	sc.store.View(func(s *models.UserState) {
		coins = s.Coins
		for _, item := range models.Catalog() {
			entries = append(entries, shopEntry{ShopItem: item, Owned: s.HasUnlocked(item.ID)})
		}
	})
	utils.Success(ctx, gin.H{"items": entries, "coins": coins})
}

// Buy converts coins into a permanent unlock. Rejections leave state
// untouched and surface as transient notifications.
func (sc *ShopController) Buy(ctx *gin.Context) {
	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	item, found := models.FindItem(req.ItemID)
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40420, "unknown shop item")
		return
	}

	var buyErr error
	var coins int
	sc.store.Update(ctx.Request.Context(), func(s *models.UserState) {
		buyErr = engine.BuyItem(s, item)
		coins = s.Coins
	})

	switch {
	case errors.Is(buyErr, engine.ErrAlreadyOwned):
		utils.Error(ctx, http.StatusBadRequest, 40032, "feature already owned")
	case errors.Is(buyErr, engine.ErrInsufficientCoins):
		utils.Error(ctx, http.StatusBadRequest, 40031, "insufficient coins")
	default:
		utils.Notify(ctx, "success", "purchase complete", gin.H{
			"itemId": item.ID,
			"coins":  coins,
		})
	}
}
