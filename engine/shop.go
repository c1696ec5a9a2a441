package engine

import (
	"errors"

	"imokay/models"
)

var (
	// ErrAlreadyOwned rejects repurchasing an unlocked feature.
	ErrAlreadyOwned = errors.New("feature already owned")
	// ErrInsufficientCoins rejects a purchase the balance cannot cover.
	ErrInsufficientCoins = errors.New("insufficient coins")
)

// BuyItem converts coins into a permanent feature flag. On failure the state
// is untouched; coins never go negative and the unlock set stays duplicate
// free.
func BuyItem(s *models.UserState, item models.ShopItem) error {
	if s.HasUnlocked(item.ID) {
		return ErrAlreadyOwned
	}
	if s.Coins < item.Price {
		return ErrInsufficientCoins
	}
	s.Coins -= item.Price
	s.UnlockedFeatures = append(s.UnlockedFeatures, item.ID)
	return nil
}
