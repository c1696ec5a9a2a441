// Package engine implements the presence and progression rules: status
// derivation, streak continuity, leveling, currency and roster transitions
// over the single UserState document. All operations are synchronous,
// in-place mutations; persistence is the caller's concern.
package engine

import (
	"time"

	"imokay/config"
	"imokay/models"
)

// Engine evaluates state transitions using fixed threshold and reward
// constants taken from configuration at boot.
type Engine struct {
	warning       time.Duration
	alert         time.Duration
	rewardPoints  int
	xpPerCheckin  int
	baseCoinBonus int
	vipCoinBonus  int
}

// New builds an Engine from loaded configuration.
func New(cfg config.AppConfig) *Engine {
	return &Engine{
		warning:       cfg.WarningThreshold(),
		alert:         cfg.AlertThreshold(),
		rewardPoints:  cfg.CheckinRewardPoints,
		xpPerCheckin:  cfg.XPPerCheckin,
		baseCoinBonus: cfg.BaseCoinBonus,
		vipCoinBonus:  cfg.VIPCoinBonus,
	}
}

// Thresholds returns the warning and alert durations.
func (e *Engine) Thresholds() (warning, alert time.Duration) {
	return e.warning, e.alert
}

// Status classifies the local user or a friend timestamp.
func (e *Engine) Status(lastCheckIn, now int64) models.Status {
	return models.ClassifyStatus(lastCheckIn, now, e.warning, e.alert)
}

// XPForNextLevel is the xp required to advance past the given level.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}

// CheckInResult summarizes what a single check-in awarded.
type CheckInResult struct {
	Streak       int  `json:"streak"`
	Points       int  `json:"points"`
	CoinsAwarded int  `json:"coinsAwarded"`
	XPAwarded    int  `json:"xpAwarded"`
	Level        int  `json:"level"`
	LeveledUp    bool `json:"leveledUp"`
}

// CheckIn records a safety confirmation at now. The streak continues unless
// more than the alert threshold elapsed since the previous check-in (or there
// was none), in which case it restarts at 1. Every invocation advances the
// streak and timestamp; the once-per-day guard belongs to the caller.
func (e *Engine) CheckIn(s *models.UserState, now time.Time) CheckInResult {
	ms := now.UnixMilli()

	broken := s.LastCheckIn == 0 ||
		time.Duration(ms-s.LastCheckIn)*time.Millisecond > e.alert
	if broken {
		s.Streak = 1
	} else {
		s.Streak++
	}
	if s.Streak > s.HighestStreak {
		s.HighestStreak = s.Streak
	}
	s.LastCheckIn = ms
	s.Points += e.rewardPoints

	coins := e.baseCoinBonus
	if s.IsVIP() {
		coins = e.vipCoinBonus
	}
	s.Coins += coins

	if s.Level < 1 {
		s.Level = 1
	}
	s.XP += e.xpPerCheckin
	leveledUp := false
	// Threshold of the pre-increment level decides the carry.
	for s.XP >= XPForNextLevel(s.Level) {
		s.XP -= XPForNextLevel(s.Level)
		s.Level++
		leveledUp = true
	}

	return CheckInResult{
		Streak:       s.Streak,
		Points:       s.Points,
		CoinsAwarded: coins,
		XPAwarded:    e.xpPerCheckin,
		Level:        s.Level,
		LeveledUp:    leveledUp,
	}
}

// SweepExpiry zeroes a stale streak when more than the alert threshold has
// elapsed without a check-in. No other field changes, so the sweep is
// idempotent and safe to run on every load and on a timer.
func (e *Engine) SweepExpiry(s *models.UserState, now time.Time) bool {
	if s.LastCheckIn == 0 || s.Streak == 0 {
		return false
	}
	if time.Duration(now.UnixMilli()-s.LastCheckIn)*time.Millisecond > e.alert {
		s.Streak = 0
		return true
	}
	return false
}
