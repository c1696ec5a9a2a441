package models

import "time"

// Status is the derived safety classification from elapsed time since last check-in.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusAlert   Status = "alert"
)

// ClassifyStatus derives the safety status from elapsed time. Timestamps are
// milliseconds since epoch; lastCheckIn == 0 means never checked in and is
// treated as unbounded elapsed time.
func ClassifyStatus(lastCheckIn, now int64, warning, alert time.Duration) Status {
	if lastCheckIn == 0 {
		return StatusAlert
	}
	elapsed := time.Duration(now-lastCheckIn) * time.Millisecond
	if elapsed > alert {
		return StatusAlert
	}
	if elapsed > warning {
		return StatusWarning
	}
	return StatusSafe
}

// HoursSince returns whole hours elapsed between a timestamp and now, both in
// milliseconds since epoch. Zero timestamps report 0 hours.
func HoursSince(ts, now int64) int {
	if ts == 0 || now < ts {
		return 0
	}
	return int((now - ts) / int64(time.Hour/time.Millisecond))
}
