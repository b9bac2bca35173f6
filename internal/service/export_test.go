package service

import "time"

// SetClock overrides the clock used to stamp session tokens.
func (as *AuthService) SetClock(now func() time.Time) {
	as.now = now
}
