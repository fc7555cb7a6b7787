package model

import (
	"time"

	"github.com/itsmontel/steppet_api/shared"
)

const DailyCreditAllowance = 3

// BoostDelta returns the health delta a credit kind grants, or 0 for an
// unknown kind.
func BoostDelta(kind string) int {
	switch kind {
	case shared.CreditSourceGame:
		return 3
	case shared.CreditSourceActivity:
		return 5
	default:
		return 0
	}
}

type CreditLedger struct {
	ID                   string     `json:"id" gorm:"primaryKey"`
	UserID               string     `json:"user_id" gorm:"not null;uniqueIndex"`
	DailyFreeCredits     int        `json:"daily_free_credits" gorm:"not null"`
	PurchasedCredits     int        `json:"purchased_credits" gorm:"not null"`
	TodayHealthBoost     int        `json:"today_health_boost" gorm:"not null"`
	LastBoostDate        *time.Time `json:"last_boost_date"`
	LastDailyCreditsDate *time.Time `json:"last_daily_credits_date"`
	CreatedAt            time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"not null"`
}

func (l *CreditLedger) TotalCredits() int {
	return l.DailyFreeCredits + l.PurchasedCredits
}

// Spend consumes one credit for the given kind and returns the health delta
// to apply. Free credits drain before purchased ones. Returns false with no
// mutation when the balance is zero or the kind is unknown.
func (l *CreditLedger) Spend(kind string, now time.Time) (int, bool) {
	delta := BoostDelta(kind)
	if delta == 0 {
		return 0, false
	}
	if l.TotalCredits() <= 0 {
		return 0, false
	}

	if l.DailyFreeCredits > 0 {
		l.DailyFreeCredits--
	} else {
		l.PurchasedCredits--
	}

	day := StartOfDay(now)
	l.TodayHealthBoost += delta
	l.LastBoostDate = &day

	return delta, true
}

// DailyReset clears day-scoped state when the stored dates are not today.
// Must run before the composite health formula is evaluated, otherwise a
// stale boost leaks across the day boundary.
func (l *CreditLedger) DailyReset(now time.Time) bool {
	day := StartOfDay(now)
	changed := false

	if l.LastBoostDate == nil || !l.LastBoostDate.Equal(day) {
		if l.TodayHealthBoost != 0 || l.LastBoostDate != nil {
			changed = true
		}
		l.TodayHealthBoost = 0
		l.LastBoostDate = nil
	}

	if l.LastDailyCreditsDate == nil || !l.LastDailyCreditsDate.Equal(day) {
		l.DailyFreeCredits = DailyCreditAllowance
		l.LastDailyCreditsDate = &day
		changed = true
	}

	return changed
}

// CompositeHealth blends the step-derived score with today's boost, capped
// at 100. Both inputs must be current for the same day.
func CompositeHealth(stepHealth, todayBoost int) int {
	return ClampHealth(stepHealth + todayBoost)
}
