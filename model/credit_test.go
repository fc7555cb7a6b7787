package model

import (
	"testing"
	"time"

	"github.com/itsmontel/steppet_api/shared"
)

func TestBoostDelta(t *testing.T) {
	if got := BoostDelta(shared.CreditSourceGame); got != 3 {
		t.Errorf("game delta = %d, want 3", got)
	}
	if got := BoostDelta(shared.CreditSourceActivity); got != 5 {
		t.Errorf("activity delta = %d, want 5", got)
	}
	if got := BoostDelta("mystery"); got != 0 {
		t.Errorf("unknown kind delta = %d, want 0", got)
	}
}

func TestSpend_FreeCreditsDrainFirst(t *testing.T) {
	now := day(2026, time.March, 10)
	today := StartOfDay(now)
	l := CreditLedger{
		DailyFreeCredits:     2,
		PurchasedCredits:     5,
		LastDailyCreditsDate: &today,
	}

	delta, ok := l.Spend(shared.CreditSourceGame, now)
	if !ok || delta != 3 {
		t.Fatalf("Spend = (%d, %v), want (3, true)", delta, ok)
	}
	if l.DailyFreeCredits != 1 || l.PurchasedCredits != 5 {
		t.Errorf("balances = %d/%d, want 1/5", l.DailyFreeCredits, l.PurchasedCredits)
	}

	l.Spend(shared.CreditSourceGame, now)
	l.Spend(shared.CreditSourceGame, now)
	if l.DailyFreeCredits != 0 || l.PurchasedCredits != 4 {
		t.Errorf("balances = %d/%d, want 0/4", l.DailyFreeCredits, l.PurchasedCredits)
	}
}

func TestSpend_FailsAtZeroBalance(t *testing.T) {
	now := day(2026, time.March, 10)
	l := CreditLedger{}

	delta, ok := l.Spend(shared.CreditSourceActivity, now)
	if ok || delta != 0 {
		t.Errorf("Spend on empty ledger = (%d, %v), want (0, false)", delta, ok)
	}
	if l.TodayHealthBoost != 0 {
		t.Errorf("boost mutated on failed spend: %d", l.TodayHealthBoost)
	}
}

func TestSpend_UnknownKindRejectedWithBalance(t *testing.T) {
	now := day(2026, time.March, 10)
	l := CreditLedger{DailyFreeCredits: 3}

	_, ok := l.Spend("mystery", now)
	if ok {
		t.Error("unknown kind accepted")
	}
	if l.DailyFreeCredits != 3 {
		t.Errorf("balance mutated on rejected kind: %d", l.DailyFreeCredits)
	}
}

func TestSpend_AccumulatesBoost(t *testing.T) {
	now := day(2026, time.March, 10)
	l := CreditLedger{DailyFreeCredits: 3}

	l.Spend(shared.CreditSourceGame, now)
	l.Spend(shared.CreditSourceActivity, now)

	if l.TodayHealthBoost != 8 {
		t.Errorf("boost = %d, want 8", l.TodayHealthBoost)
	}
	if l.LastBoostDate == nil || !l.LastBoostDate.Equal(StartOfDay(now)) {
		t.Errorf("LastBoostDate = %v, want today", l.LastBoostDate)
	}
}

func TestDailyReset_RefillsAndZeroesBoost(t *testing.T) {
	yesterday := day(2026, time.March, 9)
	l := CreditLedger{
		DailyFreeCredits:     0,
		PurchasedCredits:     2,
		TodayHealthBoost:     8,
		LastBoostDate:        &yesterday,
		LastDailyCreditsDate: &yesterday,
	}

	changed := l.DailyReset(day(2026, time.March, 10))

	if !changed {
		t.Error("DailyReset reported no change")
	}
	if l.DailyFreeCredits != DailyCreditAllowance {
		t.Errorf("free credits = %d, want %d", l.DailyFreeCredits, DailyCreditAllowance)
	}
	if l.PurchasedCredits != 2 {
		t.Errorf("purchased credits = %d, want 2 (must survive reset)", l.PurchasedCredits)
	}
	if l.TodayHealthBoost != 0 {
		t.Errorf("boost = %d, want 0", l.TodayHealthBoost)
	}
	if l.LastBoostDate != nil {
		t.Errorf("LastBoostDate = %v, want nil", l.LastBoostDate)
	}
}

func TestDailyReset_SameDayNoop(t *testing.T) {
	now := day(2026, time.March, 10)
	today := StartOfDay(now)
	l := CreditLedger{
		DailyFreeCredits:     1,
		TodayHealthBoost:     3,
		LastBoostDate:        &today,
		LastDailyCreditsDate: &today,
	}

	if l.DailyReset(now) {
		t.Error("same-day DailyReset reported a change")
	}
	if l.DailyFreeCredits != 1 || l.TodayHealthBoost != 3 {
		t.Errorf("ledger mutated on same-day reset: %+v", l)
	}
}

func TestCompositeHealth(t *testing.T) {
	if got := CompositeHealth(50, 8); got != 58 {
		t.Errorf("CompositeHealth(50, 8) = %d, want 58", got)
	}
	if got := CompositeHealth(97, 8); got != 100 {
		t.Errorf("CompositeHealth(97, 8) = %d, want capped 100", got)
	}
	if got := CompositeHealth(0, 0); got != 0 {
		t.Errorf("CompositeHealth(0, 0) = %d, want 0", got)
	}
}
