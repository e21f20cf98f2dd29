package xp

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStreakContinues(t *testing.T) {
	last := day(2025, time.March, 9)
	res := ComputeStreak(&last, day(2025, time.March, 10), 4)
	if res.NewStreak != 5 || res.SameDay {
		t.Fatalf("consecutive day should continue streak: %+v", res)
	}
	if res.Multiplier != 1.4 {
		t.Fatalf("streak 5 multiplier = %v, want 1.4", res.Multiplier)
	}
}

func TestStreakSameDay(t *testing.T) {
	last := day(2025, time.March, 10)
	res := ComputeStreak(&last, day(2025, time.March, 10).Add(18*time.Hour), 4)
	if !res.SameDay || res.NewStreak != 4 {
		t.Fatalf("same day should not count twice: %+v", res)
	}
}

func TestStreakBroken(t *testing.T) {
	last := day(2025, time.March, 1)
	res := ComputeStreak(&last, day(2025, time.March, 10), 9)
	if res.NewStreak != 1 || res.Multiplier != 1.0 {
		t.Fatalf("gap > 1 day should reset streak: %+v", res)
	}
}

func TestStreakFirstWorkout(t *testing.T) {
	res := ComputeStreak(nil, day(2025, time.March, 10), 0)
	if res.NewStreak != 1 || res.Multiplier != 1.0 {
		t.Fatalf("first workout should start streak at 1: %+v", res)
	}
}

func TestMultiplierBounds(t *testing.T) {
	for streak := 1; streak <= 30; streak++ {
		m := StreakMultiplier(streak)
		if m < 1.0 || m > 2.0 {
			t.Fatalf("multiplier out of [1.0, 2.0] for streak %d: %v", streak, m)
		}
	}
}

func TestMultiplierCap(t *testing.T) {
	// Dernier palier avant le plafond
	if m := StreakMultiplier(10); m != 1.9 {
		t.Fatalf("streak 10 multiplier = %v, want 1.9", m)
	}
	if m := StreakMultiplier(11); m != 2.0 {
		t.Fatalf("streak 11 multiplier = %v, want 2.0", m)
	}
	// Plafonné: pas de 2.1 au 12e jour
	if m := StreakMultiplier(12); m != 2.0 {
		t.Fatalf("streak 12 multiplier = %v, want 2.0 (capped)", m)
	}
}
