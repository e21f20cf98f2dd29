package xp

import "time"

// StreakResult est le résultat du calcul de série pour une séance
type StreakResult struct {
	NewStreak  int     `json:"newStreak"`
	Multiplier float64 `json:"multiplier"`
	// SameDay indique qu'une séance a déjà compté ce jour-là:
	// une seule présence par jour calendaire
	SameDay bool `json:"-"`
}

// ComputeStreak compare la dernière séance à la date de la session
// (granularité jour):
//   - écart de 1 jour  → la série continue (+1)
//   - écart de 0 jour  → même jour, la présence ne compte pas une deuxième fois
//   - écart > 1 jour ou aucune séance antérieure → la série repart à 1
func ComputeStreak(lastWorkout *time.Time, sessionDate time.Time, currentStreak int) StreakResult {
	day := truncateToDay(sessionDate)

	if lastWorkout == nil {
		return StreakResult{NewStreak: 1, Multiplier: StreakMultiplier(1)}
	}

	last := truncateToDay(*lastWorkout)
	gap := int(day.Sub(last).Hours() / 24)

	switch {
	case gap == 0:
		streak := currentStreak
		if streak < 1 {
			streak = 1
		}
		return StreakResult{NewStreak: streak, Multiplier: StreakMultiplier(streak), SameDay: true}
	case gap == 1:
		streak := currentStreak + 1
		return StreakResult{NewStreak: streak, Multiplier: StreakMultiplier(streak)}
	default:
		return StreakResult{NewStreak: 1, Multiplier: StreakMultiplier(1)}
	}
}

// StreakMultiplier retourne le multiplicateur d'XP pour une série donnée:
// min(1.0 + (streak-1) × 0.1, 2.0). Calculé en dixièmes entiers pour
// éviter l'accumulation d'erreurs binaires sur 0.1.
func StreakMultiplier(streak int) float64 {
	if streak < 1 {
		streak = 1
	}
	tenths := 10 + (streak - 1)
	if tenths > 20 {
		tenths = 20
	}
	return float64(tenths) / 10.0
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
