package model

import (
	"time"
)

// UserStats est la ligne de progression d'un utilisateur (une par user).
// CumulativeXP est le compteur canonique: XP total gagné depuis le niveau 1,
// jamais remis à zéro par un passage de niveau. Level est toujours redérivé
// du cumul par le ledger avant d'être retourné.
type UserStats struct {
	UserID          string     `json:"userId"`
	Level           int        `json:"level"`
	CumulativeXP    int        `json:"cumulativeXp"`
	XPWithinLevel   int        `json:"xpWithinLevel"`
	XPForNextLevel  int        `json:"xpForNextLevel"`
	CurrentMonthXP  int        `json:"currentMonthXp"`
	CurrentMonth    string     `json:"currentMonth,omitempty"` // YYYY-MM
	CurrentStreak   int        `json:"currentStreak"`
	LongestStreak   int        `json:"longestStreak"`
	TotalWorkouts   int        `json:"totalWorkouts"`
	TotalPRs        int        `json:"totalPrs"`
	ChallengesWon   int        `json:"challengesWon"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate,omitempty"`
	Bodyweight      *float64   `json:"bodyweight,omitempty"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AvailableXP retourne le solde misable sur un lift-off
func (s *UserStats) AvailableXP() int {
	return s.CumulativeXP
}

// MonthlyXP est une ligne d'historique mensuel
type MonthlyXP struct {
	UserID  string `json:"userId"`
	Month   string `json:"month"` // YYYY-MM
	TotalXP int    `json:"totalXp"`
}
