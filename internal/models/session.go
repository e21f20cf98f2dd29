package model

import (
	"time"

	"github.com/MassBabyGeek/LiftOff-backend/internal/xp"
)

// ExercisePerformance est la saisie brute d'un exercice dans une séance.
// Weight/Reps décrivent la meilleure série (base de la détection de PR),
// Sets le nombre total de séries. SetDetails est optionnel si les séries
// diffèrent en poids ou en reps.
type ExercisePerformance struct {
	ExerciseID   string         `json:"exerciseId"`
	ExerciseName string         `json:"exerciseName"`
	Weight       float64        `json:"weight"`
	Reps         int            `json:"reps"`
	Sets         int            `json:"sets"`
	SetDetails   []xp.SetDetail `json:"setDetails,omitempty"`
}

// ExerciseLog est la ligne du détail par exercice archivé avec la séance
type ExerciseLog struct {
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Sets         int     `json:"sets"`
	XP           int     `json:"xp"`
	IsPR         bool    `json:"isPr"`
	IsBaseline   bool    `json:"isBaseline"`
}

// WorkoutSession est l'entrée d'audit immuable d'une séance réglée
type WorkoutSession struct {
	ID               string        `json:"id"`
	UserID           string        `json:"userId"`
	SessionDate      time.Time     `json:"sessionDate"`
	TotalXP          int           `json:"totalXp"`
	Exercises        []ExerciseLog `json:"exercises"`
	ExerciseNames    []string      `json:"exerciseNames,omitempty"`
	PRsAchieved      int           `json:"prsAchieved"`
	StreakMultiplier float64       `json:"streakMultiplier"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// LevelProgress décrit la position dans le niveau courant
type LevelProgress struct {
	Level   int `json:"level"`
	Current int `json:"current"`
	Needed  int `json:"needed"`
}

// SessionResult est le retour du règlement d'une séance
type SessionResult struct {
	SessionID        string        `json:"sessionId"`
	SessionXP        int           `json:"sessionXp"`
	ExerciseXP       int           `json:"exerciseXp"`
	PRsAchieved      int           `json:"prsAchieved"`
	StreakMultiplier float64       `json:"streakMultiplier"`
	NewStreak        int           `json:"newStreak"`
	NewLevel         int           `json:"newLevel"`
	LevelProgress    LevelProgress `json:"levelProgress"`
}
