package model

import (
	"time"
)

// PersonalRecord est une ligne de la table personal_records.
// Historique en append-only: au plus une ligne par (user, exercice) porte
// IsCurrentPR = true, les anciens records gardent leur ligne avec le flag à false.
type PersonalRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ExerciseID   string    `json:"exerciseId"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Sets         *int      `json:"sets,omitempty"`
	PRDate       time.Time `json:"prDate"`
	IsCurrentPR  bool      `json:"isCurrentPr"`
	PointsEarned int       `json:"pointsEarned"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PRCheck est le résultat du détecteur de record pour une performance.
// Premier log d'un exercice → baseline (pas de bonus), sinon comparaison
// au record courant.
type PRCheck struct {
	IsPR       bool            `json:"isPr"`
	IsBaseline bool            `json:"isBaseline"`
	PreviousPR *PersonalRecord `json:"previousPr,omitempty"`
}
