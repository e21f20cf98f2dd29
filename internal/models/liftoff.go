package model

import (
	"time"
)

// Statuts d'un lift-off. completed, declined et expired sont terminaux.
const (
	LiftOffPending   = "pending"
	LiftOffAccepted  = "accepted"
	LiftOffCompleted = "completed"
	LiftOffDeclined  = "declined"
	LiftOffExpired   = "expired"
)

// LiftOffDuration est la durée de validité d'un défi (7 jours)
const LiftOffDuration = 7 * 24 * time.Hour

// LiftOffChallenge est un pari d'XP entre deux utilisateurs sur un exercice.
// Chaque participant soumet sa charge dans son propre slot; à la seconde
// soumission le défi est réglé et la mise transférée.
type LiftOffChallenge struct {
	ID                    string     `json:"id"`
	ChallengerID          string     `json:"challengerId"`
	ChallengedID          string     `json:"challengedId"`
	ExerciseID            string     `json:"exerciseId"`
	Exercise              *Exercise  `json:"exercise,omitempty"`
	WagerXP               int        `json:"wagerXp"`
	Status                string     `json:"status"`
	ChallengerWeight      *float64   `json:"challengerWeight,omitempty"`
	ChallengedWeight      *float64   `json:"challengedWeight,omitempty"`
	ChallengerCompletedAt *time.Time `json:"challengerCompletedAt,omitempty"`
	ChallengedCompletedAt *time.Time `json:"challengedCompletedAt,omitempty"`
	WinnerID              *string    `json:"winnerId,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	AcceptedAt            *time.Time `json:"acceptedAt,omitempty"`
	ExpiresAt             time.Time  `json:"expiresAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// IsParticipant indique si l'utilisateur est l'une des deux parties
func (c *LiftOffChallenge) IsParticipant(userID string) bool {
	return c.ChallengerID == userID || c.ChallengedID == userID
}

// IsTerminal indique si le défi est dans un état final
func (c *LiftOffChallenge) IsTerminal() bool {
	switch c.Status {
	case LiftOffCompleted, LiftOffDeclined, LiftOffExpired:
		return true
	}
	return false
}

// ShouldExpire indique si un défi encore ouvert a dépassé son échéance.
// L'expiration n'est pas poussée: les lecteurs la constatent et la persistent.
func (c *LiftOffChallenge) ShouldExpire(now time.Time) bool {
	if c.IsTerminal() {
		return false
	}
	return now.After(c.ExpiresAt)
}

// Opponent retourne l'autre participant
func (c *LiftOffChallenge) Opponent(userID string) string {
	if c.ChallengerID == userID {
		return c.ChallengedID
	}
	return c.ChallengerID
}
