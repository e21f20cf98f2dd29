package xp

import (
	"math"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
)

// SetDetail décrit une série individuelle quand le client fournit le détail
type SetDetail struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// ScoreExercise calcule l'XP d'une performance sur un exercice.
// PR:     round((weight / bodyweight) × 100), l'intensité seule est récompensée
// Normal: round((weight / bodyweight) × 10 × reps × sets)
func ScoreExercise(weight, bodyweight float64, reps, sets int, isPR bool) (int, error) {
	if bodyweight <= 0 {
		return 0, apperr.MissingBodyweight()
	}

	if isPR {
		return int(math.Round((weight / bodyweight) * 100)), nil
	}

	return int(math.Round((weight / bodyweight) * 10 * float64(reps) * float64(sets))), nil
}

// ScoreSets calcule l'XP normal quand le détail par série est disponible:
// somme de la formule normale par série, chaque série comptant pour 1.
func ScoreSets(details []SetDetail, bodyweight float64) (int, error) {
	if bodyweight <= 0 {
		return 0, apperr.MissingBodyweight()
	}

	total := 0
	for _, set := range details {
		xp, err := ScoreExercise(set.Weight, bodyweight, set.Reps, 1, false)
		if err != nil {
			return 0, err
		}
		total += xp
	}

	return total, nil
}

// BeatsPR indique si une performance bat le record courant.
// Le poids est la clé primaire, les reps départagent à poids égal.
func BeatsPR(weight float64, reps int, prWeight float64, prReps int) bool {
	return weight > prWeight || (weight == prWeight && reps > prReps)
}
