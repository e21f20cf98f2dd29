package xp

import (
	"testing"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
)

func TestScorePR(t *testing.T) {
	// 80kg de poids de corps, 100kg soulevé → round((100/80)×100) = 125
	got, err := ScoreExercise(100, 80, 5, 3, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 125 {
		t.Fatalf("PR score = %d, want 125", got)
	}
}

func TestScorePRIgnoresRepsAndSets(t *testing.T) {
	a, _ := ScoreExercise(100, 80, 1, 1, true)
	b, _ := ScoreExercise(100, 80, 12, 5, true)
	if a != b {
		t.Fatalf("PR score should ignore reps/sets: %d != %d", a, b)
	}
}

func TestScoreNormal(t *testing.T) {
	// round((60/80)×10×10×3) = 225
	got, err := ScoreExercise(60, 80, 10, 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 225 {
		t.Fatalf("normal score = %d, want 225", got)
	}
}

func TestScoreMissingBodyweight(t *testing.T) {
	if _, err := ScoreExercise(60, 0, 10, 3, false); !apperr.IsKind(err, apperr.KindMissingBodyweight) {
		t.Fatalf("want MissingBodyweight, got %v", err)
	}
	if _, err := ScoreSets([]SetDetail{{Weight: 60, Reps: 10}}, -1); !apperr.IsKind(err, apperr.KindMissingBodyweight) {
		t.Fatalf("want MissingBodyweight, got %v", err)
	}
}

func TestScoreSetsSumsPerSet(t *testing.T) {
	details := []SetDetail{
		{Weight: 60, Reps: 10}, // round((60/80)×10×10) = 75
		{Weight: 62.5, Reps: 8},
		{Weight: 65, Reps: 6},
	}
	got, err := ScoreSets(details, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0
	for _, d := range details {
		xp, _ := ScoreExercise(d.Weight, 80, d.Reps, 1, false)
		want += xp
	}
	if got != want || got != 75+63+49 {
		t.Fatalf("per-set score = %d, want %d", got, want)
	}
}

func TestBeatsPR(t *testing.T) {
	cases := []struct {
		weight   float64
		reps     int
		prWeight float64
		prReps   int
		want     bool
	}{
		{105, 5, 100, 5, true},  // plus lourd
		{100, 6, 100, 5, true},  // même poids, plus de reps
		{100, 5, 100, 5, false}, // identique
		{100, 4, 100, 5, false}, // même poids, moins de reps
		{95, 20, 100, 1, false}, // le poids prime sur les reps
	}
	for _, c := range cases {
		if got := BeatsPR(c.weight, c.reps, c.prWeight, c.prReps); got != c.want {
			t.Fatalf("BeatsPR(%v, %d vs %v, %d) = %v, want %v",
				c.weight, c.reps, c.prWeight, c.prReps, got, c.want)
		}
	}
}
