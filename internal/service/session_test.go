package service

import (
	"context"
	"testing"
	"time"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func benchPerformance() []model.ExercisePerformance {
	return []model.ExercisePerformance{{
		ExerciseID:   "bench",
		ExerciseName: "Bench Press",
		Weight:       100,
		Reps:         8,
		Sets:         3,
	}}
}

func TestSessionRejectedOnDuplicateAttendance(t *testing.T) {
	stub := &txStub{
		rows: []pgx.Row{statsRow("alice", 3, 433, 80)},
		// La clé (user_id, workout_date) existe déjà: l'insert ne touche rien
		tags: []pgconn.CommandTag{pgconn.NewCommandTag("INSERT 0 0")},
	}

	_, err := settleSessionTx(context.Background(), stub, "alice", benchPerformance(), 0,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	if !apperr.IsKind(err, apperr.KindDuplicateAttendance) {
		t.Fatalf("second session on the same day should fail with duplicate_attendance, got %v", err)
	}

	// Verrou de stats puis tentative de présence, rien d'autre: les stats
	// ne sont jamais mutées
	if len(stub.sqls) != 2 {
		t.Fatalf("expected 2 statements before rejection, got %d: %v", len(stub.sqls), stub.sqls)
	}
}

func TestSessionRejectedWithoutBodyweight(t *testing.T) {
	stub := &txStub{
		rows: []pgx.Row{statsRow("alice", 3, 433, 0)},
	}

	_, err := settleSessionTx(context.Background(), stub, "alice", benchPerformance(), 0,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	if !apperr.IsKind(err, apperr.KindMissingBodyweight) {
		t.Fatalf("session without bodyweight should fail with missing_bodyweight, got %v", err)
	}
	if len(stub.sqls) != 1 {
		t.Fatalf("no write should run without bodyweight, got %d statements: %v", len(stub.sqls), stub.sqls)
	}
}

func TestSessionSettlesFirstWorkout(t *testing.T) {
	stub := &txStub{
		rows: []pgx.Row{
			statsRow("alice", 3, 433, 80),
			noRow(), // aucun record pour cet exercice: baseline
		},
	}

	result, err := settleSessionTx(context.Background(), stub, "alice", benchPerformance(), 0,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}

	// (100/80) x 10 x 8 x 3 = 300, premier jour donc multiplicateur 1.0
	if result.ExerciseXP != 300 || result.SessionXP != 300 {
		t.Fatalf("session XP = %d (exercise %d), want 300", result.SessionXP, result.ExerciseXP)
	}
	if result.PRsAchieved != 0 {
		t.Fatalf("a baseline is not a PR: %+v", result)
	}
	if result.NewStreak != 1 || result.StreakMultiplier != 1.0 {
		t.Fatalf("first workout should start streak at 1 with x1.0: %+v", result)
	}
	if result.NewLevel != 3 || result.LevelProgress.Current != 350 {
		t.Fatalf("433+300 XP should land at level 3, 350 in: %+v", result)
	}

	// Verrou, présence, lecture PR, baseline, stats, mensuel, audit
	if len(stub.sqls) != 7 {
		t.Fatalf("expected 7 statements, got %d: %v", len(stub.sqls), stub.sqls)
	}

	statsArgs := stub.args[4]
	if statsArgs[0] != 3 || statsArgs[1] != 733 {
		t.Fatalf("stats update args = %v, want level 3 / cumulative 733", statsArgs)
	}
}
