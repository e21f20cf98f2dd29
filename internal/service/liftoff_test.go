package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// txStub rejoue des réponses préparées pour exercer les corps
// transactionnels sans base. Les méthodes non surchargées de pgx.Tx
// ne sont jamais atteintes par ces chemins.
type txStub struct {
	pgx.Tx
	rows []pgx.Row
	tags []pgconn.CommandTag

	sqls []string
	args [][]interface{}
}

func (s *txStub) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	s.sqls = append(s.sqls, sql)
	s.args = append(s.args, arguments)
	if len(s.tags) == 0 {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	tag := s.tags[0]
	s.tags = s.tags[1:]
	return tag, nil
}

func (s *txStub) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	s.sqls = append(s.sqls, sql)
	s.args = append(s.args, args)
	row := s.rows[0]
	s.rows = s.rows[1:]
	return row
}

type rowFunc func(dest ...interface{}) error

func (f rowFunc) Scan(dest ...interface{}) error { return f(dest...) }

// statsRow produit une ligne user_stats déjà au format cumulé cohérent
// (aucune migration déclenchée au scan)
func statsRow(userID string, level, cumulativeXP int, bodyweight float64) pgx.Row {
	return rowFunc(func(dest ...interface{}) error {
		*dest[0].(*string) = userID
		*dest[1].(*int) = level
		*dest[2].(*int) = cumulativeXP
		*dest[3].(*int) = 0
		*dest[4].(*sql.NullString) = sql.NullString{}
		*dest[5].(*int) = 0
		*dest[6].(*int) = 0
		*dest[7].(*int) = 0
		*dest[8].(*int) = 0
		*dest[9].(*int) = 0
		*dest[10].(*sql.NullTime) = sql.NullTime{}
		*dest[11].(*sql.NullFloat64) = sql.NullFloat64{Float64: bodyweight, Valid: bodyweight > 0}
		*dest[12].(*time.Time) = time.Unix(0, 0)
		return nil
	})
}

func noRow() pgx.Row {
	return rowFunc(func(dest ...interface{}) error { return pgx.ErrNoRows })
}

func weightOf(w float64) *float64 { return &w }

func TestSettleLiftOffOnlyOnce(t *testing.T) {
	ch := &model.LiftOffChallenge{
		ID:               "c1",
		ChallengerID:     "alice",
		ChallengedID:     "bob",
		WagerXP:          200,
		Status:           model.LiftOffAccepted,
		ChallengerWeight: weightOf(120),
		ChallengedWeight: weightOf(110),
	}

	// Le flip accepted -> completed ne touche aucune ligne: un règlement
	// concurrent est déjà passé
	stub := &txStub{tags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 0")}}

	err := settleLiftOff(context.Background(), stub, ch)
	if !apperr.IsKind(err, apperr.KindInvalidStateTransition) {
		t.Fatalf("second settlement should fail with invalid_state_transition, got %v", err)
	}
	if len(stub.sqls) != 1 {
		t.Fatalf("no stats read or write after a lost CAS, got %d statements: %v", len(stub.sqls), stub.sqls)
	}
}

func TestSettleLiftOffTransfersWager(t *testing.T) {
	ch := &model.LiftOffChallenge{
		ID:               "c1",
		ChallengerID:     "alice",
		ChallengedID:     "bob",
		WagerXP:          200,
		Status:           model.LiftOffAccepted,
		ChallengerWeight: weightOf(120),
		ChallengedWeight: weightOf(110),
	}

	stub := &txStub{
		rows: []pgx.Row{
			statsRow("alice", 3, 500, 80),
			statsRow("bob", 3, 400, 80),
		},
	}

	if err := settleLiftOff(context.Background(), stub, ch); err != nil {
		t.Fatalf("settlement failed: %v", err)
	}

	if ch.Status != model.LiftOffCompleted || ch.WinnerID == nil || *ch.WinnerID != "alice" {
		t.Fatalf("heavier lift should win: status=%s winner=%v", ch.Status, ch.WinnerID)
	}

	// CAS, deux verrous de stats, crédit, débit
	if len(stub.sqls) != 5 {
		t.Fatalf("expected 5 statements, got %d: %v", len(stub.sqls), stub.sqls)
	}

	winnerArgs := stub.args[3]
	if winnerArgs[1] != 700 || winnerArgs[3] != "alice" {
		t.Fatalf("winner credit args = %v, want cumulative 700 for alice", winnerArgs)
	}

	loserArgs := stub.args[4]
	if loserArgs[1] != 200 || loserArgs[3] != "bob" {
		t.Fatalf("loser debit args = %v, want cumulative 200 for bob", loserArgs)
	}
	// 200 XP cumulés = retour au niveau 2
	if loserArgs[0] != 2 {
		t.Fatalf("loser level = %v, want 2", loserArgs[0])
	}
}

func TestCreateLiftOffRejectsSelfChallenge(t *testing.T) {
	stub := &txStub{}
	_, err := createLiftOffTx(context.Background(), stub, "alice", "alice", "bench", 100)
	if !apperr.IsKind(err, apperr.KindInvalidParticipant) {
		t.Fatalf("self-challenge should fail with invalid_participant, got %v", err)
	}
	if len(stub.sqls) != 0 {
		t.Fatalf("self-challenge should be rejected before any query: %v", stub.sqls)
	}
}

func TestCreateLiftOffRejectsUnknownChallenged(t *testing.T) {
	stub := &txStub{
		rows: []pgx.Row{
			statsRow("alice", 3, 500, 80),
			noRow(),
		},
	}

	_, err := createLiftOffTx(context.Background(), stub, "alice", "bob", "bench", 200)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("unknown challenged user should fail with not_found, got %v", err)
	}
	for _, q := range stub.sqls {
		if strings.Contains(q, "INSERT") {
			t.Fatalf("no insert should run for an unknown challenged user: %v", stub.sqls)
		}
	}
}

func TestCreateLiftOffRejectsInsufficientBalance(t *testing.T) {
	stub := &txStub{
		rows: []pgx.Row{
			statsRow("alice", 2, 100, 80),
			statsRow("bob", 3, 500, 80),
		},
	}

	_, err := createLiftOffTx(context.Background(), stub, "alice", "bob", "bench", 200)
	if !apperr.IsKind(err, apperr.KindInsufficientXP) {
		t.Fatalf("wager above balance should fail with insufficient_xp, got %v", err)
	}
}
