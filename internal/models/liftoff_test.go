package model

import (
	"testing"
	"time"
)

func TestIsTerminal(t *testing.T) {
	cases := map[string]bool{
		LiftOffPending:   false,
		LiftOffAccepted:  false,
		LiftOffCompleted: true,
		LiftOffDeclined:  true,
		LiftOffExpired:   true,
	}
	for status, want := range cases {
		c := LiftOffChallenge{Status: status}
		if c.IsTerminal() != want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", status, c.IsTerminal(), want)
		}
	}
}

func TestShouldExpire(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	open := LiftOffChallenge{Status: LiftOffPending, ExpiresAt: now.Add(-time.Hour)}
	if !open.ShouldExpire(now) {
		t.Fatalf("pending challenge past expires_at should expire")
	}

	accepted := LiftOffChallenge{Status: LiftOffAccepted, ExpiresAt: now.Add(-time.Hour)}
	if !accepted.ShouldExpire(now) {
		t.Fatalf("accepted challenge past expires_at should expire")
	}

	fresh := LiftOffChallenge{Status: LiftOffPending, ExpiresAt: now.Add(time.Hour)}
	if fresh.ShouldExpire(now) {
		t.Fatalf("challenge before expires_at must not expire")
	}

	// Un état terminal ne re-expire jamais, même après l'échéance
	done := LiftOffChallenge{Status: LiftOffCompleted, ExpiresAt: now.Add(-time.Hour)}
	if done.ShouldExpire(now) {
		t.Fatalf("terminal challenge must never flip to expired")
	}
}

func TestParticipants(t *testing.T) {
	c := LiftOffChallenge{ChallengerID: "alice", ChallengedID: "bob"}
	if !c.IsParticipant("alice") || !c.IsParticipant("bob") || c.IsParticipant("carol") {
		t.Fatalf("participant check failed")
	}
	if c.Opponent("alice") != "bob" || c.Opponent("bob") != "alice" {
		t.Fatalf("opponent lookup failed")
	}
}
