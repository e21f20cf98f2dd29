package xp

import "testing"

func TestPickWinnerStrictlyHeavier(t *testing.T) {
	if got := PickWinner("alice", "bob", 100, 90); got != "alice" {
		t.Fatalf("challenger lifted heavier, want alice, got %s", got)
	}
	if got := PickWinner("alice", "bob", 80, 90); got != "bob" {
		t.Fatalf("challenged lifted heavier, want bob, got %s", got)
	}
}

func TestPickWinnerTieGoesToChallenged(t *testing.T) {
	// Règle explicite: à égalité, le défenseur gagne
	if got := PickWinner("alice", "bob", 100, 100); got != "bob" {
		t.Fatalf("tie should go to challenged, got %s", got)
	}
}

func TestTransferConservation(t *testing.T) {
	// Le vainqueur gagne exactement la mise
	winner, loser := Transfer(500, 300, 200)
	if winner != 700 || loser != 100 {
		t.Fatalf("Transfer(500, 300, 200) = (%d, %d), want (700, 100)", winner, loser)
	}
}

func TestTransferFloorsLoserAtZero(t *testing.T) {
	// Perdant à 50 XP, mise de 80 → 0, jamais -30
	winner, loser := Transfer(500, 50, 80)
	if winner != 580 || loser != 0 {
		t.Fatalf("Transfer(500, 50, 80) = (%d, %d), want (580, 0)", winner, loser)
	}
}

func TestDebitFloor(t *testing.T) {
	if got := DebitFloor(100, 40); got != 60 {
		t.Fatalf("DebitFloor(100, 40) = %d, want 60", got)
	}
	if got := DebitFloor(30, 40); got != 0 {
		t.Fatalf("DebitFloor(30, 40) = %d, want 0", got)
	}
	if got := DebitFloor(40, 40); got != 0 {
		t.Fatalf("DebitFloor(40, 40) = %d, want 0", got)
	}
}
