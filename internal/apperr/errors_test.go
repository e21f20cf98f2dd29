package apperr

import (
	"fmt"
	"net/http"
	"testing"
)

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("settle session: %w", InsufficientXP(50, 200))
	if !IsKind(err, KindInsufficientXP) {
		t.Fatalf("wrapped error should keep its kind")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("kind must not match a different kind")
	}
	if IsKind(fmt.Errorf("plain"), KindNotFound) {
		t.Fatalf("plain error has no kind")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("challenge", "abc"), http.StatusNotFound},
		{MissingBodyweight(), http.StatusUnprocessableEntity},
		{InsufficientXP(10, 20), http.StatusUnprocessableEntity},
		{DuplicateAttendance("u1", "2025-03-10"), http.StatusConflict},
		{InvalidStateTransition("challenge is not pending"), http.StatusConflict},
		{InvalidParticipant("not your challenge"), http.StatusForbidden},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
