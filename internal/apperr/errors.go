package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifie la catégorie d'une erreur métier.
// Toutes les erreurs retournées par les services appartiennent à cette énumération fermée.
type Kind string

const (
	KindMissingBodyweight      Kind = "missing_bodyweight"
	KindDuplicateAttendance    Kind = "duplicate_attendance"
	KindInsufficientXP         Kind = "insufficient_xp"
	KindInvalidParticipant     Kind = "invalid_participant"
	KindInvalidStateTransition Kind = "invalid_state_transition"
	KindNotFound               Kind = "not_found"
)

// Error est une erreur métier structurée (pas de sac de strings libre)
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// MissingBodyweight : scoring tenté sans poids de corps configuré
func MissingBodyweight() *Error {
	return New(KindMissingBodyweight, "bodyweight is not set, update your profile before logging a workout")
}

// DuplicateAttendance : une séance existe déjà pour ce jour calendaire
func DuplicateAttendance(userID, date string) *Error {
	return New(KindDuplicateAttendance, "workout already logged for user %s on %s", userID, date)
}

// InsufficientXP : solde d'XP insuffisant pour la mise demandée
func InsufficientXP(have, need int) *Error {
	return New(KindInsufficientXP, "insufficient XP: have %d, need %d", have, need)
}

func InvalidParticipant(format string, args ...interface{}) *Error {
	return New(KindInvalidParticipant, format, args...)
}

func InvalidStateTransition(format string, args ...interface{}) *Error {
	return New(KindInvalidStateTransition, format, args...)
}

func NotFound(entity, id string) *Error {
	return New(KindNotFound, "%s %s not found", entity, id)
}

// IsKind teste la catégorie d'une erreur, même enveloppée avec %w
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus mappe une catégorie d'erreur vers un code HTTP
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindMissingBodyweight, KindInsufficientXP:
		return http.StatusUnprocessableEntity
	case KindDuplicateAttendance, KindInvalidStateTransition:
		return http.StatusConflict
	case KindInvalidParticipant:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
