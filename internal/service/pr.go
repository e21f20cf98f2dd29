package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MassBabyGeek/LiftOff-backend/internal/database"
	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/MassBabyGeek/LiftOff-backend/internal/scanner"
	"github.com/MassBabyGeek/LiftOff-backend/internal/xp"
	"github.com/jackc/pgx/v5"
)

const recordColumns = `
	id, user_id, exercise_id, weight, reps, sets,
	pr_date, is_current_pr, points_earned, created_at`

// DetectPR compare une performance au record courant, sans rien écrire.
// Premier log d'un exercice → baseline (jamais un PR). Comparaison:
// poids d'abord, reps en départage.
func DetectPR(ctx context.Context, userID, exerciseID string, weight float64, reps int) (model.PRCheck, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM personal_records
		 WHERE user_id = $1 AND exercise_id = $2 AND is_current_pr = true`,
		userID, exerciseID)

	current, err := scanner.ScanPersonalRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PRCheck{IsBaseline: true}, nil
		}
		return model.PRCheck{}, fmt.Errorf("could not query current PR: %w", err)
	}

	if xp.BeatsPR(weight, reps, current.Weight, current.Reps) {
		return model.PRCheck{IsPR: true, PreviousPR: current}, nil
	}

	return model.PRCheck{PreviousPR: current}, nil
}

// evaluatePR est la variante transactionnelle: verrouille le record courant
// (FOR UPDATE) pour que le règlement de séance soit le seul à le faire évoluer.
// Invoquée exactement une fois par (exercice, séance).
func evaluatePR(ctx context.Context, tx pgx.Tx, userID, exerciseID string, weight float64, reps int) (model.PRCheck, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM personal_records
		 WHERE user_id = $1 AND exercise_id = $2 AND is_current_pr = true
		 FOR UPDATE`,
		userID, exerciseID)

	current, err := scanner.ScanPersonalRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PRCheck{IsBaseline: true}, nil
		}
		return model.PRCheck{}, fmt.Errorf("could not lock current PR: %w", err)
	}

	if xp.BeatsPR(weight, reps, current.Weight, current.Reps) {
		return model.PRCheck{IsPR: true, PreviousPR: current}, nil
	}

	return model.PRCheck{PreviousPR: current}, nil
}

// insertBaseline crée le record initial d'un exercice: il porte le flag
// courant pour servir de point de comparaison mais ne rapporte aucun bonus
func insertBaseline(ctx context.Context, tx pgx.Tx, userID, exerciseID string, weight float64, reps, sets int, date time.Time) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO personal_records(user_id, exercise_id, weight, reps, sets, pr_date, is_current_pr, points_earned)
		 VALUES($1, $2, $3, $4, $5, $6, true, 0)`,
		userID, exerciseID, weight, reps, sets, date.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("could not insert baseline record: %w", err)
	}
	return nil
}

// promotePR retire le flag du record courant et insère le nouveau.
// L'ancien record n'est jamais supprimé (historique en append-only).
func promotePR(ctx context.Context, tx pgx.Tx, userID, exerciseID string, weight float64, reps, sets int, date time.Time, points int) error {
	_, err := tx.Exec(ctx,
		`UPDATE personal_records SET is_current_pr = false
		 WHERE user_id = $1 AND exercise_id = $2 AND is_current_pr = true`,
		userID, exerciseID)
	if err != nil {
		return fmt.Errorf("could not clear previous PR flag: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO personal_records(user_id, exercise_id, weight, reps, sets, pr_date, is_current_pr, points_earned)
		 VALUES($1, $2, $3, $4, $5, $6, true, $7)`,
		userID, exerciseID, weight, reps, sets, date.Format("2006-01-02"), points)
	if err != nil {
		return fmt.Errorf("could not insert new PR: %w", err)
	}

	return nil
}

// ListPersonalRecords retourne l'historique des records d'un utilisateur,
// record courant en tête de chaque exercice
func ListPersonalRecords(ctx context.Context, userID string) ([]model.PersonalRecord, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+recordColumns+` FROM personal_records
		 WHERE user_id = $1
		 ORDER BY exercise_id ASC, is_current_pr DESC, pr_date DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("could not query personal records: %w", err)
	}
	defer rows.Close()

	var records []model.PersonalRecord
	for rows.Next() {
		record, err := scanner.ScanPersonalRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan record row: %w", err)
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}
