package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
	"github.com/MassBabyGeek/LiftOff-backend/internal/database"
	"github.com/MassBabyGeek/LiftOff-backend/internal/logger"
	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/MassBabyGeek/LiftOff-backend/internal/scanner"
	"github.com/MassBabyGeek/LiftOff-backend/internal/xp"
	"github.com/jackc/pgx/v5"
)

const statsColumns = `
	user_id, level, level_xp, current_month_xp, current_month,
	current_streak, longest_streak, total_workouts, total_prs, challenges_won,
	last_workout_date, bodyweight, updated_at`

// GetUserStats lit la ligne user_stats d'un utilisateur et normalise l'XP.
// La colonne level_xp peut encore contenir l'ancien format (XP du niveau
// courant seulement): la détection est appliquée ici, une seule fois, et la
// valeur cumulée est re-persistée immédiatement pour que l'heuristique
// devienne inutile sur cette ligne.
func GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID)

	stats, err := scanner.ScanUserStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user stats", userID)
		}
		return nil, fmt.Errorf("could not query user stats: %w", err)
	}

	if normalizeStats(stats) {
		_, err = database.DB.Exec(ctx,
			`UPDATE user_stats SET level = $1, level_xp = $2, updated_at = NOW() WHERE user_id = $3`,
			stats.Level, stats.CumulativeXP, userID)
		if err != nil {
			return nil, fmt.Errorf("could not persist migrated stats: %w", err)
		}
		logger.Info("migrated legacy XP format for user %s (level %d, cumulative %d)",
			userID, stats.Level, stats.CumulativeXP)
	}

	return stats, nil
}

// lockUserStats lit et verrouille la ligne user_stats dans une transaction
// (SELECT ... FOR UPDATE), normalisation comprise. La valeur migrée est
// persistée dans la même transaction.
func lockUserStats(ctx context.Context, tx pgx.Tx, userID string) (*model.UserStats, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1 FOR UPDATE`, userID)

	stats, err := scanner.ScanUserStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user stats", userID)
		}
		return nil, fmt.Errorf("could not lock user stats: %w", err)
	}

	if normalizeStats(stats) {
		_, err = tx.Exec(ctx,
			`UPDATE user_stats SET level = $1, level_xp = $2, updated_at = NOW() WHERE user_id = $3`,
			stats.Level, stats.CumulativeXP, userID)
		if err != nil {
			return nil, fmt.Errorf("could not persist migrated stats: %w", err)
		}
	}

	return stats, nil
}

// normalizeStats applique le ledger sur la ligne brute: cumul normalisé,
// niveau redérivé, progression dans le niveau. Retourne true si la ligne
// stockée doit être réécrite.
func normalizeStats(stats *model.UserStats) bool {
	cumulative, migrated := xp.NormalizeCumulative(stats.CumulativeXP, stats.Level)
	level, within := xp.LevelFromCumulative(cumulative)

	changed := migrated || level != stats.Level

	stats.CumulativeXP = cumulative
	stats.Level = level
	stats.XPWithinLevel = within
	stats.XPForNextLevel = xp.ForLevel(level)

	return changed
}

// MonthlyXPHistory retourne l'historique mensuel d'XP, trié par total
// (high = décroissant, low = croissant)
func MonthlyXPHistory(ctx context.Context, userID, sortOrder string) ([]model.MonthlyXP, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT user_id, month, total_xp FROM monthly_xp WHERE user_id = $1 ORDER BY month DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("could not query monthly XP: %w", err)
	}
	defer rows.Close()

	var history []model.MonthlyXP
	for rows.Next() {
		entry, err := scanner.ScanMonthlyXP(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan monthly XP row: %w", err)
		}
		history = append(history, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if sortOrder == "low" {
		sort.Slice(history, func(i, j int) bool { return history[i].TotalXP < history[j].TotalXP })
	} else {
		sort.Slice(history, func(i, j int) bool { return history[i].TotalXP > history[j].TotalXP })
	}

	return history, nil
}

// ListExercises retourne le catalogue d'exercices
func ListExercises(ctx context.Context) ([]model.Exercise, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT id, name, category, unit FROM exercises ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []model.Exercise
	for rows.Next() {
		exercise, err := scanner.ScanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan exercise row: %w", err)
		}
		exercises = append(exercises, *exercise)
	}

	return exercises, rows.Err()
}
