package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
	"github.com/MassBabyGeek/LiftOff-backend/internal/database"
	"github.com/MassBabyGeek/LiftOff-backend/internal/logger"
	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/MassBabyGeek/LiftOff-backend/internal/scanner"
	"github.com/MassBabyGeek/LiftOff-backend/internal/xp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// SettleSession règle une séance complète en une transaction:
// garde anti-double-présence, détection de PR et scoring par exercice,
// multiplicateur de série sur l'agrégat, mise à jour des stats et entrée
// d'audit. Échec = aucune mutation.
//
// streakMultiplier ≤ 0 signifie "calcule-le depuis la série courante";
// une valeur positive (pré-calculée par l'appelant) est appliquée telle
// quelle. Politique: le multiplicateur s'applique à l'agrégat complet de
// la séance, bonus de PR compris.
func SettleSession(ctx context.Context, userID string, exercises []model.ExercisePerformance, streakMultiplier float64, sessionDate time.Time) (*model.SessionResult, error) {
	var result *model.SessionResult

	err := database.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		result, err = settleSessionTx(ctx, tx, userID, exercises, streakMultiplier, sessionDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Success("session %s settled for user %s: %d XP (x%.1f), %d PR(s), level %d",
		result.SessionID, userID, result.SessionXP, result.StreakMultiplier, result.PRsAchieved, result.NewLevel)

	return result, nil
}

// settleSessionTx est le corps transactionnel du règlement: tout ou rien
// dans la transaction fournie
func settleSessionTx(ctx context.Context, tx pgx.Tx, userID string, exercises []model.ExercisePerformance, streakMultiplier float64, sessionDate time.Time) (*model.SessionResult, error) {
	dateStr := sessionDate.Format("2006-01-02")

	stats, err := lockUserStats(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	// Précondition de séance: sans poids de corps, rien n'est scoré
	if stats.Bodyweight == nil || *stats.Bodyweight <= 0 {
		return nil, apperr.MissingBodyweight()
	}
	bodyweight := *stats.Bodyweight

	// Garde de ré-entrance: une seule présence par jour calendaire.
	// Le check-then-insert est atomique via la clé (user_id, workout_date).
	tag, err := tx.Exec(ctx,
		`INSERT INTO attendance(user_id, workout_date) VALUES($1, $2)
		 ON CONFLICT (user_id, workout_date) DO NOTHING`,
		userID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("could not record attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.DuplicateAttendance(userID, dateStr)
	}

	streak := xp.ComputeStreak(stats.LastWorkoutDate, sessionDate, stats.CurrentStreak)
	multiplier := streakMultiplier
	if multiplier <= 0 {
		multiplier = streak.Multiplier
	}

	// Une seule passe par exercice: la baseline posée ici ne doit pas
	// être relue comme point de comparaison dans la même séance
	totalExerciseXP := 0
	prsAchieved := 0
	logs := make([]model.ExerciseLog, 0, len(exercises))
	names := make([]string, 0, len(exercises))

	for _, perf := range exercises {
		check, err := evaluatePR(ctx, tx, userID, perf.ExerciseID, perf.Weight, perf.Reps)
		if err != nil {
			return nil, err
		}

		var exerciseXP int
		switch {
		case check.IsPR:
			exerciseXP, err = xp.ScoreExercise(perf.Weight, bodyweight, perf.Reps, perf.Sets, true)
			if err != nil {
				return nil, err
			}
			if err := promotePR(ctx, tx, userID, perf.ExerciseID, perf.Weight, perf.Reps, perf.Sets, sessionDate, exerciseXP); err != nil {
				return nil, err
			}
			prsAchieved++

		default:
			if check.IsBaseline {
				if err := insertBaseline(ctx, tx, userID, perf.ExerciseID, perf.Weight, perf.Reps, perf.Sets, sessionDate); err != nil {
					return nil, err
				}
			}
			if len(perf.SetDetails) > 0 {
				exerciseXP, err = xp.ScoreSets(perf.SetDetails, bodyweight)
			} else {
				exerciseXP, err = xp.ScoreExercise(perf.Weight, bodyweight, perf.Reps, perf.Sets, false)
			}
			if err != nil {
				return nil, err
			}
		}

		totalExerciseXP += exerciseXP
		logs = append(logs, model.ExerciseLog{
			ExerciseID:   perf.ExerciseID,
			ExerciseName: perf.ExerciseName,
			Weight:       perf.Weight,
			Reps:         perf.Reps,
			Sets:         perf.Sets,
			XP:           exerciseXP,
			IsPR:         check.IsPR,
			IsBaseline:   check.IsBaseline,
		})
		names = append(names, perf.ExerciseName)
	}

	sessionXP := int(math.Round(float64(totalExerciseXP) * multiplier))

	newCumulative := stats.CumulativeXP + sessionXP
	newLevel, within := xp.LevelFromCumulative(newCumulative)

	newStreak := streak.NewStreak
	longestStreak := stats.LongestStreak
	if newStreak > longestStreak {
		longestStreak = newStreak
	}

	month := sessionDate.Format("2006-01")

	_, err = tx.Exec(ctx,
		`UPDATE user_stats SET
			level = $1, level_xp = $2,
			current_month_xp = current_month_xp + $3, current_month = $4,
			current_streak = $5, longest_streak = $6,
			total_workouts = total_workouts + 1, total_prs = total_prs + $7,
			last_workout_date = $8, updated_at = NOW()
		 WHERE user_id = $9`,
		newLevel, newCumulative, sessionXP, month,
		newStreak, longestStreak, prsAchieved, dateStr, userID)
	if err != nil {
		return nil, fmt.Errorf("could not update user stats: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO monthly_xp(user_id, month, total_xp) VALUES($1, $2, $3)
		 ON CONFLICT (user_id, month) DO UPDATE SET total_xp = monthly_xp.total_xp + EXCLUDED.total_xp`,
		userID, month, sessionXP)
	if err != nil {
		return nil, fmt.Errorf("could not update monthly XP: %w", err)
	}

	// Entrée d'audit immuable
	sessionID := uuid.NewString()
	exercisesJSON, err := json.Marshal(logs)
	if err != nil {
		return nil, fmt.Errorf("could not encode exercise logs: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_sessions(id, user_id, session_date, total_xp, exercises_completed, exercise_names, prs_achieved, streak_multiplier)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		sessionID, userID, dateStr, sessionXP, exercisesJSON, pq.Array(names), prsAchieved, multiplier)
	if err != nil {
		return nil, fmt.Errorf("could not save workout session: %w", err)
	}

	return &model.SessionResult{
		SessionID:        sessionID,
		SessionXP:        sessionXP,
		ExerciseXP:       totalExerciseXP,
		PRsAchieved:      prsAchieved,
		StreakMultiplier: multiplier,
		NewStreak:        newStreak,
		NewLevel:         newLevel,
		LevelProgress: model.LevelProgress{
			Level:   newLevel,
			Current: within,
			Needed:  xp.ForLevel(newLevel),
		},
	}, nil
}

// ListWorkoutSessions retourne l'historique des séances d'un utilisateur,
// la plus récente en premier
func ListWorkoutSessions(ctx context.Context, userID string, limit int) ([]model.WorkoutSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := database.DB.Query(ctx,
		`SELECT id, user_id, session_date, total_xp, exercises_completed, exercise_names, prs_achieved, streak_multiplier, created_at
		 FROM workout_sessions
		 WHERE user_id = $1
		 ORDER BY session_date DESC, created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query workout sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.WorkoutSession
	for rows.Next() {
		session, err := scanner.ScanWorkoutSession(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan session row: %w", err)
		}
		sessions = append(sessions, *session)
	}

	return sessions, rows.Err()
}
