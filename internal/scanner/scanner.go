package scanner

import (
	"database/sql"
	"encoding/json"

	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
	"github.com/lib/pq"
)

// ScanUserStats scanne une ligne user_stats vers un UserStats.
// Le champ level_xp brut sort tel quel dans CumulativeXP: la normalisation
// ancien/nouveau format est faite par le service, pas ici.
func ScanUserStats(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserStats, error) {
	var stats model.UserStats
	var currentMonth sql.NullString
	var lastWorkoutDate sql.NullTime
	var bodyweight sql.NullFloat64

	err := scanner.Scan(
		&stats.UserID, &stats.Level, &stats.CumulativeXP,
		&stats.CurrentMonthXP, &currentMonth,
		&stats.CurrentStreak, &stats.LongestStreak,
		&stats.TotalWorkouts, &stats.TotalPRs, &stats.ChallengesWon,
		&lastWorkoutDate, &bodyweight, &stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	stats.CurrentMonth = utils.NullStringToString(currentMonth)
	stats.LastWorkoutDate = utils.NullTimeToPointer(lastWorkoutDate)
	stats.Bodyweight = utils.NullFloatToPointer(bodyweight)

	return &stats, nil
}

// ScanPersonalRecord scanne une ligne personal_records
func ScanPersonalRecord(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.PersonalRecord, error) {
	var record model.PersonalRecord
	var sets sql.NullInt64

	err := scanner.Scan(
		&record.ID, &record.UserID, &record.ExerciseID,
		&record.Weight, &record.Reps, &sets,
		&record.PRDate, &record.IsCurrentPR, &record.PointsEarned,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Sets = utils.NullIntToPointer(sets)

	return &record, nil
}

// ScanLiftOffChallenge scanne une ligne lift_off_challenges
func ScanLiftOffChallenge(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.LiftOffChallenge, error) {
	var c model.LiftOffChallenge
	var challengerWeight, challengedWeight sql.NullFloat64
	var challengerCompletedAt, challengedCompletedAt, acceptedAt sql.NullTime
	var winnerID sql.NullString

	err := scanner.Scan(
		&c.ID, &c.ChallengerID, &c.ChallengedID, &c.ExerciseID,
		&c.WagerXP, &c.Status,
		&challengerWeight, &challengedWeight,
		&challengerCompletedAt, &challengedCompletedAt,
		&winnerID, &c.CreatedAt, &acceptedAt, &c.ExpiresAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	c.ChallengerWeight = utils.NullFloatToPointer(challengerWeight)
	c.ChallengedWeight = utils.NullFloatToPointer(challengedWeight)
	c.ChallengerCompletedAt = utils.NullTimeToPointer(challengerCompletedAt)
	c.ChallengedCompletedAt = utils.NullTimeToPointer(challengedCompletedAt)
	c.AcceptedAt = utils.NullTimeToPointer(acceptedAt)
	c.WinnerID = utils.NullStringToPointer(winnerID)

	return &c, nil
}

// ScanWorkoutSession scanne une ligne workout_sessions avec le détail
// par exercice (jsonb) et les noms d'exercices (text[], via pq.Array)
func ScanWorkoutSession(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.WorkoutSession, error) {
	var session model.WorkoutSession
	var exercisesJSON []byte

	err := scanner.Scan(
		&session.ID, &session.UserID, &session.SessionDate,
		&session.TotalXP, &exercisesJSON, pq.Array(&session.ExerciseNames),
		&session.PRsAchieved, &session.StreakMultiplier, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if exercisesJSON != nil {
		if err := json.Unmarshal(exercisesJSON, &session.Exercises); err != nil {
			return nil, err
		}
	}

	return &session, nil
}

// ScanMonthlyXP scanne une ligne monthly_xp
func ScanMonthlyXP(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.MonthlyXP, error) {
	var entry model.MonthlyXP
	if err := scanner.Scan(&entry.UserID, &entry.Month, &entry.TotalXP); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ScanExercise scanne une ligne exercises
func ScanExercise(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := scanner.Scan(&exercise.ID, &exercise.Name, &exercise.Category, &exercise.Unit); err != nil {
		return nil, err
	}
	return &exercise, nil
}
