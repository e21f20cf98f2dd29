package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
	"github.com/MassBabyGeek/LiftOff-backend/internal/database"
	"github.com/MassBabyGeek/LiftOff-backend/internal/logger"
	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/MassBabyGeek/LiftOff-backend/internal/scanner"
	"github.com/MassBabyGeek/LiftOff-backend/internal/xp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const liftOffColumns = `
	id, challenger_id, challenged_id, exercise_id, wager_xp, status,
	challenger_weight, challenged_weight,
	challenger_completed_at, challenged_completed_at,
	winner_id, created_at, accepted_at, expires_at, updated_at`

// CreateLiftOff crée un défi en pending, expirant 7 jours plus tard.
// Le challenger doit disposer d'au moins la mise en XP cumulé, et le
// défié doit exister.
func CreateLiftOff(ctx context.Context, challengerID, challengedID, exerciseID string, wagerXP int) (*model.LiftOffChallenge, error) {
	var challenge *model.LiftOffChallenge

	err := database.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		challenge, err = createLiftOffTx(ctx, tx, challengerID, challengedID, exerciseID, wagerXP)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("lift-off %s created: %s vs %s, %d XP at stake",
		challenge.ID, challengerID, challengedID, wagerXP)

	return challenge, nil
}

func createLiftOffTx(ctx context.Context, tx pgx.Tx, challengerID, challengedID, exerciseID string, wagerXP int) (*model.LiftOffChallenge, error) {
	if challengerID == challengedID {
		return nil, apperr.InvalidParticipant("you cannot challenge yourself")
	}

	// Les deux lignes de stats sont verrouillées dans le même ordre
	// déterministe qu'au règlement. Lire celle du défié garantit au
	// passage que le défi ne pointe jamais vers un utilisateur fantôme.
	ids := []string{challengerID, challengedID}
	sort.Strings(ids)
	locked := make(map[string]*model.UserStats, 2)
	for _, id := range ids {
		stats, err := lockUserStats(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = stats
	}

	if have := locked[challengerID].AvailableXP(); have < wagerXP {
		return nil, apperr.InsufficientXP(have, wagerXP)
	}

	id := uuid.NewString()
	expiresAt := time.Now().Add(model.LiftOffDuration)

	row := tx.QueryRow(ctx,
		`INSERT INTO lift_off_challenges(id, challenger_id, challenged_id, exercise_id, wager_xp, status, expires_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+liftOffColumns,
		id, challengerID, challengedID, exerciseID, wagerXP, model.LiftOffPending, expiresAt)

	challenge, err := scanner.ScanLiftOffChallenge(row)
	if err != nil {
		return nil, fmt.Errorf("could not create lift-off: %w", err)
	}

	return challenge, nil
}

// AcceptLiftOff accepte un défi pending. Seul le défié peut accepter, et son
// solde est revérifié au moment de l'acceptation (il a pu changer depuis la
// création).
func AcceptLiftOff(ctx context.Context, challengeID, userID string) (*model.LiftOffChallenge, error) {
	var accepted *model.LiftOffChallenge

	err := database.WithTx(ctx, func(tx pgx.Tx) error {
		challenge, err := lockLiftOff(ctx, tx, challengeID)
		if err != nil {
			return err
		}

		if challenge.ChallengedID != userID {
			return apperr.InvalidParticipant("only the challenged user can accept this lift-off")
		}
		if challenge.Status != model.LiftOffPending {
			return apperr.InvalidStateTransition("lift-off is %s, only a pending lift-off can be accepted", challenge.Status)
		}

		stats, err := lockUserStats(ctx, tx, userID)
		if err != nil {
			return err
		}
		if stats.AvailableXP() < challenge.WagerXP {
			return apperr.InsufficientXP(stats.AvailableXP(), challenge.WagerXP)
		}

		row := tx.QueryRow(ctx,
			`UPDATE lift_off_challenges SET status = $1, accepted_at = NOW(), updated_at = NOW()
			 WHERE id = $2
			 RETURNING `+liftOffColumns,
			model.LiftOffAccepted, challengeID)

		accepted, err = scanner.ScanLiftOffChallenge(row)
		if err != nil {
			return fmt.Errorf("could not accept lift-off: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return accepted, nil
}

// DeclineLiftOff refuse un défi pending. Seul le défié peut refuser.
func DeclineLiftOff(ctx context.Context, challengeID, userID string) (*model.LiftOffChallenge, error) {
	var declined *model.LiftOffChallenge

	err := database.WithTx(ctx, func(tx pgx.Tx) error {
		challenge, err := lockLiftOff(ctx, tx, challengeID)
		if err != nil {
			return err
		}

		if challenge.ChallengedID != userID {
			return apperr.InvalidParticipant("only the challenged user can decline this lift-off")
		}
		if challenge.Status != model.LiftOffPending {
			return apperr.InvalidStateTransition("lift-off is %s, only a pending lift-off can be declined", challenge.Status)
		}

		row := tx.QueryRow(ctx,
			`UPDATE lift_off_challenges SET status = $1, updated_at = NOW()
			 WHERE id = $2
			 RETURNING `+liftOffColumns,
			model.LiftOffDeclined, challengeID)

		declined, err = scanner.ScanLiftOffChallenge(row)
		if err != nil {
			return fmt.Errorf("could not decline lift-off: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return declined, nil
}

// SubmitLiftOffWeight enregistre la charge d'un participant dans son slot.
// Si les deux slots sont remplis après cette écriture, le règlement est
// déclenché dans la même transaction: la ligne du défi est verrouillée du
// début à la fin, donc deux soumissions concurrentes se sérialisent et le
// règlement ne court jamais deux fois.
func SubmitLiftOffWeight(ctx context.Context, challengeID, userID string, weight float64) (*model.LiftOffChallenge, error) {
	var updated *model.LiftOffChallenge

	err := database.WithTx(ctx, func(tx pgx.Tx) error {
		challenge, err := lockLiftOff(ctx, tx, challengeID)
		if err != nil {
			return err
		}

		if !challenge.IsParticipant(userID) {
			return apperr.InvalidParticipant("you are not part of this lift-off")
		}
		if challenge.Status != model.LiftOffAccepted {
			return apperr.InvalidStateTransition("lift-off is %s, weights can only be submitted on an accepted lift-off", challenge.Status)
		}

		// Un participant ne soumet qu'une fois
		isChallenger := challenge.ChallengerID == userID
		if isChallenger && challenge.ChallengerWeight != nil {
			return apperr.InvalidStateTransition("you already submitted your lift for this lift-off")
		}
		if !isChallenger && challenge.ChallengedWeight != nil {
			return apperr.InvalidStateTransition("you already submitted your lift for this lift-off")
		}

		column := "challenged"
		if isChallenger {
			column = "challenger"
		}

		row := tx.QueryRow(ctx,
			`UPDATE lift_off_challenges
			 SET `+column+`_weight = $1, `+column+`_completed_at = NOW(), updated_at = NOW()
			 WHERE id = $2
			 RETURNING `+liftOffColumns,
			weight, challengeID)

		updated, err = scanner.ScanLiftOffChallenge(row)
		if err != nil {
			return fmt.Errorf("could not record lift weight: %w", err)
		}

		// Seconde soumission → règlement synchrone
		if updated.ChallengerWeight != nil && updated.ChallengedWeight != nil {
			if err := settleLiftOff(ctx, tx, updated); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// settleLiftOff règle un défi dont les deux charges sont connues: vainqueur,
// transfert de la mise, passage en completed. Tout se joue dans la transaction
// de la seconde soumission; le flip accepted → completed est un compare-and-set
// et un résultat à zéro ligne annule tout, donc le règlement court au plus une
// fois même sur double déclenchement.
func settleLiftOff(ctx context.Context, tx pgx.Tx, challenge *model.LiftOffChallenge) error {
	winnerID := xp.PickWinner(
		challenge.ChallengerID, challenge.ChallengedID,
		*challenge.ChallengerWeight, *challenge.ChallengedWeight,
	)
	loserID := challenge.Opponent(winnerID)

	tag, err := tx.Exec(ctx,
		`UPDATE lift_off_challenges SET status = $1, winner_id = $2, updated_at = NOW()
		 WHERE id = $3 AND status = $4`,
		model.LiftOffCompleted, winnerID, challenge.ID, model.LiftOffAccepted)
	if err != nil {
		return fmt.Errorf("could not complete lift-off: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.InvalidStateTransition("lift-off %s is already settled", challenge.ID)
	}

	// Verrouiller les deux lignes de stats dans un ordre déterministe
	// pour ne pas s'interbloquer avec un autre règlement
	ids := []string{winnerID, loserID}
	sort.Strings(ids)
	locked := make(map[string]*model.UserStats, 2)
	for _, id := range ids {
		stats, err := lockUserStats(ctx, tx, id)
		if err != nil {
			return err
		}
		locked[id] = stats
	}
	winner, loser := locked[winnerID], locked[loserID]

	newWinnerXP, newLoserXP := xp.Transfer(winner.CumulativeXP, loser.CumulativeXP, challenge.WagerXP)
	winnerLevel, _ := xp.LevelFromCumulative(newWinnerXP)
	loserLevel, _ := xp.LevelFromCumulative(newLoserXP)

	_, err = tx.Exec(ctx,
		`UPDATE user_stats SET
			level = $1, level_xp = $2,
			current_month_xp = current_month_xp + $3,
			challenges_won = challenges_won + 1,
			updated_at = NOW()
		 WHERE user_id = $4`,
		winnerLevel, newWinnerXP, challenge.WagerXP, winnerID)
	if err != nil {
		return fmt.Errorf("could not credit winner: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE user_stats SET
			level = $1, level_xp = $2,
			current_month_xp = GREATEST(current_month_xp - $3, 0),
			updated_at = NOW()
		 WHERE user_id = $4`,
		loserLevel, newLoserXP, challenge.WagerXP, loserID)
	if err != nil {
		return fmt.Errorf("could not debit loser: %w", err)
	}

	challenge.Status = model.LiftOffCompleted
	challenge.WinnerID = &winnerID

	logger.Settlement(challenge.ID, winnerID, loserID, challenge.WagerXP)

	return nil
}

// GetLiftOff retourne un défi par id, expiration paresseuse appliquée.
// Seuls les participants peuvent le consulter.
func GetLiftOff(ctx context.Context, challengeID, userID string) (*model.LiftOffChallenge, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+liftOffColumns+` FROM lift_off_challenges WHERE id = $1`, challengeID)

	challenge, err := scanner.ScanLiftOffChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("lift-off", challengeID)
		}
		return nil, fmt.Errorf("could not query lift-off: %w", err)
	}

	if !challenge.IsParticipant(userID) {
		return nil, apperr.InvalidParticipant("you are not part of this lift-off")
	}

	if err := expireIfDue(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

// ListLiftOffs retourne les défis d'un utilisateur (challenger ou défié),
// filtrables: pending = reçus en attente, active = acceptés non réglés.
// L'expiration est constatée et persistée au passage.
func ListLiftOffs(ctx context.Context, userID, statusFilter string) ([]model.LiftOffChallenge, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+liftOffColumns+` FROM lift_off_challenges
		 WHERE challenger_id = $1 OR challenged_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("could not query lift-offs: %w", err)
	}
	defer rows.Close()

	var challenges []model.LiftOffChallenge
	for rows.Next() {
		challenge, err := scanner.ScanLiftOffChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan lift-off row: %w", err)
		}
		challenges = append(challenges, *challenge)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	filtered := challenges[:0]
	for i := range challenges {
		if err := expireIfDue(ctx, &challenges[i]); err != nil {
			return nil, err
		}

		switch statusFilter {
		case "pending":
			if challenges[i].Status != model.LiftOffPending || challenges[i].ChallengedID != userID {
				continue
			}
		case "active":
			if challenges[i].Status != model.LiftOffAccepted {
				continue
			}
		}
		filtered = append(filtered, challenges[i])
	}

	return filtered, nil
}

// lockLiftOff verrouille la ligne d'un défi (FOR UPDATE) et applique
// l'expiration paresseuse sous le verrou
func lockLiftOff(ctx context.Context, tx pgx.Tx, challengeID string) (*model.LiftOffChallenge, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+liftOffColumns+` FROM lift_off_challenges WHERE id = $1 FOR UPDATE`, challengeID)

	challenge, err := scanner.ScanLiftOffChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("lift-off", challengeID)
		}
		return nil, fmt.Errorf("could not lock lift-off: %w", err)
	}

	if challenge.ShouldExpire(time.Now()) {
		_, err := tx.Exec(ctx,
			`UPDATE lift_off_challenges SET status = $1, updated_at = NOW() WHERE id = $2`,
			model.LiftOffExpired, challengeID)
		if err != nil {
			return nil, fmt.Errorf("could not expire lift-off: %w", err)
		}
		challenge.Status = model.LiftOffExpired
	}

	return challenge, nil
}

// expireIfDue persiste l'expiration d'un défi ouvert dépassé, hors transaction.
// Le garde sur le statut évite d'écraser un règlement concurrent.
func expireIfDue(ctx context.Context, challenge *model.LiftOffChallenge) error {
	if !challenge.ShouldExpire(time.Now()) {
		return nil
	}

	tag, err := database.DB.Exec(ctx,
		`UPDATE lift_off_challenges SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status IN ($3, $4)`,
		model.LiftOffExpired, challenge.ID, model.LiftOffPending, model.LiftOffAccepted)
	if err != nil {
		return fmt.Errorf("could not expire lift-off: %w", err)
	}
	if tag.RowsAffected() > 0 {
		challenge.Status = model.LiftOffExpired
	}

	return nil
}
