package xp

// PickWinner détermine le vainqueur d'un lift-off à partir des deux charges.
// Le challenger ne gagne que s'il soulève strictement plus lourd: en cas
// d'égalité, le défenseur (challenged) conserve la victoire. Règle explicite,
// verrouillée par les tests.
func PickWinner(challengerID, challengedID string, challengerWeight, challengedWeight float64) string {
	if challengerWeight > challengedWeight {
		return challengerID
	}
	return challengedID
}

// Transfer applique le transfert de mise entre les deux cumuls d'XP.
// Le vainqueur gagne exactement wagerXP; le perdant est débité de
// min(wagerXP, son cumul), jamais de solde négatif.
func Transfer(winnerCumulative, loserCumulative, wagerXP int) (newWinnerCumulative, newLoserCumulative int) {
	if wagerXP < 0 {
		wagerXP = 0
	}
	return winnerCumulative + wagerXP, DebitFloor(loserCumulative, wagerXP)
}

// DebitFloor soustrait amount avec un plancher à zéro
func DebitFloor(value, amount int) int {
	if value-amount < 0 {
		return 0
	}
	return value - amount
}
