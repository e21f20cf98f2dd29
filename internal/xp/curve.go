package xp

import "math"

// MaxLevel est le niveau maximum. La courbe n'est pas définie au-delà.
const MaxLevel = 100

// ForLevel retourne le coût en XP pour compléter un niveau.
// Formule: round(100 × level^1.5)
func ForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return int(math.Round(100 * math.Pow(float64(level), 1.5)))
}

// LevelFromCumulative décompose un total d'XP cumulé (depuis le niveau 1)
// en (niveau, XP restant dans le niveau). C'est la seule décomposition
// autorisée: toute dérivation de niveau dans le backend passe par ici.
func LevelFromCumulative(cumulativeXP int) (level, xpWithinLevel int) {
	if cumulativeXP < 0 {
		cumulativeXP = 0
	}

	level = 1
	remaining := cumulativeXP

	for level < MaxLevel {
		cost := ForLevel(level)
		if remaining < cost {
			break
		}
		remaining -= cost
		level++
	}

	return level, remaining
}

// CumulativeFromLevel reconstruit le total cumulé depuis (niveau, XP dans le niveau).
// Inverse exact de LevelFromCumulative pour 0 ≤ xpWithinLevel < ForLevel(level).
func CumulativeFromLevel(level, xpWithinLevel int) int {
	if level < 1 {
		level = 1
	}
	if xpWithinLevel < 0 {
		xpWithinLevel = 0
	}

	cumulative := xpWithinLevel
	for l := 1; l < level; l++ {
		cumulative += ForLevel(l)
	}

	return cumulative
}

// NormalizeCumulative résout l'ambiguïté de l'ancien format de stockage.
// Les anciennes lignes user_stats stockaient l'XP du niveau courant seulement;
// les nouvelles stockent le cumul total. Heuristique: si la valeur stockée est
// inférieure au cumul requis pour atteindre le niveau stocké, c'est l'ancien
// format et on ajoute le préfixe manquant. Appliquée une seule fois par lecture,
// le résultat est toujours persisté au format cumulé.
func NormalizeCumulative(storedXP, storedLevel int) (cumulativeXP int, migrated bool) {
	if storedLevel < 1 {
		storedLevel = 1
	}
	if storedXP < 0 {
		storedXP = 0
	}

	prefix := CumulativeFromLevel(storedLevel, 0)
	if storedXP < prefix {
		return prefix + storedXP, true
	}
	return storedXP, false
}
