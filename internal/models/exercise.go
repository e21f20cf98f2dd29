package model

// Exercise est une entrée du catalogue d'exercices
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"` // kg, lbs, reps
}
