package model

type Pizza struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Ingredients string `json:"ingredients" db:"ingredients"`
}
