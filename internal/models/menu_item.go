package models

type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	Cost         float64 `json:"cost"`
	Category     string  `json:"category"`
	Popularity   float64 `json:"popularity"`
}
