package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"nom"`
	Rating    int       `json:"note"` // 1..5
	Comment   string    `json:"commentaire"`
	CreatedAt time.Time `json:"created_at"`
}
