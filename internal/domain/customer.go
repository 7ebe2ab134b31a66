package domain

import "time"

// Customer is looked up by phone number; the phone is the natural key,
// there is no password. This is an identity lookup, not authentication.
type Customer struct {
	ID               string    `json:"id"`
	Phone            string    `json:"telephone"`
	FirstName        string    `json:"prenom"`
	LastName         string    `json:"nom"`
	PreferredZone    string    `json:"quartier_prefere"`
	PreferredAddress string    `json:"adresse_details"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
