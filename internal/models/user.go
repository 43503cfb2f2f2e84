package models

// User is the authenticated account as the API reports it.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	FirstName  string `json:"first_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	GoogleID   string `json:"google_id"`
	Image      string `json:"image"`
}
