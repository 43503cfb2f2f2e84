package models

// Professional is a service provider appointments are booked against.
type Professional struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address_pro"`
	Phone       string `json:"phone_pro"`
	Description string `json:"description_pro"`
}

// Speciality links a professional to one named trade, e.g.
// "Toiletteur canin" or "Vétérinaire".
type Speciality struct {
	ID             int64  `json:"id"`
	Name           string `json:"name_speciality"`
	ProfessionalID int64  `json:"professional_id"`
}
