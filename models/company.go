package models

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// CompanyDetails is the identity block embedded into an invoice for
// both sender and client. It is a value copy, not a reference to a
// stored profile.
type CompanyDetails struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	CompanyName string  `json:"company_name,omitempty"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Address     Address `json:"address"`
	Logo        string  `json:"logo,omitempty"`
}
