package models

// ApplicantProfile holds the identity fields sourced from the profile
// endpoint. The workflow never edits these.
type ApplicantProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Mobile       string `json:"mobile"`
	NationalID   string `json:"national_id"`
	IDExpiryDate string `json:"id_expiry_date"`
}

// Credentials are the two opaque session cookies issued by the loan service.
// Every upstream call forwards both.
type Credentials struct {
	SessionID  string
	APISession string
}
