package models

// Country is reference data fetched once per session from the loan service.
type Country struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Image string `json:"image,omitempty"`
}
