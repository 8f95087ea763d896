package models

// LoanReason is a selectable purpose for a loan request.
type LoanReason struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LoanSummary is one row of the paginated loan listing.
type LoanSummary struct {
	ID          int    `json:"id"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
}

// Installment is a single entry of a loan's repayment schedule.
type Installment struct {
	ID      int    `json:"id"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
	PaidAt  string `json:"paid_at,omitempty"`
}

// LoanDetail is the full loan record including its installment schedule.
type LoanDetail struct {
	ID           int           `json:"id"`
	Amount       string        `json:"amount"`
	Status       string        `json:"status"`
	Reason       string        `json:"reason"`
	RequestedAt  string        `json:"requested_at"`
	Installments []Installment `json:"installments"`
}

// LoanListPage wraps a page of loan summaries.
type LoanListPage struct {
	Loans     []LoanSummary `json:"loans"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	PageLimit int           `json:"pageLimit"`
}

// SubmitResult is the uniform outcome of a submission call. Errors maps
// external field names to the messages the loan service attached to them.
type SubmitResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
