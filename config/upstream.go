package config

import (
	"log"
	"os"
	"strings"

	"loan-portal-api/services"
)

// Gateway is the shared client for the remote loan service.
var Gateway *services.LoanGateway

// InitUpstream reads the loan service origin from the environment and builds
// the shared gateway. LOAN_API_URL is the only externally significant
// configuration of the workflow core.
func InitUpstream() {
	baseURL := strings.TrimSpace(os.Getenv("LOAN_API_URL"))
	if baseURL == "" {
		log.Fatal("LOAN_API_URL is required")
	}

	Gateway = services.NewLoanGateway(baseURL, nil)
	log.Printf("Loan service gateway configured for %s", baseURL)
}
