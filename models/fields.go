package models

// FieldKind classifies a field for validation and input filtering. Amount,
// phone and digit fields reject non-conforming input at edit time, not only
// on submit.
type FieldKind string

const (
	FieldText       FieldKind = "text"
	FieldArabicText FieldKind = "arabic_text"
	FieldAmount     FieldKind = "amount"
	FieldDigits     FieldKind = "digits"
	FieldPhone      FieldKind = "phone"
	FieldEmail      FieldKind = "email"
	FieldDate       FieldKind = "date"
	FieldSelect     FieldKind = "select"
	FieldBool       FieldKind = "bool"
	FieldFile       FieldKind = "file"
)

// Form sections of the loan request workflow.
const (
	SectionApplicant   = "applicant"
	SectionRequest     = "request"
	SectionFinancial   = "financial"
	SectionGuarantor   = "guarantor"
	SectionAttachments = "attachments"
)

// SelectSentinel is the placeholder value a dropdown holds before the user
// picks a real option. The assembler maps it to an empty string.
const SelectSentinel = "اختيار"

// FieldSpec describes one field of the loan request workflow: where it lives,
// how it validates, which toggle governs it, and the multipart key the loan
// service expects.
type FieldSpec struct {
	Key      string
	Section  string
	Kind     FieldKind
	Length   int    // exact digit count for FieldDigits
	External string // multipart key on the wire
	// ClearedBy names the boolean toggle governing this field. When the
	// toggle goes false the field is cleared and excluded from disclosure.
	ClearedBy string
	// ReadOnly fields are sourced from the applicant profile and never
	// edited inside the workflow.
	ReadOnly bool
}

// fieldOrder preserves the wire order of the assembled payload.
var fieldOrder []string

// FieldRegistry is the canonical list of workflow fields keyed by internal
// name. It is the single source of truth for the reducer, the validation
// engine and the payload assembler.
var FieldRegistry = map[string]FieldSpec{}

func register(specs ...FieldSpec) {
	for _, s := range specs {
		FieldRegistry[s.Key] = s
		fieldOrder = append(fieldOrder, s.Key)
	}
}

// FieldOrder returns field keys in payload order.
func FieldOrder() []string {
	return fieldOrder
}

func init() {
	// Applicant identity, read-only, copied from the profile endpoint.
	register(
		FieldSpec{Key: "fullName", Section: SectionApplicant, Kind: FieldText, External: "requester_name", ReadOnly: true},
		FieldSpec{Key: "nationalId", Section: SectionApplicant, Kind: FieldDigits, Length: 10, External: "requester_national_id", ReadOnly: true},
		FieldSpec{Key: "idExpiryDate", Section: SectionApplicant, Kind: FieldDate, External: "requester_id_expiry_date", ReadOnly: true},
		FieldSpec{Key: "phone", Section: SectionApplicant, Kind: FieldPhone, External: "requester_phone", ReadOnly: true},
		FieldSpec{Key: "email", Section: SectionApplicant, Kind: FieldEmail, External: "requester_email", ReadOnly: true},
	)

	// Borrower loan request section.
	register(
		FieldSpec{Key: "nationality", Section: SectionRequest, Kind: FieldSelect, External: "requester_nationality_id"},
		FieldSpec{Key: "address", Section: SectionRequest, Kind: FieldText, External: "requester_street"},
		FieldSpec{Key: "workTitle", Section: SectionRequest, Kind: FieldText, External: "requester_work_address"},
		FieldSpec{Key: "workPhone", Section: SectionRequest, Kind: FieldPhone, External: "requester_work_phone"},
		FieldSpec{Key: "city", Section: SectionRequest, Kind: FieldText, External: "requester_city"},
		FieldSpec{Key: "contactPerson", Section: SectionRequest, Kind: FieldText, External: "requester_backup_name"},
		FieldSpec{Key: "contactPersonPhone", Section: SectionRequest, Kind: FieldPhone, External: "requester_backup_phone"},
		FieldSpec{Key: "jobTitle", Section: SectionRequest, Kind: FieldText, External: "requester_job_title"},
		FieldSpec{Key: "totalSalary", Section: SectionRequest, Kind: FieldAmount, External: "requester_total_salary"},
		FieldSpec{Key: "jobStartDate", Section: SectionRequest, Kind: FieldDate, External: "requester_job_start_date"},
		FieldSpec{Key: "employer", Section: SectionRequest, Kind: FieldText, External: "requester_employer"},
		FieldSpec{Key: "employerAddress", Section: SectionRequest, Kind: FieldText, External: "requester_employer_address"},
		FieldSpec{Key: "directManagerName", Section: SectionRequest, Kind: FieldText, External: "requester_direct_manager_name"},
		FieldSpec{Key: "directManagerJobTitle", Section: SectionRequest, Kind: FieldText, External: "requester_direct_manager_job_title"},

		FieldSpec{Key: "hasPreviousLoan", Section: SectionRequest, Kind: FieldBool, External: "has_previous_loan"},
		FieldSpec{Key: "isPreviousLoanPaid", Section: SectionRequest, Kind: FieldBool, External: "is_previous_loan_paid", ClearedBy: "hasPreviousLoan"},
		FieldSpec{Key: "isCurrentGuarantor", Section: SectionRequest, Kind: FieldBool, External: "is_current_guarantor"},
		FieldSpec{Key: "guaranteedBorrowerName", Section: SectionRequest, Kind: FieldText, External: "guaranteed_borrower_name", ClearedBy: "isCurrentGuarantor"},
		FieldSpec{Key: "hasMonthlyInstallments", Section: SectionRequest, Kind: FieldBool, External: "has_monthly_installments"},
		FieldSpec{Key: "totalMonthlyInstallments", Section: SectionRequest, Kind: FieldAmount, External: "total_monthly_installments", ClearedBy: "hasMonthlyInstallments"},
		FieldSpec{Key: "hasAdditionalIncome", Section: SectionRequest, Kind: FieldBool, External: "has_additional_income"},
		FieldSpec{Key: "totalAdditionalIncome", Section: SectionRequest, Kind: FieldAmount, External: "total_additional_income", ClearedBy: "hasAdditionalIncome"},

		FieldSpec{Key: "installmentCount", Section: SectionRequest, Kind: FieldSelect, External: "number_of_installments"},
		FieldSpec{Key: "loanAmount", Section: SectionRequest, Kind: FieldAmount, External: "loan_amount_number"},
		FieldSpec{Key: "purpose", Section: SectionRequest, Kind: FieldText, External: "loan_reason"},
		FieldSpec{Key: "loanBeneficiary", Section: SectionRequest, Kind: FieldText, External: "loan_beneficiary"},
	)

	// Financial status section.
	register(
		FieldSpec{Key: "incomeAmount", Section: SectionFinancial, Kind: FieldAmount, External: "income_amount_number"},
		FieldSpec{Key: "rentAmount", Section: SectionFinancial, Kind: FieldAmount, External: "rent_amount_number"},
		FieldSpec{Key: "electricityAvg", Section: SectionFinancial, Kind: FieldAmount, External: "electricity_avg_number"},
		FieldSpec{Key: "hasOtherCommitments", Section: SectionFinancial, Kind: FieldBool, External: "has_other_commitments"},
		FieldSpec{Key: "otherCommitmentsDetails", Section: SectionFinancial, Kind: FieldText, External: "other_commitments_details", ClearedBy: "hasOtherCommitments"},
	)

	// Borrower supporting documents. The loan service requires every key to
	// be present even when no file is attached.
	register(
		FieldSpec{Key: "signature", Section: SectionAttachments, Kind: FieldFile, External: "requester_signature"},
		FieldSpec{Key: "nationalAddress", Section: SectionAttachments, Kind: FieldFile, External: "requester_national_address_image"},
		FieldSpec{Key: "imamRecommendation", Section: SectionAttachments, Kind: FieldFile, External: "requester_imam_recommendation"},
		FieldSpec{Key: "najizReport", Section: SectionAttachments, Kind: FieldFile, External: "requester_najiz_report"},
		FieldSpec{Key: "creditReport", Section: SectionAttachments, Kind: FieldFile, External: "requester_credit_report"},
		FieldSpec{Key: "validId", Section: SectionAttachments, Kind: FieldFile, External: "requester_valid_id"},
		FieldSpec{Key: "ibanCertificate", Section: SectionAttachments, Kind: FieldFile, External: "requester_iban_certificate"},
		FieldSpec{Key: "promissoryNote", Section: SectionAttachments, Kind: FieldFile, External: "requester_promissory_note"},
		FieldSpec{Key: "incomeProof", Section: SectionFinancial, Kind: FieldFile, External: "requester_income_proof"},
	)

	// Guarantor section: identity, employment, active-loan toggle and the
	// guarantor document set.
	register(
		FieldSpec{Key: "guarantorName", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_name"},
		FieldSpec{Key: "guarantorNationalId", Section: SectionGuarantor, Kind: FieldDigits, Length: 10, External: "guarantor_national_id"},
		FieldSpec{Key: "guarantorIdExpiryDate", Section: SectionGuarantor, Kind: FieldDate, External: "guarantor_id_expiry_date"},
		FieldSpec{Key: "guarantorNationality", Section: SectionGuarantor, Kind: FieldSelect, External: "guarantor_nationality_id"},
		FieldSpec{Key: "guarantorPhone", Section: SectionGuarantor, Kind: FieldPhone, External: "guarantor_phone"},
		FieldSpec{Key: "guarantorEmail", Section: SectionGuarantor, Kind: FieldEmail, External: "guarantor_email"},
		FieldSpec{Key: "guarantorStreet", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_street"},
		FieldSpec{Key: "guarantorWorkAddress", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_work_address"},
		FieldSpec{Key: "guarantorWorkPhone", Section: SectionGuarantor, Kind: FieldPhone, External: "guarantor_work_phone"},
		FieldSpec{Key: "guarantorCity", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_city"},
		FieldSpec{Key: "guarantorBackupName", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_backup_name"},
		FieldSpec{Key: "guarantorBackupPhone", Section: SectionGuarantor, Kind: FieldPhone, External: "guarantor_backup_phone"},
		FieldSpec{Key: "guarantorJobTitle", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_job_title"},
		FieldSpec{Key: "guarantorTotalSalary", Section: SectionGuarantor, Kind: FieldAmount, External: "guarantor_total_salary"},
		FieldSpec{Key: "guarantorJobStartDate", Section: SectionGuarantor, Kind: FieldDate, External: "guarantor_job_start_date"},
		FieldSpec{Key: "guarantorEmployer", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_employer"},
		FieldSpec{Key: "guarantorEmployerAddress", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_employer_address"},
		FieldSpec{Key: "guarantorDirectManagerName", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_direct_manager_name"},
		FieldSpec{Key: "guarantorDirectManagerJobTitle", Section: SectionGuarantor, Kind: FieldText, External: "guarantor_direct_manager_job_title"},
		FieldSpec{Key: "guarantorHasActiveLoan", Section: SectionGuarantor, Kind: FieldBool, External: "guarantor_has_active_loan"},
		FieldSpec{Key: "guarantorRemainingLoanAmount", Section: SectionGuarantor, Kind: FieldAmount, External: "guarantor_remaining_loan_amount", ClearedBy: "guarantorHasActiveLoan"},
		FieldSpec{Key: "guarantorSignature", Section: SectionGuarantor, Kind: FieldFile, External: "guarantor_signature"},
		FieldSpec{Key: "guarantorNationalAddress", Section: SectionGuarantor, Kind: FieldFile, External: "guarantor_national_address_image"},
		FieldSpec{Key: "guarantorValidId", Section: SectionGuarantor, Kind: FieldFile, External: "guarantor_valid_id"},
		FieldSpec{Key: "guarantorIncomeProof", Section: SectionGuarantor, Kind: FieldFile, External: "guarantor_income_proof"},
		FieldSpec{Key: "guarantorCreditReport", Section: SectionGuarantor, Kind: FieldFile, External: "guarantor_credit_report"},
	)
}

// DetailFields returns the keys whose ClearedBy matches the given toggle.
func DetailFields(toggle string) []string {
	var details []string
	for _, key := range fieldOrder {
		if FieldRegistry[key].ClearedBy == toggle {
			details = append(details, key)
		}
	}
	return details
}
