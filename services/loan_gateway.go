package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"loan-portal-api/models"
	"loan-portal-api/utils"
)

const (
	// submitTimeout tolerates large multi-file uploads.
	submitTimeout = 600 * time.Second
	readTimeout   = 30 * time.Second
)

// LoanGateway talks to the remote loan service. Every call forwards the two
// session cookies. Submission calls never return a Go error: every failure
// path collapses into a SubmitResult. Read accessors return their error for
// the caller to decide.
type LoanGateway struct {
	baseURL string
	client  *http.Client
	upload  *http.Client
}

// NewLoanGateway constructs a LoanGateway for the given API origin.
func NewLoanGateway(baseURL string, client *http.Client) *LoanGateway {
	if client == nil {
		client = &http.Client{Timeout: readTimeout}
	}
	return &LoanGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		upload:  &http.Client{Timeout: submitTimeout},
	}
}

// BaseURL returns the configured loan service origin.
func (g *LoanGateway) BaseURL() string {
	return g.baseURL
}

// Ping reports whether the loan service origin answers at all. Any HTTP
// response counts as reachable; only a transport failure is an error.
func (g *LoanGateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func cookieHeader(creds models.Credentials) string {
	return fmt.Sprintf("api_session=%s; session_id=%s", creds.APISession, creds.SessionID)
}

// upstreamBody is the shape of the loan service's JSON replies that matter
// here; anything else rides along in SubmitResult.Data untyped.
type upstreamBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func quoteEscape(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

func writePayload(w *multipart.Writer, payload *Payload) error {
	for _, key := range payload.Keys {
		fv := payload.Fields[key]
		if fv.File == nil {
			if err := w.WriteField(key, fv.Value); err != nil {
				return err
			}
			continue
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscape(key), quoteEscape(fv.File.FileName)))
		contentType := fv.File.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return err
		}
		if _, err := part.Write(fv.File.Data); err != nil {
			return err
		}
	}
	return nil
}

// postMultipart performs one multipart POST and normalizes the outcome.
// successMsg/failureMsg are the localized fallbacks when the loan service
// reply carries no message of its own.
func (g *LoanGateway) postMultipart(ctx context.Context, creds models.Credentials, path string, payload *Payload, successMsg, failureMsg, transportMsg string) *models.SubmitResult {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writePayload(writer, payload); err != nil {
		log.Printf("Failed to build multipart payload for %s: %v", path, err)
		return &models.SubmitResult{Success: false, Message: failureMsg}
	}
	if err := writer.Close(); err != nil {
		log.Printf("Failed to finalize multipart payload for %s: %v", path, err)
		return &models.SubmitResult{Success: false, Message: failureMsg}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, &body)
	if err != nil {
		return &models.SubmitResult{Success: false, Message: failureMsg}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Cookie", cookieHeader(creds))

	resp, err := g.upload.Do(req)
	if err != nil {
		// No response reached the server.
		log.Printf("Transport error on %s: %v", path, err)
		message := err.Error()
		if message == "" {
			message = transportMsg
		}
		return &models.SubmitResult{Success: false, Message: message}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Failed to read response from %s: %v", path, err)
		return &models.SubmitResult{Success: false, Message: transportMsg}
	}

	var parsed upstreamBody
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		message := parsed.Message
		if message == "" {
			message = successMsg
		}
		var data interface{}
		_ = json.Unmarshal(raw, &data)
		return &models.SubmitResult{Success: true, Message: message, Data: data}
	}

	log.Printf("Loan service returned %d on %s: %s", resp.StatusCode, path, raw)
	message := parsed.Message
	if message == "" {
		message = failureMsg
	}
	return &models.SubmitResult{Success: false, Message: message, Errors: parsed.Errors}
}

// SubmitLoanRequest sends the assembled loan application to the loan
// service. Exactly one request per call; no retries.
func (g *LoanGateway) SubmitLoanRequest(ctx context.Context, creds models.Credentials, payload *Payload, locale string) *models.SubmitResult {
	return g.postMultipart(ctx, creds, "/api/loan/create", payload,
		utils.T(locale, utils.MsgSubmitSuccess),
		utils.T(locale, utils.MsgSubmitError),
		utils.T(locale, utils.MsgConnectionFailed))
}

// UploadPromissoryNote uploads the signed payment-commitment document for an
// approved loan.
func (g *LoanGateway) UploadPromissoryNote(ctx context.Context, creds models.Credentials, loanID string, file *models.Attachment, locale string) *models.SubmitResult {
	payload := &Payload{Fields: make(map[string]FormValue)}
	payload.add("loan_id", FormValue{Value: loanID})
	payload.add("promissory_note", FormValue{File: file})

	return g.postMultipart(ctx, creds, "/api/loan/"+loanID+"/promissory-note", payload,
		utils.T(locale, utils.MsgPromissorySuccess),
		utils.T(locale, utils.MsgPromissoryError),
		utils.T(locale, utils.MsgConnectionFailed))
}

func (g *LoanGateway) getJSON(ctx context.Context, creds models.Credentials, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cookie", cookieHeader(creds))

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("loan service returned %d for %s: %s", resp.StatusCode, path, raw)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetCountries fetches the immutable country reference list.
func (g *LoanGateway) GetCountries(ctx context.Context, creds models.Credentials) ([]models.Country, error) {
	var body struct {
		Countries []models.Country `json:"countries"`
	}
	if err := g.getJSON(ctx, creds, "/api/countries", &body); err != nil {
		return nil, err
	}
	return body.Countries, nil
}

// GetProfile fetches the applicant's read-only identity block.
func (g *LoanGateway) GetProfile(ctx context.Context, creds models.Credentials) (models.ApplicantProfile, error) {
	var body struct {
		Profile models.ApplicantProfile `json:"profile"`
	}
	if err := g.getJSON(ctx, creds, "/api/profile", &body); err != nil {
		return models.ApplicantProfile{}, err
	}
	return body.Profile, nil
}

// GetLoanReasons fetches the selectable loan purposes.
func (g *LoanGateway) GetLoanReasons(ctx context.Context, creds models.Credentials) ([]models.LoanReason, error) {
	var body struct {
		Reasons []models.LoanReason `json:"reasons"`
	}
	if err := g.getJSON(ctx, creds, "/api/loan/reasons", &body); err != nil {
		return nil, err
	}
	return body.Reasons, nil
}

// GetLoanList fetches one page of the caller's loan summaries.
func (g *LoanGateway) GetLoanList(ctx context.Context, creds models.Credentials, page, pageLimit int) (models.LoanListPage, error) {
	path := "/api/loan/list?page=" + strconv.Itoa(page) + "&pageLimit=" + strconv.Itoa(pageLimit)
	var body models.LoanListPage
	if err := g.getJSON(ctx, creds, path, &body); err != nil {
		return models.LoanListPage{}, err
	}
	return body, nil
}

// GetActiveLoan fetches the caller's current active loan detail. A caller
// with no active loan gets a nil detail, not an error.
func (g *LoanGateway) GetActiveLoan(ctx context.Context, creds models.Credentials) (*models.LoanDetail, error) {
	var body struct {
		Loan *models.LoanDetail `json:"loan"`
	}
	if err := g.getJSON(ctx, creds, "/api/loan/active", &body); err != nil {
		return nil, err
	}
	return body.Loan, nil
}

// GetLoanDetails fetches a full loan record including its installment
// schedule.
func (g *LoanGateway) GetLoanDetails(ctx context.Context, creds models.Credentials, id string) (*models.LoanDetail, error) {
	var body struct {
		Loan *models.LoanDetail `json:"loan"`
	}
	if err := g.getJSON(ctx, creds, "/api/loan/"+id+"/details", &body); err != nil {
		return nil, err
	}
	return body.Loan, nil
}

func (g *LoanGateway) postJSON(ctx context.Context, creds models.Credentials, path string, in interface{}, failureMsg string) *models.SubmitResult {
	encoded, err := json.Marshal(in)
	if err != nil {
		return &models.SubmitResult{Success: false, Message: failureMsg}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return &models.SubmitResult{Success: false, Message: failureMsg}
	}
	req.Header.Set("Content-Type", "application/json")
	if creds.SessionID != "" || creds.APISession != "" {
		req.Header.Set("Cookie", cookieHeader(creds))
	}

	resp, err := g.client.Do(req)
	if err != nil {
		message := err.Error()
		if message == "" {
			message = failureMsg
		}
		return &models.SubmitResult{Success: false, Message: message}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed upstreamBody
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data interface{}
		_ = json.Unmarshal(raw, &data)
		return &models.SubmitResult{Success: true, Message: parsed.Message, Data: data}
	}

	message := parsed.Message
	if message == "" {
		message = parsed.Error
	}
	if message == "" {
		message = failureMsg
	}
	return &models.SubmitResult{Success: false, Message: message, Errors: parsed.Errors}
}

// Register forwards a validated registration payload to the loan service.
func (g *LoanGateway) Register(ctx context.Context, body interface{}, locale string) *models.SubmitResult {
	return g.postJSON(ctx, models.Credentials{}, "/api/auth/register", body, utils.T(locale, utils.MsgUnexpectedError))
}

// UpdateProfile forwards profile edits to the loan service.
func (g *LoanGateway) UpdateProfile(ctx context.Context, creds models.Credentials, body interface{}, locale string) *models.SubmitResult {
	return g.postJSON(ctx, creds, "/api/profile/update", body, utils.T(locale, utils.MsgUnexpectedError))
}
