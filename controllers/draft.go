package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"loan-portal-api/config"
	"loan-portal-api/middleware"
	"loan-portal-api/models"
	"loan-portal-api/services"
	"loan-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// OpenDraft opens (or resumes) the session's loan draft and loads the
// read-only applicant profile plus the country reference list. Reference
// fetch failures are logged and leave empty defaults; the workflow still
// opens.
func OpenDraft(c *gin.Context) {
	creds := middleware.Credentials(c)
	draft := services.Drafts.Open(creds.SessionID)

	if draft.Applicant.Name == "" {
		profile, err := config.Gateway.GetProfile(c.Request.Context(), creds)
		if err != nil {
			log.Printf("Failed to fetch applicant profile: %v", err)
		}
		countries, err := config.Gateway.GetCountries(c.Request.Context(), creds)
		if err != nil {
			log.Printf("Failed to fetch countries: %v", err)
		}
		if err := services.Drafts.SetApplicant(creds.SessionID, profile, countries); err != nil {
			log.Printf("Failed to store applicant data: %v", err)
		}
		// The first snapshot predates the profile; render a fresh one.
		if refreshed, err := services.Drafts.Get(creds.SessionID); err == nil {
			draft = refreshed
		}
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetDraft returns the session's open draft.
func GetDraft(c *gin.Context) {
	creds := middleware.Credentials(c)

	draft, err := services.Drafts.Get(creds.SessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open loan draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraftField applies a single field edit through the reducer. A field
// that fails validation blocks only itself: the error is returned inline and
// the rest of the draft is untouched.
func UpdateDraftField(c *gin.Context) {
	creds := middleware.Credentials(c)
	locale := middleware.Locale(c)

	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.Drafts.ApplyField(creds.SessionID, locale, req.Field, req.Value)
	var fieldErr *services.FieldError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"field": req.Field, "value": req.Value})
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"field": fieldErr.Field,
			"error": fieldErr.Message,
		})
	case errors.Is(err, services.ErrNoDraft):
		c.JSON(http.StatusNotFound, gin.H{"error": "No open loan draft"})
	case errors.Is(err, services.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.T(locale, utils.MsgUnknownField)})
	case errors.Is(err, services.ErrReadOnlyField):
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.T(locale, utils.MsgReadOnlyField)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// UploadDraftAttachment stores one file in the named slot, replacing any
// previous file there.
func UploadDraftAttachment(c *gin.Context) {
	creds := middleware.Credentials(c)
	slot := c.Param("slot")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	attachment := &models.Attachment{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	switch err := services.Drafts.AttachFile(creds.SessionID, slot, attachment); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"slot": slot, "file_name": attachment.FileName})
	case errors.Is(err, services.ErrNoDraft):
		c.JSON(http.StatusNotFound, gin.H{"error": "No open loan draft"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment slot"})
	}
}

// RemoveDraftAttachment empties the named slot.
func RemoveDraftAttachment(c *gin.Context) {
	creds := middleware.Credentials(c)
	slot := c.Param("slot")

	switch err := services.Drafts.RemoveFile(creds.SessionID, slot); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"slot": slot})
	case errors.Is(err, services.ErrNoDraft):
		c.JSON(http.StatusNotFound, gin.H{"error": "No open loan draft"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment slot"})
	}
}

// SetAcknowledgements replaces the three attestation checkboxes.
func SetAcknowledgements(c *gin.Context) {
	creds := middleware.Credentials(c)

	var acks models.AcknowledgementState
	if err := c.ShouldBindJSON(&acks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.Drafts.SetAcknowledgements(creds.SessionID, acks); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open loan draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledgements": acks})
}

// SubmitDraft assembles the draft into the loan service's multipart payload
// and submits it. The acknowledgement gate and the re-entrancy guard both
// reject before any network call. The outcome is the normalized result
// shape; on success the draft is discarded, on failure it stays populated.
func SubmitDraft(c *gin.Context) {
	creds := middleware.Credentials(c)
	locale := middleware.Locale(c)

	draft, err := services.Drafts.BeginSubmit(creds.SessionID)
	switch {
	case errors.Is(err, services.ErrNoDraft):
		c.JSON(http.StatusNotFound, gin.H{"error": "No open loan draft"})
		return
	case errors.Is(err, services.ErrGateNotSatisfied):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": utils.T(locale, utils.MsgAllTermsRequired)})
		return
	case errors.Is(err, services.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": utils.T(locale, utils.MsgSubmissionInFlight)})
		return
	}

	payload := services.AssemblePayload(draft, locale)
	result := config.Gateway.SubmitLoanRequest(c.Request.Context(), creds, payload, locale)
	services.Drafts.EndSubmit(creds.SessionID, result.Success)

	c.JSON(http.StatusOK, result)
}

// DiscardDraft drops the session's draft without submitting.
func DiscardDraft(c *gin.Context) {
	creds := middleware.Credentials(c)
	services.Drafts.Discard(creds.SessionID)
	c.JSON(http.StatusOK, gin.H{"discarded": true})
}
