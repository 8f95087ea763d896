package controllers

import (
	"io"
	"net/http"
	"strconv"

	"loan-portal-api/config"
	"loan-portal-api/middleware"
	"loan-portal-api/models"

	"github.com/gin-gonic/gin"
)

// GetLoanReasons proxies the selectable loan purposes.
func GetLoanReasons(c *gin.Context) {
	creds := middleware.Credentials(c)

	reasons, err := config.Gateway.GetLoanReasons(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch loan reasons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reasons": reasons})
}

// GetLoans proxies one page of the caller's loan summaries.
func GetLoans(c *gin.Context) {
	creds := middleware.Credentials(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageLimit, err := strconv.Atoi(c.DefaultQuery("pageLimit", "10"))
	if err != nil || pageLimit < 1 {
		pageLimit = 10
	}

	loans, err := config.Gateway.GetLoanList(c.Request.Context(), creds, page, pageLimit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch loans"})
		return
	}
	c.JSON(http.StatusOK, loans)
}

// GetActiveLoan proxies the caller's current active loan detail.
func GetActiveLoan(c *gin.Context) {
	creds := middleware.Credentials(c)

	loan, err := config.Gateway.GetActiveLoan(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch active loan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// GetLoanDetails proxies a full loan record with its installment schedule.
func GetLoanDetails(c *gin.Context) {
	creds := middleware.Credentials(c)
	id := c.Param("id")

	loan, err := config.Gateway.GetLoanDetails(c.Request.Context(), creds, id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch loan details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// UploadPromissoryNote forwards the signed promissory note for an approved
// loan. The outcome uses the same normalized result shape as submission.
func UploadPromissoryNote(c *gin.Context) {
	creds := middleware.Credentials(c)
	locale := middleware.Locale(c)
	loanID := c.Param("id")

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

	file := &models.Attachment{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	result := config.Gateway.UploadPromissoryNote(c.Request.Context(), creds, loanID, file, locale)
	c.JSON(http.StatusOK, result)
}
