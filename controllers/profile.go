package controllers

import (
	"net/http"

	"loan-portal-api/config"
	"loan-portal-api/middleware"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the applicant's profile from the loan service.
func GetProfile(c *gin.Context) {
	creds := middleware.Credentials(c)

	profile, err := config.Gateway.GetProfile(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile forwards profile edits to the loan service.
func UpdateProfile(c *gin.Context) {
	creds := middleware.Credentials(c)
	locale := middleware.Locale(c)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.Gateway.UpdateProfile(c.Request.Context(), creds, body, locale)
	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
