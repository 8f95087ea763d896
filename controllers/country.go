package controllers

import (
	"net/http"

	"loan-portal-api/config"
	"loan-portal-api/middleware"

	"github.com/gin-gonic/gin"
)

// GetCountries returns the country reference list.
func GetCountries(c *gin.Context) {
	creds := middleware.Credentials(c)

	countries, err := config.Gateway.GetCountries(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch countries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}
