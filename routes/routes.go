package routes

import (
	"loan-portal-api/controllers"
	"loan-portal-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.LocaleMiddleware())
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/auth/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Loan Portal API is running",
				})
			})
		}

		// Protected routes (require both loan-service session cookies)
		protected := v1.Group("")
		protected.Use(middleware.SessionMiddleware())
		{
			// Reference data
			protected.GET("/countries", controllers.GetCountries)

			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)

			// Loans
			loans := protected.Group("/loans")
			{
				loans.GET("", controllers.GetLoans)
				loans.GET("/reasons", controllers.GetLoanReasons)
				loans.GET("/active", controllers.GetActiveLoan)
				loans.GET("/:id", controllers.GetLoanDetails)
				loans.POST("/:id/promissory-note", controllers.UploadPromissoryNote)
			}

			// Loan application drafts
			drafts := protected.Group("/loan-drafts")
			{
				drafts.POST("", controllers.OpenDraft)
				drafts.GET("/current", controllers.GetDraft)
				drafts.DELETE("/current", controllers.DiscardDraft)
				drafts.PATCH("/current/fields", controllers.UpdateDraftField)
				drafts.POST("/current/attachments/:slot", controllers.UploadDraftAttachment)
				drafts.DELETE("/current/attachments/:slot", controllers.RemoveDraftAttachment)
				drafts.PUT("/current/acknowledgements", controllers.SetAcknowledgements)
				drafts.POST("/current/submit", controllers.SubmitDraft)
			}
		}
	}
}
