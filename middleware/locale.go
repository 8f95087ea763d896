package middleware

import (
	"strings"

	"loan-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware resolves the response language: ?lang query first, then
// the lang cookie, then Accept-Language. Arabic is the default.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Query("lang")
		if locale == "" {
			locale, _ = c.Cookie("lang")
		}
		if locale == "" && strings.HasPrefix(c.GetHeader("Accept-Language"), "en") {
			locale = utils.LocaleEnglish
		}
		if locale != utils.LocaleEnglish {
			locale = utils.LocaleArabic
		}

		c.Set("locale", locale)
		c.Next()
	}
}

// Locale returns the locale resolved by LocaleMiddleware.
func Locale(c *gin.Context) string {
	if v, ok := c.Get("locale"); ok {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return utils.LocaleArabic
}
