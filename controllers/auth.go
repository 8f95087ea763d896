package controllers

import (
	"net/http"

	"loan-portal-api/config"
	"loan-portal-api/middleware"
	"loan-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRequest carries the registration form. Validation mirrors the web
// client: localized per-field errors, Arabic-script address fields, and a
// password pair checked together.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Mobile          string `json:"mobile"`
	NationalID      string `json:"national_id"`
	IDExpiryDate    string `json:"id_expiry_date"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth"`
	SocialStatus    string `json:"social_status"`
	BuildingNo      string `json:"building_no"`
	StreetName      string `json:"street_name"`
	SecondaryNo     string `json:"secondary_no"`
	District        string `json:"district"`
	Zip             string `json:"zip"`
	City            string `json:"city"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// sanitized trims and strips control bytes from every forwarded field. The
// password pair is left untouched: it belongs to the loan service verbatim.
func (r RegisterRequest) sanitized() RegisterRequest {
	r.Name = utils.SanitizeInput(r.Name)
	r.Email = utils.SanitizeInput(r.Email)
	r.Phone = utils.SanitizeInput(r.Phone)
	r.Mobile = utils.SanitizeInput(r.Mobile)
	r.NationalID = utils.SanitizeInput(r.NationalID)
	r.IDExpiryDate = utils.SanitizeInput(r.IDExpiryDate)
	r.Gender = utils.SanitizeInput(r.Gender)
	r.DateOfBirth = utils.SanitizeInput(r.DateOfBirth)
	r.SocialStatus = utils.SanitizeInput(r.SocialStatus)
	r.BuildingNo = utils.SanitizeInput(r.BuildingNo)
	r.StreetName = utils.SanitizeInput(r.StreetName)
	r.SecondaryNo = utils.SanitizeInput(r.SecondaryNo)
	r.District = utils.SanitizeInput(r.District)
	r.Zip = utils.SanitizeInput(r.Zip)
	r.City = utils.SanitizeInput(r.City)
	return r
}

func validateRegistration(locale string, req RegisterRequest) map[string][]string {
	errs := make(map[string][]string)
	fail := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	if ok, msg := utils.ValidateRequired(locale, req.Name); !ok {
		fail("name", msg)
	} else if len([]rune(req.Name)) < 2 {
		fail("name", utils.T(locale, utils.MsgNameMin))
	}
	if ok, msg := utils.ValidateEmail(locale, req.Email); !ok {
		fail("email", msg)
	}
	if ok, msg := utils.ValidatePhone(locale, req.Phone); !ok {
		fail("phone", msg)
	}
	if ok, msg := utils.ValidatePhone(locale, req.Mobile); !ok {
		fail("mobile", msg)
	}
	if ok, msg := utils.ValidateDigits(locale, req.NationalID, 10); !ok {
		fail("national_id", msg)
	}
	if ok, msg := utils.ValidateFutureDate(locale, req.IDExpiryDate); !ok {
		fail("id_expiry_date", msg)
	}
	if ok, msg := utils.ValidateRequired(locale, req.Gender); !ok {
		fail("gender", msg)
	}
	if ok, msg := utils.ValidateDate(locale, req.DateOfBirth); !ok {
		fail("date_of_birth", msg)
	}
	if ok, msg := utils.ValidateRequired(locale, req.SocialStatus); !ok {
		fail("social_status", msg)
	}
	if ok, msg := utils.ValidateDigits(locale, req.BuildingNo, 4); !ok {
		fail("building_no", msg)
	}
	if ok, msg := utils.ValidateArabicText(locale, req.StreetName); !ok {
		fail("street_name", msg)
	}
	if ok, msg := utils.ValidateDigits(locale, req.SecondaryNo, 4); !ok {
		fail("secondary_no", msg)
	}
	if ok, msg := utils.ValidateArabicText(locale, req.District); !ok {
		fail("district", msg)
	}
	if ok, msg := utils.ValidateDigits(locale, req.Zip, 5); !ok {
		fail("zip", msg)
	}
	if ok, msg := utils.ValidateArabicText(locale, req.City); !ok {
		fail("city", msg)
	}
	if ok, msg := utils.ValidatePassword(locale, req.Password); !ok {
		fail("password", msg)
	}
	// The mismatch error belongs to the confirmation field.
	if ok, msg := utils.ValidatePasswordConfirmation(locale, req.Password, req.ConfirmPassword); !ok {
		fail("confirmPassword", msg)
	}

	return errs
}

// Register validates the registration form and forwards it to the loan
// service. Validation failures return per-field localized messages without
// any upstream call.
func Register(c *gin.Context) {
	locale := middleware.Locale(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req = req.sanitized()

	if errs := validateRegistration(locale, req); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	result := config.Gateway.Register(c.Request.Context(), req, locale)
	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
