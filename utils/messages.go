// utils/messages.go - Localized user-facing strings (Arabic default, English fallback)
package utils

const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)

// Message keys shared by the validation engine, the assembler and the
// submission gateway.
const (
	MsgRequired              = "required"
	MsgNameMin               = "nameMin"
	MsgEmailInvalid          = "emailInvalid"
	MsgPhoneLength           = "phoneLength"
	MsgPhoneNumeric          = "phoneNumeric"
	MsgNationalIDLength      = "nationalIdLength"
	MsgDigitsLength          = "digitsLength"
	MsgAmountInvalid         = "amountInvalid"
	MsgArabicOnly            = "arabicOnly"
	MsgDateRequired          = "dateRequired"
	MsgDateExpired           = "dateExpired"
	MsgPasswordMin           = "passwordMin"
	MsgPasswordAlphanumeric  = "passwordAlphanumeric"
	MsgPasswordMismatch      = "passwordMismatch"
	MsgAllTermsRequired      = "allTermsRequired"
	MsgSubmitSuccess         = "submitSuccess"
	MsgSubmitError           = "submitError"
	MsgPromissorySuccess     = "promissorySuccess"
	MsgPromissoryError       = "promissoryError"
	MsgConnectionFailed      = "connectionFailed"
	MsgUnexpectedError       = "unexpectedError"
	MsgNoOtherCommitments    = "noOtherCommitments"
	MsgSubmissionInFlight    = "submissionInFlight"
	MsgUnknownField          = "unknownField"
	MsgReadOnlyField         = "readOnlyField"
)

var messages = map[string]map[string]string{
	LocaleArabic: {
		MsgRequired:             "هذا الحقل مطلوب",
		MsgNameMin:              "الاسم يجب أن يكون حرفين على الأقل",
		MsgEmailInvalid:         "البريد الإلكتروني غير صالح",
		MsgPhoneLength:          "رقم الجوال يجب أن يكون بين 9 و 15 رقم",
		MsgPhoneNumeric:         "رقم الجوال يجب أن يحتوي على أرقام فقط",
		MsgNationalIDLength:     "رقم الهوية يجب أن يكون 10 أرقام",
		MsgDigitsLength:         "يجب أن يتكون هذا الحقل من %d أرقام فقط",
		MsgAmountInvalid:        "المبلغ يجب أن يحتوي على أرقام فقط",
		MsgArabicOnly:           "يجب أن يحتوي هذا الحقل على أحرف عربية فقط",
		MsgDateRequired:         "التاريخ مطلوب",
		MsgDateExpired:          "تاريخ الانتهاء يجب أن يكون في المستقبل",
		MsgPasswordMin:          "كلمة المرور يجب أن تكون 8 أحرف على الأقل",
		MsgPasswordAlphanumeric: "كلمة المرور يجب أن تحتوي على أحرف وأرقام إنجليزية فقط",
		MsgPasswordMismatch:     "كلمتا المرور غير متطابقتين",
		MsgAllTermsRequired:     "يجب الموافقة على جميع الشروط والإقرارات قبل الإرسال",
		MsgSubmitSuccess:        "تم إرسال طلب القرض بنجاح",
		MsgSubmitError:          "حدث خطأ أثناء إرسال طلب القرض",
		MsgPromissorySuccess:    "تم رفع سند الأمر بنجاح",
		MsgPromissoryError:      "حدث خطأ أثناء رفع سند الأمر",
		MsgConnectionFailed:     "فشل الاتصال بالخادم",
		MsgUnexpectedError:      "حدث خطأ غير متوقع",
		MsgNoOtherCommitments:   "لا يوجد التزامات أخرى",
		MsgSubmissionInFlight:   "يوجد طلب قيد الإرسال بالفعل",
		MsgUnknownField:         "حقل غير معروف",
		MsgReadOnlyField:        "لا يمكن تعديل هذا الحقل",
	},
	LocaleEnglish: {
		MsgRequired:             "This field is required",
		MsgNameMin:              "Name must be at least 2 characters",
		MsgEmailInvalid:         "Invalid email address",
		MsgPhoneLength:          "Phone number must be between 9 and 15 digits",
		MsgPhoneNumeric:         "Phone number must contain digits only",
		MsgNationalIDLength:     "National ID must be 10 digits",
		MsgDigitsLength:         "This field must be exactly %d digits",
		MsgAmountInvalid:        "Amount must contain digits only",
		MsgArabicOnly:           "This field must contain Arabic letters only",
		MsgDateRequired:         "Date is required",
		MsgDateExpired:          "Expiry date must be in the future",
		MsgPasswordMin:          "Password must be at least 8 characters",
		MsgPasswordAlphanumeric: "Password must be alphanumeric only",
		MsgPasswordMismatch:     "Passwords do not match",
		MsgAllTermsRequired:     "All terms and acknowledgements must be accepted before submitting",
		MsgSubmitSuccess:        "Loan request submitted successfully",
		MsgSubmitError:          "An error occurred while submitting the loan request",
		MsgPromissorySuccess:    "Promissory note uploaded successfully",
		MsgPromissoryError:      "An error occurred while uploading the promissory note",
		MsgConnectionFailed:     "Failed to connect to the server",
		MsgUnexpectedError:      "An unexpected error occurred",
		MsgNoOtherCommitments:   "No other commitments",
		MsgSubmissionInFlight:   "A submission is already in progress",
		MsgUnknownField:         "Unknown field",
		MsgReadOnlyField:        "This field cannot be edited",
	},
}

// T returns the message for the given locale and key, falling back to Arabic
// and then to the key itself.
func T(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[LocaleArabic][key]; ok {
		return s
	}
	return key
}
