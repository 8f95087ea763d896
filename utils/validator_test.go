package utils

import (
	"testing"
	"time"
)

func TestValidateDigitsNationalID(t *testing.T) {
	if ok, msg := ValidateDigits(LocaleArabic, "12345", 10); ok {
		t.Fatal("expected 5-digit national ID to fail")
	} else if msg != T(LocaleArabic, MsgNationalIDLength) {
		t.Fatalf("expected length error, got %q", msg)
	}

	if ok, _ := ValidateDigits(LocaleArabic, "1234567890", 10); !ok {
		t.Fatal("expected 10-digit national ID to pass")
	}

	if ok, _ := ValidateDigits(LocaleArabic, "12345abcde", 10); ok {
		t.Fatal("expected non-digit national ID to fail")
	}
}

func TestValidateDigitsOtherLengths(t *testing.T) {
	if ok, _ := ValidateDigits(LocaleEnglish, "12345", 5); !ok {
		t.Fatal("expected 5-digit postal code to pass")
	}
	if ok, _ := ValidateDigits(LocaleEnglish, "1234", 4); !ok {
		t.Fatal("expected 4-digit building number to pass")
	}
	if ok, _ := ValidateDigits(LocaleEnglish, "123", 4); ok {
		t.Fatal("expected 3-digit building number to fail")
	}
}

func TestValidatePhone(t *testing.T) {
	if ok, _ := ValidatePhone(LocaleArabic, "966389010"); !ok {
		t.Fatal("expected 9-digit phone to pass")
	}
	if ok, _ := ValidatePhone(LocaleArabic, "12345678"); ok {
		t.Fatal("expected 8-digit phone to fail")
	}
	if ok, _ := ValidatePhone(LocaleArabic, "1234567890123456"); ok {
		t.Fatal("expected 16-digit phone to fail")
	}
	if ok, msg := ValidatePhone(LocaleArabic, "96638901a"); ok {
		t.Fatal("expected phone with letters to fail")
	} else if msg != T(LocaleArabic, MsgPhoneNumeric) {
		t.Fatalf("expected numeric error, got %q", msg)
	}
}

func TestValidateAmount(t *testing.T) {
	for _, valid := range []string{"", "1000", "1000.50", ".5", "0."} {
		if ok, _ := ValidateAmount(LocaleArabic, valid); !ok {
			t.Errorf("expected %q to be a valid amount", valid)
		}
	}
	for _, invalid := range []string{"1,000", "-5", "1.2.3", "12a"} {
		if ok, _ := ValidateAmount(LocaleArabic, invalid); ok {
			t.Errorf("expected %q to be an invalid amount", invalid)
		}
	}
}

func TestValidateArabicText(t *testing.T) {
	if ok, _ := ValidateArabicText(LocaleArabic, "شارع الملك فهد"); !ok {
		t.Fatal("expected Arabic street name to pass")
	}
	if ok, _ := ValidateArabicText(LocaleArabic, "King Fahd St"); ok {
		t.Fatal("expected Latin street name to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword(LocaleArabic, "abc1234"); ok {
		t.Fatal("expected 7-character password to fail")
	}
	if ok, _ := ValidatePassword(LocaleArabic, "abc12345!"); ok {
		t.Fatal("expected non-alphanumeric password to fail")
	}
	if ok, _ := ValidatePassword(LocaleArabic, "abc12345"); !ok {
		t.Fatal("expected alphanumeric password to pass")
	}
}

func TestValidatePasswordConfirmation(t *testing.T) {
	if ok, msg := ValidatePasswordConfirmation(LocaleArabic, "abc12345", "abc12346"); ok {
		t.Fatal("expected mismatched confirmation to fail")
	} else if msg != T(LocaleArabic, MsgPasswordMismatch) {
		t.Fatalf("expected mismatch error, got %q", msg)
	}

	if ok, _ := ValidatePasswordConfirmation(LocaleArabic, "abc12345", "abc12345"); !ok {
		t.Fatal("expected identical confirmation to pass")
	}
}

func TestValidateFutureDate(t *testing.T) {
	past := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if ok, _ := ValidateFutureDate(LocaleArabic, past); ok {
		t.Fatal("expected yesterday to fail")
	}

	// Today passes: the comparison is at day granularity.
	today := time.Now().Format("2006-01-02")
	if ok, msg := ValidateFutureDate(LocaleArabic, today); !ok {
		t.Fatalf("expected today to pass, got %q", msg)
	}

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	if ok, _ := ValidateFutureDate(LocaleArabic, future); !ok {
		t.Fatal("expected next year to pass")
	}
}

func TestTFallsBackToArabic(t *testing.T) {
	if got := T("fr", MsgRequired); got != T(LocaleArabic, MsgRequired) {
		t.Fatalf("expected Arabic fallback, got %q", got)
	}
	if got := T(LocaleEnglish, MsgRequired); got != "This field is required" {
		t.Fatalf("unexpected English message %q", got)
	}
}
