package utils

import (
	"regexp"
	"strings"
)

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRegex  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	looseYMDRegex = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

func padDatePart(part string) string {
	if len(part) == 1 {
		return "0" + part
	}
	return part
}

// NormalizeISODate converts DD-MM-YYYY and DD/MM/YYYY input to the canonical
// YYYY-MM-DD form, zero-padding loose day/month components. Canonical input
// is returned unchanged, so normalization is idempotent. Unrecognized input
// passes through as-is; the loan service owns final date validation.
func NormalizeISODate(input string) string {
	if input == "" {
		return ""
	}
	if isoDateRegex.MatchString(input) {
		return input
	}
	sanitized := strings.TrimSpace(strings.ReplaceAll(input, "/", "-"))
	if m := dmyDateRegex.FindStringSubmatch(sanitized); m != nil {
		return m[3] + "-" + padDatePart(m[2]) + "-" + padDatePart(m[1])
	}
	if m := looseYMDRegex.FindStringSubmatch(sanitized); m != nil {
		return m[1] + "-" + padDatePart(m[2]) + "-" + padDatePart(m[3])
	}
	return input
}
