package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[6-9]\d{9}$`)
	gstinRe   = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]{1}[A-Z\d]{1}[Z]{1}[A-Z\d]{1}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]{1}$`)
	aadhaarRe = regexp.MustCompile(`^\d{12}$`)
)

func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidPhone accepts a 10-digit Indian mobile number.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

func ValidGSTIN(s string) bool {
	return gstinRe.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

func ValidPAN(s string) bool {
	return panRe.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

func ValidAadhaar(s string) bool {
	return aadhaarRe.MatchString(strings.TrimSpace(s))
}
