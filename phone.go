package miner

import (
	"regexp"
	"strings"
)

// PhonePattern loosely matches phone numbers with optional country code,
// area code and common separators.
var PhonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s-]?)?(?:\(?\d{2,4}\)?[\s-]?)?\d{3,4}[\s-]?\d{4}`)

var phoneStripper = regexp.MustCompile(`[\s\-()]`)

// NormalizePhone removes whitespace, hyphens and parentheses, keeping
// digits and a leading plus sign.
func NormalizePhone(phone string) string {
	return phoneStripper.ReplaceAllString(phone, "")
}

// IsValidPhone reports whether a phone number is plausible after
// normalization. Junk values are rejected: fewer than seven characters,
// all zeros, or a single repeated digit.
func IsValidPhone(phone string) bool {
	normalized := NormalizePhone(phone)

	if len(normalized) < 7 {
		return false
	}

	digits := strings.ReplaceAll(normalized, "+", "")
	if strings.ReplaceAll(digits, "0", "") == "" {
		return false
	}

	distinct := make(map[rune]bool)
	for _, r := range digits {
		distinct[r] = true
	}
	return len(distinct) > 1
}
