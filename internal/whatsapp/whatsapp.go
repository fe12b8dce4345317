// Package whatsapp builds wa.me links for delivery confirmations.
package whatsapp

import (
	"net/url"
	"strings"
)

// NormalizePhone canonicalizes a Colombian phone number to its
// international digits ("57" + number), or "" when the input cannot be
// trusted as a dialable number. Handles mobiles (10 digits), numbers
// already prefixed with 57, and landlines with their area code (601...,
// 1...). A 57-prefixed number with 11 digits lost a digit somewhere
// and is rejected instead of guessed at.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return ""
	}

	if len(digits) == 10 {
		return "57" + digits
	}
	if strings.HasPrefix(digits, "57") && (len(digits) == 11 || len(digits) == 12) {
		if len(digits) == 12 {
			return digits
		}
		return ""
	}
	if (strings.HasPrefix(digits, "60") || strings.HasPrefix(digits, "1")) && len(digits) >= 7 {
		return "57" + digits
	}
	if len(digits) >= 7 && len(digits) <= 15 {
		if strings.HasPrefix(digits, "57") {
			return digits
		}
		return "57" + digits
	}
	return ""
}

// BuildURL returns the wa.me link for a phone and optional message,
// "" when the phone does not normalize.
func BuildURL(phone, message string) string {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return ""
	}
	u := "https://wa.me/" + normalized
	if message != "" {
		// Query-escape but with %20 for spaces; WhatsApp does not decode +.
		u += "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	}
	return u
}
