package payment

import (
	"math"
	"net/mail"
	"regexp"
	"strings"
)

// идентификаторы сессий Stripe: cs_test_..., cs_live_...
var sessionIDRegex = regexp.MustCompile(`^[A-Za-z0-9_]{1,255}$`)

func isValidSessionID(sessionID string) bool {
	return sessionIDRegex.MatchString(sessionID)
}

// Границы столбца cost NUMERIC(12, 2).
const (
	minCost = 0.01
	maxCost = 9999999999.99
)

func isValidCost(cost float64) bool {
	return !math.IsNaN(cost) && cost >= minCost && cost <= maxCost
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
