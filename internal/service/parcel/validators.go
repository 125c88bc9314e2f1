package parcel

import (
	"math"
	"net/mail"
	"strings"

	"zapshift/internal/entities"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isValidParcelName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Границы столбца cost NUMERIC(12, 2).
const (
	minCost = 0.01
	maxCost = 9999999999.99
)

func isValidCost(cost float64) bool {
	return !math.IsNaN(cost) && cost >= minCost && cost <= maxCost
}

func isValidDeliveryStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryNone,
		entities.DeliveryPendingPickup,
		entities.DeliveryDriverAssigned,
		entities.DeliveryDelivered:
		return true
	default:
		return false
	}
}
