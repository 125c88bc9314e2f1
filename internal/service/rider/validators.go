package rider

import (
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

func isValidStatus(status entities.RiderStatusType) bool {
	switch status {
	case entities.RiderPending, entities.RiderApproved, entities.RiderRejected:
		return true
	default:
		return false
	}
}

func isValidWorkStatus(status entities.RiderWorkStatusType) bool {
	switch status {
	case entities.RiderWorkUnset, entities.RiderWorkAvailable, entities.RiderWorkInDelivery:
		return true
	default:
		return false
	}
}
