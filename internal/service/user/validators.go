package user

import (
	"net/mail"
	"strings"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidRole(role string) bool {
	switch role {
	case "user", "admin", "rider":
		return true
	default:
		return false
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
