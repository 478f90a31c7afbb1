package domain

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^\+375\d{9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidNumericID reports whether id is 6 to 8 ASCII digits.
func ValidNumericID(id string) bool {
	if len(id) < 6 || len(id) > 8 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidPhone reports whether phone is +375 followed by exactly 9 digits.
func ValidPhone(phone string) bool { return phonePattern.MatchString(phone) }

// ValidEmail reports whether email matches the accepted address shape.
func ValidEmail(email string) bool { return emailPattern.MatchString(email) }
