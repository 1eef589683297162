package contact

import "regexp"

// emailPattern is the same local@domain.tld check the frontend applies on
// every keystroke. Deliverability is the backend's job; this only rejects
// obviously malformed addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the address matches the local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
