package conversation

import "regexp"

// emailRe requires local@domain.tld with a 2+ letter TLD.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s looks like a deliverable address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
