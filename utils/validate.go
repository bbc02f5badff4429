package utils

import "regexp"

// emailPattern matches a conventional local@domain.tld shape. The local part
// allows letters, digits and ._%+-; the domain must contain at least one dot
// followed by a letters-only suffix.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]+$`)

// ValidateEmail reports whether s looks like an email address. Malformed
// input is false, never an error. No network lookup or normalization is done.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}
