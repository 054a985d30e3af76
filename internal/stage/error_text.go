package stage

import "strings"

// SanitizeErrorMessage collapses whitespace so an error prints on one line.
func SanitizeErrorMessage(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if s == "" {
		return "error"
	}
	return s
}
