package utils

import "strings"

// SanitizeInput trims and removes angle brackets from free text.
func SanitizeInput(s string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(s))
}
