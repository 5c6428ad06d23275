package zellij

import "github.com/charmbracelet/x/ansi"

// StripANSI removes the escape sequences zellij uses to colour its
// list-sessions output.
func StripANSI(s string) string {
	if s == "" {
		return s
	}
	return ansi.Strip(s)
}
