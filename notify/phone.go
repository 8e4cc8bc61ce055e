package notify

import "strings"

// NormalizePhone brings a raw phone string into international-dialing form.
// A number already starting with "+" passes through unchanged; anything else
// is reduced to its digits and prefixed with "+". An empty input yields ""
// and the caller must skip sending.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "+" + b.String()
}
