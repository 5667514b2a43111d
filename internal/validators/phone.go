package validators

import "strings"

const minWhatsAppDigits = 10

// NormalizeWhatsApp reduz o telefone informado aos dígitos.
func NormalizeWhatsApp(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidWhatsApp valida o telefone já normalizado (DDD + número).
func IsValidWhatsApp(digits string) bool {
	return len(digits) >= minWhatsAppDigits
}
