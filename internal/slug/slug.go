package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// remove marcas de acentuação (é → e, ã → a, ç → c)
var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Derive gera o identificador público de um negócio a partir do nome:
// minúsculas, sem acentos, sequências não alfanuméricas viram um único
// hífen, sem hífens nas pontas. Determinístico e idempotente.
func Derive(name string) string {
	s, _, err := transform.String(stripAccents, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	pendingHyphen := false

	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// WithSuffix resolve colisão de slug anexando um sufixo numérico.
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
