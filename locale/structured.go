package locale

import (
	"fmt"
	"strings"
)

const structuredBaseModulo = 10_000_000_000

// GenerateStructuredReference builds a Belgian structured communication
// ("+++123/4567/89012+++") from base. Only the last ten digits of base are
// kept; the two check digits are base mod 97, with 97 standing for zero.
func GenerateStructuredReference(base uint64) string {
	base %= structuredBaseModulo
	digits := fmt.Sprintf("%010d%02d", base, structuredCheck(base))
	return "+++" + digits[:3] + "/" + digits[3:7] + "/" + digits[7:] + "+++"
}

// IsValidStructuredReference accepts the "+++…+++" and "***…***" spellings
// as well as the bare twelve digits.
func IsValidStructuredReference(ref string) bool {
	digits := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '+' || r == '*' || r == '/' || r == ' ':
			return -1
		default:
			return 'x'
		}
	}, ref)
	if len(digits) != 12 || strings.ContainsRune(digits, 'x') {
		return false
	}
	var base uint64
	for _, r := range digits[:10] {
		base = base*10 + uint64(r-'0')
	}
	check := uint64(digits[10]-'0')*10 + uint64(digits[11]-'0')
	return check == structuredCheck(base)
}

func structuredCheck(base uint64) uint64 {
	if c := base % 97; c != 0 {
		return c
	}
	return 97
}
