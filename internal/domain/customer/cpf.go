package customer

import "strings"

// NormalizeCPF strips the punctuation of a formatted CPF ("529.982.247-25").
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF checks length and both mod-11 check digits. Sequences of a
// single repeated digit pass the checksum but are not issued, so they are
// rejected too.
func IsValidCPF(cpf string) bool {
	trimmed := strings.TrimSpace(cpf)
	for _, r := range trimmed {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return false
		}
	}

	digits := NormalizeCPF(trimmed)
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

func checkDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}
