package mask

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Kind selects the display mask of a form field. Masks are pure and
// idempotent: applying a mask to its own output is a no-op.
type Kind string

const (
	None      Kind = ""
	Phone     Kind = "phone"
	CPF       Kind = "cpf"
	CNPJ      Kind = "cnpj"
	CPFOrCNPJ Kind = "cpf-cnpj"
	CEP       Kind = "cep"
	Currency  Kind = "currency"
	Number    Kind = "number"
	Decimal   Kind = "decimal"
)

// Apply formats the raw input for display. Non-significant characters in
// raw are discarded first, so partially masked input is accepted.
func Apply(raw string, kind Kind) string {
	switch kind {
	case Phone:
		return phone(digits(raw))
	case CPF:
		return cpf(clip(digits(raw), 11))
	case CNPJ:
		return cnpj(clip(digits(raw), 14))
	case CPFOrCNPJ:
		d := digits(raw)
		if len(d) <= 11 {
			return cpf(d)
		}
		return cnpj(clip(d, 14))
	case CEP:
		return cep(clip(digits(raw), 8))
	case Currency:
		return currency(digits(raw))
	case Number:
		return digits(raw)
	case Decimal:
		return decimalFilter(raw)
	default:
		return raw
	}
}

// Remove inverts Apply back to the canonical unmasked digit string.
func Remove(masked string, kind Kind) string {
	switch kind {
	case Phone, CPF, CNPJ, CPFOrCNPJ, CEP, Currency, Number:
		return digits(masked)
	case Decimal:
		return decimalFilter(masked)
	default:
		return masked
	}
}

// CentsFromDecimal converts a decimal amount ("1234.56", "1.234,56",
// "1,234.56") to the canonical integer-cents digit string ("123456").
// This conversion happens exactly once, at the field binding boundary.
func CentsFromDecimal(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	// the rightmost of ',' and '.' is the decimal mark, the other one
	// groups thousands; repeated decimal marks fail the parse below
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot > comma:
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", errors.Wrap(err, "mask.cents.parse")
	}
	if d.IsNegative() {
		return "", errors.New("mask.cents.negative")
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).String(), nil
}

// DecimalFromCents converts an integer-cents digit string back to a plain
// decimal amount with two places ("123456" -> "1234.56").
func DecimalFromCents(cents string) string {
	cents = digits(cents)
	if cents == "" {
		return ""
	}
	d, err := decimal.NewFromString(cents)
	if err != nil {
		return ""
	}
	return d.Div(decimal.NewFromInt(100)).StringFixed(2)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// progressive grouping: (DD) DDDD-DDDD, or (DD) DDDDD-DDDD for 11 digits
func phone(d string) string {
	d = clip(d, 11)
	switch {
	case d == "":
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// DDD.DDD.DDD-DD
func cpf(d string) string {
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// DD.DDD.DDD/DDDD-DD
func cnpj(d string) string {
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 5:
		return d[:2] + "." + d[2:]
	case len(d) <= 8:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case len(d) <= 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	default:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
}

// DDDDD-DDD
func cep(d string) string {
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// currency formats an integer-cents digit string as a pt-BR amount with
// two decimals and '.' thousands separators ("123456" -> "1.234,56").
func currency(cents string) string {
	if cents == "" {
		return ""
	}
	cents = strings.TrimLeft(cents, "0")
	for len(cents) < 3 {
		cents = "0" + cents
	}

	whole, frac := cents[:len(cents)-2], cents[len(cents)-2:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "," + frac
}

// decimalFilter keeps digits and the first decimal point only.
func decimalFilter(s string) string {
	s = strings.Replace(s, ",", ".", 1)
	var b strings.Builder
	seenPoint := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
