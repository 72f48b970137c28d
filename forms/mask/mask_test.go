package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	cases := []struct {
		kind Kind
		raw  string
		want string
	}{
		{Phone, "1199887766", "(11) 9988-7766"},
		{Phone, "11998877665", "(11) 99887-7665"},
		{Phone, "11", "(11"},
		{Phone, "1145", "(11) 45"},
		{Phone, "", ""},
		{CPF, "12345678901", "123.456.789-01"},
		{CPF, "123456", "123.456"},
		{CPF, "1234567", "123.456.7"},
		{CNPJ, "12345678000195", "12.345.678/0001-95"},
		{CNPJ, "1234567800", "12.345.678/00"},
		{CPFOrCNPJ, "12345678901", "123.456.789-01"},
		{CPFOrCNPJ, "12345678000195", "12.345.678/0001-95"},
		{CEP, "04571010", "04571-010"},
		{CEP, "0457", "0457"},
		{Currency, "123456", "1.234,56"},
		{Currency, "5", "0,05"},
		{Currency, "50", "0,50"},
		{Currency, "1234567890", "12.345.678,90"},
		{Currency, "", ""},
		{Number, "12a3", "123"},
		{Decimal, "12,5", "12.5"},
		{Decimal, "1.2.3", "1.23"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Apply(c.raw, c.kind), "Apply(%q, %s)", c.raw, c.kind)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	kinds := []Kind{Phone, CPF, CNPJ, CPFOrCNPJ, CEP, Currency, Number, Decimal}
	inputs := []string{"11998877665", "12345678901", "12345678000195", "04571010", "123456", "", "5"}

	for _, kind := range kinds {
		for _, raw := range inputs {
			once := Apply(raw, kind)
			assert.Equal(t, once, Apply(once, kind), "Apply twice (%q, %s)", raw, kind)
		}
	}
}

func TestRemoveInvertsApply(t *testing.T) {
	cases := []struct {
		kind   Kind
		digits string
	}{
		{Phone, "1199887766"},
		{Phone, "11998877665"},
		{CPF, "12345678901"},
		{CNPJ, "12345678000195"},
		{CEP, "04571010"},
	}

	for _, c := range cases {
		assert.Equal(t, c.digits, Remove(Apply(c.digits, c.kind), c.kind), "round trip (%q, %s)", c.digits, c.kind)
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	assert.Equal(t, "123456", Remove(Apply("123456", Currency), Currency))
	// leading zeros are not significant in the canonical cents value
	assert.Equal(t, "123456", Remove(Apply("0123456", Currency), Currency))
}

func TestCentsFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "123456"},
		{"1.234,56", "123456"},
		{"1,234.56", "123456"},
		{"1.234.567,89", "123456789"},
		{"1,234,567.89", "123456789"},
		{"0.05", "5"},
		{"10", "1000"},
		{"", ""},
	}
	for _, c := range cases {
		got, err := CentsFromDecimal(c.in)
		require.NoError(t, err, "CentsFromDecimal(%q)", c.in)
		assert.Equal(t, c.want, got, "CentsFromDecimal(%q)", c.in)
	}

	_, err := CentsFromDecimal("abc")
	assert.Error(t, err)
	_, err = CentsFromDecimal("-1")
	assert.Error(t, err)
	// repeated decimal marks are ambiguous, not coerced
	_, err = CentsFromDecimal("1,234,56")
	assert.Error(t, err)
}

func TestDecimalFromCents(t *testing.T) {
	assert.Equal(t, "1234.56", DecimalFromCents("123456"))
	assert.Equal(t, "0.05", DecimalFromCents("5"))
	assert.Equal(t, "", DecimalFromCents(""))
}
