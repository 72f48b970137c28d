package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidrodema/obra-forms/forms/mask"
)

func TestFieldSetStripsMask(t *testing.T) {
	answers := AnswerMap{}
	f := NewField(Question{ID: "tel", Type: Text, Mask: mask.Phone}, answers)

	require.NoError(t, f.Set("(11) 99887-7665"))
	assert.Equal(t, "11998877665", answers.String("tel"))
	assert.Equal(t, "(11) 99887-7665", f.Get())
}

func TestFieldNumberRejectsNonDigits(t *testing.T) {
	answers := AnswerMap{}
	f := NewField(Question{ID: "n", Type: Text, Mask: mask.Number}, answers)

	assert.Error(t, f.Set("12a"))
	assert.True(t, answers.Empty("n"))

	require.NoError(t, f.Set("42"))
	assert.Equal(t, "42", answers.String("n"))
}

func TestFieldNumberClampsOnChange(t *testing.T) {
	answers := AnswerMap{}
	f := NewField(Question{ID: "n", Type: Text, Mask: mask.Number, Min: intp(10), Max: intp(100)}, answers)

	require.NoError(t, f.Set("5"))
	assert.Equal(t, "10", answers.String("n"))

	require.NoError(t, f.Set("500"))
	assert.Equal(t, "100", answers.String("n"))

	require.NoError(t, f.Set("50"))
	assert.Equal(t, "50", answers.String("n"))
}

func TestFieldCurrencyStoresCents(t *testing.T) {
	answers := AnswerMap{}
	f := NewField(Question{ID: "valor", Type: Text, Mask: mask.Currency}, answers)

	require.NoError(t, f.Set("1234.56"))
	assert.Equal(t, "123456", answers.String("valor"))
	assert.Equal(t, "1.234,56", f.Get())

	// pt-BR formatted input is accepted at the same boundary
	require.NoError(t, f.Set("1.234,56"))
	assert.Equal(t, "123456", answers.String("valor"))

	assert.Error(t, f.Set("abc"))
}

func TestFieldCheckboxToggle(t *testing.T) {
	answers := AnswerMap{}
	f := NewField(Question{ID: "servicos", Type: Checkbox, Options: []string{"A", "B", "C"}}, answers)

	f.Toggle("A")
	f.Toggle("B")
	assert.ElementsMatch(t, []string{"A", "B"}, answers.Strings("servicos"))

	// toggling twice removes; no duplicates ever
	f.Toggle("A")
	assert.ElementsMatch(t, []string{"B"}, answers.Strings("servicos"))
	f.Toggle("B")
	f.Toggle("B")
	assert.ElementsMatch(t, []string{"B"}, answers.Strings("servicos"))
}

func TestFieldMatrix(t *testing.T) {
	answers := AnswerMap{}
	q := Question{ID: "resp", Type: Matrix,
		MatrixRows:    []MatrixRow{{Label: "Água", Key: "agua"}, {Label: "Acesso", Key: "acesso"}},
		MatrixColumns: []string{"Contratante", "Contratada"}}
	f := NewField(q, answers)

	require.NoError(t, f.SetMatrix("agua", "Contratada"))
	assert.Equal(t, "Contratada", answers.String("resp_agua"))

	assert.Error(t, f.SetMatrix("inexistente", "Contratada"))

	plain := NewField(Question{ID: "x", Type: Text}, answers)
	assert.Error(t, plain.SetMatrix("agua", "Contratada"))
}
