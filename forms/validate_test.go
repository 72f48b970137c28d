package forms

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMDSAnswers() AnswerMap {
	return AnswerMap{
		"cliente":           "Acme Corp",
		"contato":           "João",
		"local_obra":        "Site 12",
		"data_visita":       "2024-05-01",
		"tipo_servico":      []string{"Corte"},
		"descricao_servico": "Corte de parede diafragma",
		"resp_agua_energia": "Contratante",
		"resp_andaimes":     "Contratada",
		"resp_entulho":      "Contratada",
		"resp_sinalizacao":  "Contratante",
	}
}

func TestValidatePasses(t *testing.T) {
	assert.NoError(t, Validate(MDSForm(), validMDSAnswers()))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	answers := validMDSAnswers()
	delete(answers, "cliente")
	delete(answers, "local_obra")
	delete(answers, "data_visita")

	err := Validate(MDSForm(), answers)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 3)

	// all three violations are named, not just the first
	msg := err.Error()
	assert.Contains(t, msg, "Cliente")
	assert.Contains(t, msg, "Local da obra")
	assert.Contains(t, msg, "Data da visita")
}

func TestValidateMalformedDate(t *testing.T) {
	answers := validMDSAnswers()
	answers["data_visita"] = "01/05/2024"

	err := Validate(MDSForm(), answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data inválida")
}

func TestValidateMalformedTaxID(t *testing.T) {
	answers := validMDSAnswers()
	answers["cnpj"] = "123"

	err := Validate(MDSForm(), answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CNPJ inválido")
}

func TestValidateMatrixRequiresEveryRow(t *testing.T) {
	answers := validMDSAnswers()
	delete(answers, "resp_entulho")

	err := Validate(MDSForm(), answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Matriz de responsabilidades")
}

func TestValidateSkipsInactiveSections(t *testing.T) {
	// report-only questions are not validated in the request flow
	answers := AnswerMap{
		"tipo_fluxo":  "Solicitar visita",
		"cliente":     "Acme",
		"local_obra":  "Site 12",
		"motivo":      "Avaliação de escopo",
		"data_visita": "2024-05-01",
	}
	assert.NoError(t, Validate(VisitsForm(), answers))
}

func TestValidateDraftIsRelaxed(t *testing.T) {
	// missing required fields are fine in a draft
	assert.NoError(t, ValidateDraft(MDSForm(), AnswerMap{"cliente": "Acme"}))

	// but present values still have to be well formed
	err := ValidateDraft(MDSForm(), AnswerMap{"data_visita": "not a date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data inválida")
}
