package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsForSectionFiltersInDeclarationOrder(t *testing.T) {
	form := MDSForm()

	for _, section := range form.Sections {
		got := form.QuestionsForSection(section)
		require.NotEmpty(t, got, "section %s", section)

		// only questions of that section, in declaration order
		var declared []string
		for _, q := range form.Questions {
			if q.Section == section {
				declared = append(declared, q.ID)
			}
		}
		var ids []string
		for _, q := range got {
			assert.Equal(t, section, q.Section)
			ids = append(ids, q.ID)
		}
		assert.Equal(t, declared, ids)
	}

	assert.Empty(t, form.QuestionsForSection("nonexistent"))
}

func TestActiveSectionsStaticForm(t *testing.T) {
	form := MDSForm()
	assert.Equal(t, form.Sections, form.ActiveSections(AnswerMap{}))
	assert.Equal(t, form.Sections, form.ActiveSections(AnswerMap{"cliente": "Acme"}))
}

func TestActiveSectionsBranchedForm(t *testing.T) {
	form := VisitsForm()

	// selector unset: default partial list
	assert.Equal(t, []string{"fluxo"}, form.ActiveSections(AnswerMap{}))

	// unknown selector value also resolves to the default list
	assert.Equal(t, []string{"fluxo"}, form.ActiveSections(AnswerMap{"tipo_fluxo": "???"}))

	request := form.ActiveSections(AnswerMap{"tipo_fluxo": "Solicitar visita"})
	assert.Equal(t, []string{"fluxo", "solicitacao", "agendamento"}, request)

	report := form.ActiveSections(AnswerMap{"tipo_fluxo": "Relatar visita"})
	assert.Equal(t, []string{"fluxo", "relatorio", "conclusao"}, report)
}

func TestFlowOf(t *testing.T) {
	form := VisitsForm()
	assert.Equal(t, FlowNone, form.FlowOf(AnswerMap{}))
	assert.Equal(t, FlowVisitRequest, form.FlowOf(AnswerMap{"tipo_fluxo": "Solicitar visita"}))
	assert.Equal(t, FlowVisitReport, form.FlowOf(AnswerMap{"tipo_fluxo": "Relatar visita"}))

	assert.Equal(t, FlowNone, MDSForm().FlowOf(AnswerMap{}))
}

func TestMatrixAnswerKeys(t *testing.T) {
	form := MDSForm()
	q, ok := form.Question("resp")
	require.True(t, ok)

	keys := q.AnswerKeys()
	assert.Equal(t, []string{
		"resp_agua_energia",
		"resp_andaimes",
		"resp_entulho",
		"resp_sinalizacao",
	}, keys)
}

func TestValidStatus(t *testing.T) {
	form := MDSForm()
	assert.True(t, form.ValidStatus("awaiting-quotes"))
	assert.False(t, form.ValidStatus("banana"))
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	require.Len(t, reg.All(), 4)

	for _, id := range []string{"mds", "visitas", "servicos", "diario"} {
		f, ok := reg.Get(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, f.Collection)
		assert.NotEmpty(t, f.RecordPrefix)
		assert.NotEmpty(t, f.InitialStatus)
		assert.True(t, f.ValidStatus(f.InitialStatus))
		assert.True(t, f.ValidStatus(f.DraftStatus))
	}
}
