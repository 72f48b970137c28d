package pdf

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/model"
)

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render("Relatório de visita", []Entry{
		{Label: "Cliente", Value: "ACME Ltda"},
		{Label: "Observações", Value: ""},
	})
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderPaginatesLongDocuments(t *testing.T) {
	short, err := Render("Curto", []Entry{{Label: "A", Value: "1"}})
	require.NoError(t, err)

	entries := make([]Entry, 200)
	for i := range entries {
		entries[i] = Entry{Label: fmt.Sprintf("Campo %d", i), Value: "valor"}
	}
	long, err := Render("Longo", entries)
	require.NoError(t, err)

	assert.Equal(t, "%PDF", string(long[:4]))
	assert.Greater(t, len(long), len(short))
}

func TestRenderRecord(t *testing.T) {
	form := forms.MDSForm()
	rec := &model.Record{
		Number:       "MDS-20240115-00042",
		Status:       "awaiting-quotes",
		Client:       "ACME Ltda",
		WorkLocation: "Galpão 3",
		CreatedAt:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		FormData: map[string]any{
			"cliente":           "ACME Ltda",
			"resp_agua_energia": "Contratante",
			"campo_legado":      "valor antigo", // no longer declared by the form
		},
	}

	out, err := RenderRecord(form, rec)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
