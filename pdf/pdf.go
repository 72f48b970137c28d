// Package pdf renders a record as a paginated key:value document.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/model"
)

// Entry is one label:value line of the export.
type Entry struct {
	Label string
	Value string
}

// breakAt is the vertical cursor threshold (mm on A4) past which a new
// page starts.
const breakAt = 270.0

// Render produces the PDF bytes for a titled list of entries.
func Render(title string, entries []Entry) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(190, 9, title, "", "L", false)
	doc.Ln(4)

	for _, e := range entries {
		if doc.GetY() > breakAt {
			doc.AddPage()
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.MultiCell(190, 6, e.Label, "", "L", false)
		doc.SetFont("Helvetica", "", 10)
		value := e.Value
		if value == "" {
			value = "-"
		}
		doc.MultiCell(190, 6, value, "", "L", false)
		doc.Ln(2)
	}

	var buf bytes.Buffer
	err := doc.Output(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "pdf.render")
	}
	return buf.Bytes(), nil
}

// RenderRecord lays out a record's form data using the form's question
// labels in declaration order, followed by any answers the form no longer
// declares.
func RenderRecord(form *forms.Form, rec *model.Record) ([]byte, error) {
	answers := forms.AnswerMap(rec.FormData)

	entries := []Entry{
		{Label: "Número", Value: rec.Number},
		{Label: "Status", Value: rec.Status},
		{Label: "Cliente", Value: rec.Client},
		{Label: "Local", Value: rec.WorkLocation},
	}
	if !rec.CreatedAt.IsZero() {
		entries = append(entries, Entry{Label: "Criado em", Value: rec.CreatedAt.Format("02/01/2006 15:04")})
	}

	seen := map[string]bool{}
	for _, q := range form.Questions {
		for _, key := range q.AnswerKeys() {
			seen[key] = true
		}
		if q.Type == forms.Matrix {
			for _, row := range q.MatrixRows {
				entries = append(entries, Entry{
					Label: q.Label + " — " + row.Label,
					Value: answers.String(q.SubKey(row.Key)),
				})
			}
			continue
		}
		entries = append(entries, Entry{Label: q.Label, Value: answerText(answers, q.ID)})
	}

	extras := []string{}
	for key := range answers {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		entries = append(entries, Entry{Label: key, Value: answerText(answers, key)})
	}

	title := fmt.Sprintf("%s — %s", form.Title, rec.Number)
	return Render(title, entries)
}

func answerText(answers forms.AnswerMap, key string) string {
	if list := answers.Strings(key); list != nil {
		return strings.Join(list, ", ")
	}
	return answers.String(key)
}
