package forms

import (
	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/model"
)

// Wizard drives one form through its sections: a state machine over
// {current section index, answer map}. Navigation clamps the index into
// the active section range; answering the flow selector recomputes the
// range, re-clamps, and drops any loaded cross-reference state.
// Persistence is not the wizard's concern.
type Wizard struct {
	form    *Form
	answers AnswerMap
	index   int

	// edit mode: set when an existing record was loaded
	editID     string
	editNumber string

	// cross-reference state, cleared on flow switch
	linked *model.Record
}

func NewWizard(form *Form) *Wizard {
	return &Wizard{form: form, answers: AnswerMap{}}
}

func (w *Wizard) Form() *Form           { return w.form }
func (w *Wizard) Answers() AnswerMap    { return w.answers }
func (w *Wizard) Index() int            { return w.index }
func (w *Wizard) Sections() []string    { return w.form.ActiveSections(w.answers) }
func (w *Wizard) Editing() bool         { return w.editID != "" }
func (w *Wizard) EditID() string        { return w.editID }
func (w *Wizard) EditNumber() string    { return w.editNumber }
func (w *Wizard) Linked() *model.Record { return w.linked }

// Section returns the name of the current section.
func (w *Wizard) Section() string {
	return w.Sections()[w.index]
}

// Field binds a declared question to the wizard's answer map.
func (w *Wizard) Field(id string) (Field, error) {
	q, ok := w.form.Question(id)
	if !ok {
		return Field{}, errors.Errorf("wizard: unknown question %q", id)
	}
	return NewField(q, w.answers), nil
}

// Next advances one section; at the last section it is a no-op.
func (w *Wizard) Next() {
	if w.index < len(w.Sections())-1 {
		w.index++
	}
}

// Previous steps back one section; at section 0 it is a no-op.
func (w *Wizard) Previous() {
	if w.index > 0 {
		w.index--
	}
}

// JumpTo clamps out-of-bounds input instead of failing.
func (w *Wizard) JumpTo(j int) {
	w.index = clampIndex(j, len(w.Sections()))
}

// Answer stores a value through the question's field binding. When the
// flow selector changes, the active section set is recomputed, the index
// is clamped into the new range, and loaded cross-reference state is
// cleared.
func (w *Wizard) Answer(id string, raw string) error {
	field, err := w.Field(id)
	if err != nil {
		return err
	}
	err = field.Set(raw)
	if err != nil {
		return err
	}

	if w.form.Flow != nil && id == w.form.Flow.QuestionID {
		w.index = clampIndex(w.index, len(w.Sections()))
		w.linked = nil
	}
	return nil
}

// Link attaches a cross-referenced record (e.g. the visit a report files
// against).
func (w *Wizard) Link(rec *model.Record) {
	w.linked = rec
}

// Progress is purely derived, never stored.
func (w *Wizard) Progress() float64 {
	n := len(w.Sections())
	if n == 0 {
		return 0
	}
	return float64(w.index+1) / float64(n) * 100
}

// Load replaces the wizard state with a restored snapshot, clamping the
// section index into the restored active range.
func (w *Wizard) Load(answers AnswerMap, index int) {
	if answers == nil {
		answers = AnswerMap{}
	}
	w.answers = answers
	w.index = clampIndex(index, len(w.Sections()))
}

// Edit loads an existing record for re-submission: subsequent submits
// update in place, preserving identifier and creation timestamp.
func (w *Wizard) Edit(rec *model.Record) {
	w.Load(AnswerMap(rec.FormData).Clone(), 0)
	w.editID = rec.ID
	w.editNumber = rec.Number
}

// Reset returns the wizard to its initial state.
func (w *Wizard) Reset() {
	w.answers = AnswerMap{}
	w.index = 0
	w.editID = ""
	w.editNumber = ""
	w.linked = nil
}

func clampIndex(i, n int) int {
	if n < 1 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
