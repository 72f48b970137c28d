package forms

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/forms/mask"
)

// Field binds one question to an answer map: the rendering side of the
// engine. Set passes raw input through the question's mask before storing;
// Get returns the stored value formatted for display. Monetary values are
// stored as integer cents and converted exactly once, here.
type Field struct {
	Question Question
	answers  AnswerMap
}

func NewField(q Question, answers AnswerMap) Field {
	return Field{Question: q, answers: answers}
}

// Get returns the display value of the field.
func (f Field) Get() string {
	raw := f.answers.String(f.Question.ID)
	return mask.Apply(raw, f.Question.Mask)
}

// GetAll returns the selected options of a checkbox field.
func (f Field) GetAll() []string {
	return f.answers.Strings(f.Question.ID)
}

// Set normalizes raw input and stores it. Number-masked fields reject
// non-digit input entirely and clamp to the declared bounds on change,
// not on blur. Currency fields accept a decimal string at the boundary
// and store integer cents.
func (f Field) Set(raw string) error {
	q := f.Question
	switch q.Mask {
	case mask.Number:
		value := mask.Remove(raw, mask.Number)
		if value != raw {
			return errors.Errorf("field %s: non-numeric input", q.ID)
		}
		f.answers[q.ID] = f.clamp(value)
	case mask.Currency:
		cents, err := mask.CentsFromDecimal(raw)
		if err != nil {
			return errors.Wrapf(err, "field %s", q.ID)
		}
		f.answers[q.ID] = cents
	default:
		f.answers[q.ID] = mask.Remove(raw, q.Mask)
	}
	return nil
}

// Toggle adds or removes an option of a checkbox field. Set semantics: no
// duplicates; removal and re-adding may reorder.
func (f Field) Toggle(option string) {
	current := f.answers.Strings(f.Question.ID)
	for i, o := range current {
		if o == option {
			f.answers[f.Question.ID] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	f.answers[f.Question.ID] = append(current, option)
}

// SetMatrix records the chosen column of one matrix row under the sub-key
// "<questionId>_<rowKey>".
func (f Field) SetMatrix(rowKey, column string) error {
	q := f.Question
	if q.Type != Matrix {
		return errors.Errorf("field %s: not a matrix question", q.ID)
	}
	found := false
	for _, row := range q.MatrixRows {
		if row.Key == rowKey {
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("field %s: unknown matrix row %q", q.ID, rowKey)
	}
	f.answers[q.SubKey(rowKey)] = column
	return nil
}

func (f Field) clamp(value string) string {
	q := f.Question
	if value == "" || (q.Min == nil && q.Max == nil) {
		return value
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return value
	}
	if q.Min != nil && n < *q.Min {
		n = *q.Min
	}
	if q.Max != nil && n > *q.Max {
		n = *q.Max
	}
	return strconv.Itoa(n)
}
