package forms

import "github.com/hidrodema/obra-forms/forms/mask"

type FieldType string

const (
	Text     FieldType = "text"
	TextArea FieldType = "textarea"
	Radio    FieldType = "radio"
	Checkbox FieldType = "checkbox"
	Select   FieldType = "select"
	Date     FieldType = "date"
	Time     FieldType = "time"
	Matrix   FieldType = "responsibility-matrix"
)

// MatrixRow is one item of a responsibility matrix. Each row crossed with
// the column set yields an independently keyed sub-answer.
type MatrixRow struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// Question is a single declarative form field. Questions are static data;
// nothing mutates them at runtime.
type Question struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Section  string    `json:"section"`
	Options  []string  `json:"options,omitempty"`
	Mask     mask.Kind `json:"mask,omitempty"`

	// numeric bounds, clamped on change for Number-masked fields
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`

	MatrixRows    []MatrixRow `json:"matrixRows,omitempty"`
	MatrixColumns []string    `json:"matrixColumns,omitempty"`
}

// SubKey is the answer key of one matrix row: "<questionId>_<rowKey>".
func (q Question) SubKey(rowKey string) string {
	return q.ID + "_" + rowKey
}

// AnswerKeys lists every answer-map key this question owns: the plain id,
// or one sub-key per matrix row.
func (q Question) AnswerKeys() []string {
	if q.Type != Matrix {
		return []string{q.ID}
	}
	keys := make([]string, len(q.MatrixRows))
	for i, row := range q.MatrixRows {
		keys[i] = q.SubKey(row.Key)
	}
	return keys
}
