package model

import (
	"fmt"
	"math/rand"
	"time"
)

// Record is a persisted business document produced by a completed wizard
// submission. Denormalized fields are extracted from specific answers for
// querying and display; the full answer map travels in FormData.
type Record struct {
	ID           string         `json:"id,omitempty"`
	Number       string         `json:"number"`
	FormID       string         `json:"formId"`
	Status       string         `json:"status"`
	Client       string         `json:"client"`
	WorkLocation string         `json:"workLocation"`
	VisitDate    string         `json:"visitDate"`
	FormData     map[string]any `json:"formData"`
	CreatedAt    time.Time      `json:"createdAt,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt,omitempty"`
}

// RecordSummary is the list/history projection of a Record.
type RecordSummary struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Status       string    `json:"status"`
	Client       string    `json:"client"`
	WorkLocation string    `json:"workLocation"`
	VisitDate    string    `json:"visitDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r Record) Summary() RecordSummary {
	return RecordSummary{
		ID:           r.ID,
		Number:       r.Number,
		Status:       r.Status,
		Client:       r.Client,
		WorkLocation: r.WorkLocation,
		VisitDate:    r.VisitDate,
		CreatedAt:    r.CreatedAt,
	}
}

// Comment is owned by exactly one Record and lives outside the Record's
// own update lifecycle.
type Comment struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"recordId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Quotation is a supplier quote attached to one Record. Amount is the
// canonical integer-cents digit string, same convention as currency
// answers.
type Quotation struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"recordId"`
	Supplier  string    `json:"supplier"`
	Amount    string    `json:"amount"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// NewRecordNumber builds the human-readable identifier <PREFIX>-<YYYYMMDD>-<RANDOM5>.
// Uniqueness rests on the random suffix alone.
func NewRecordNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%05d", prefix, now.Format("20060102"), rand.Intn(100000))
}
