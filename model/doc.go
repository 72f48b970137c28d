package model

import (
	"time"

	"github.com/hidrodema/obra-forms/store"
)

// Doc maps the Record to its document-store shape. Audit timestamps are
// owned by the store and never written here.
func (r Record) Doc() store.Doc {
	return store.Doc{
		"number":       r.Number,
		"formId":       r.FormID,
		"status":       r.Status,
		"client":       r.Client,
		"workLocation": r.WorkLocation,
		"visitDate":    r.VisitDate,
		"formData":     r.FormData,
	}
}

func RecordFromDoc(doc store.Doc) Record {
	r := Record{
		ID:           str(doc["id"]),
		Number:       str(doc["number"]),
		FormID:       str(doc["formId"]),
		Status:       str(doc["status"]),
		Client:       str(doc["client"]),
		WorkLocation: str(doc["workLocation"]),
		VisitDate:    str(doc["visitDate"]),
		CreatedAt:    stamp(doc["createdAt"]),
		UpdatedAt:    stamp(doc["updatedAt"]),
	}
	if data, ok := doc["formData"].(map[string]any); ok {
		r.FormData = data
	} else {
		r.FormData = map[string]any{}
	}
	return r
}

func (c Comment) Doc() store.Doc {
	return store.Doc{
		"recordId": c.RecordID,
		"author":   c.Author,
		"text":     c.Text,
	}
}

func CommentFromDoc(doc store.Doc) Comment {
	return Comment{
		ID:        str(doc["id"]),
		RecordID:  str(doc["recordId"]),
		Author:    str(doc["author"]),
		Text:      str(doc["text"]),
		CreatedAt: stamp(doc["createdAt"]),
	}
}

func (q Quotation) Doc() store.Doc {
	return store.Doc{
		"recordId": q.RecordID,
		"supplier": q.Supplier,
		"amount":   q.Amount,
		"notes":    q.Notes,
	}
}

func QuotationFromDoc(doc store.Doc) Quotation {
	return Quotation{
		ID:        str(doc["id"]),
		RecordID:  str(doc["recordId"]),
		Supplier:  str(doc["supplier"]),
		Amount:    str(doc["amount"]),
		Notes:     str(doc["notes"]),
		CreatedAt: stamp(doc["createdAt"]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func stamp(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
