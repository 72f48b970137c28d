package forms

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/model"
	"github.com/hidrodema/obra-forms/store"
)

const (
	CommentsCollection   = "comments"
	QuotationsCollection = "quotations"
)

// Command is one optimistic mutation: Apply runs the local change before
// the remote call, Rollback undoes it when the call fails. Every
// optimistic mutation in the list view goes through this pair.
type Command interface {
	Apply()
	Rollback()
}

// ListView serves the record history of one form: summaries ordered by
// creation time descending, edit reload, cascading delete, and optimistic
// status changes over a local summary cache.
type ListView struct {
	form  *Form
	store DocumentStore

	mu    sync.Mutex
	cache []model.RecordSummary
}

func NewListView(form *Form, docs DocumentStore) *ListView {
	return &ListView{form: form, store: docs}
}

// List queries completed records, newest first, refreshing the local cache.
func (v *ListView) List(ctx context.Context) ([]model.RecordSummary, error) {
	docs, err := v.store.Query(ctx, v.form.Collection, nil, &store.Order{Field: "createdAt", Desc: true})
	if err != nil {
		return nil, errors.Wrap(err, "listview.query")
	}

	summaries := make([]model.RecordSummary, len(docs))
	for i, doc := range docs {
		summaries[i] = model.RecordFromDoc(doc).Summary()
	}

	v.mu.Lock()
	v.cache = summaries
	v.mu.Unlock()
	return summaries, nil
}

// Get loads one full record.
func (v *ListView) Get(ctx context.Context, id string) (*model.Record, error) {
	doc, err := v.store.GetByID(ctx, v.form.Collection, id)
	if err != nil {
		return nil, err
	}
	rec := model.RecordFromDoc(doc)
	return &rec, nil
}

// Edit reloads a record into a fresh wizard; a subsequent submit performs
// an update, not a create.
func (v *ListView) Edit(ctx context.Context, id string) (*Wizard, error) {
	rec, err := v.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	w := NewWizard(v.form)
	w.Edit(rec)
	return w, nil
}

// ChangeStatus applies the new status to the cached summary first, issues
// the store update, and rolls the cache back if the update fails.
func (v *ListView) ChangeStatus(ctx context.Context, id, newStatus string) error {
	if !v.form.ValidStatus(newStatus) {
		return errors.Errorf("listview: status %q not in %s vocabulary", newStatus, v.form.ID)
	}

	cmd := v.statusCommand(id, newStatus)
	cmd.Apply()

	err := v.store.Update(ctx, v.form.Collection, id, store.Doc{"status": newStatus})
	if err != nil {
		cmd.Rollback()
		return errors.Wrap(err, "listview.change_status")
	}
	return nil
}

// Delete removes a record and cascades to the comments and quotations
// referencing it.
func (v *ListView) Delete(ctx context.Context, id string) error {
	for _, collection := range []string{CommentsCollection, QuotationsCollection} {
		deps, err := v.store.Query(ctx, collection,
			&store.Filter{Field: "recordId", Value: id}, nil)
		if err != nil {
			return errors.Wrap(err, "listview.delete.dependents.query")
		}
		for _, dep := range deps {
			depID, _ := dep["id"].(string)
			err = v.store.Delete(ctx, collection, depID)
			if err != nil {
				return errors.Wrap(err, "listview.delete.dependents")
			}
		}
	}

	err := v.store.Delete(ctx, v.form.Collection, id)
	if err != nil {
		return errors.Wrap(err, "listview.delete")
	}

	v.mu.Lock()
	for i, s := range v.cache {
		if s.ID == id {
			v.cache = append(v.cache[:i:i], v.cache[i+1:]...)
			break
		}
	}
	v.mu.Unlock()
	return nil
}

// Comments lists the thread of one record, oldest first.
func (v *ListView) Comments(ctx context.Context, recordID string) ([]model.Comment, error) {
	docs, err := v.store.Query(ctx, CommentsCollection,
		&store.Filter{Field: "recordId", Value: recordID}, &store.Order{Field: "createdAt"})
	if err != nil {
		return nil, errors.Wrap(err, "listview.comments.query")
	}
	comments := make([]model.Comment, len(docs))
	for i, doc := range docs {
		comments[i] = model.CommentFromDoc(doc)
	}
	return comments, nil
}

// AddComment appends to a record's thread, independent of the record's own
// update lifecycle.
func (v *ListView) AddComment(ctx context.Context, c model.Comment) (string, error) {
	_, err := v.store.GetByID(ctx, v.form.Collection, c.RecordID)
	if err != nil {
		return "", err
	}
	id, err := v.store.Create(ctx, CommentsCollection, c.Doc())
	return id, errors.Wrap(err, "listview.comments.create")
}

// DeleteComment removes a single comment.
func (v *ListView) DeleteComment(ctx context.Context, commentID string) error {
	return v.store.Delete(ctx, CommentsCollection, commentID)
}

// Quotations lists the supplier quotes of one record, oldest first.
func (v *ListView) Quotations(ctx context.Context, recordID string) ([]model.Quotation, error) {
	docs, err := v.store.Query(ctx, QuotationsCollection,
		&store.Filter{Field: "recordId", Value: recordID}, &store.Order{Field: "createdAt"})
	if err != nil {
		return nil, errors.Wrap(err, "listview.quotations.query")
	}
	quotes := make([]model.Quotation, len(docs))
	for i, doc := range docs {
		quotes[i] = model.QuotationFromDoc(doc)
	}
	return quotes, nil
}

// AddQuotation attaches a supplier quote to a record. The amount is
// expected in canonical cents already.
func (v *ListView) AddQuotation(ctx context.Context, q model.Quotation) (string, error) {
	_, err := v.store.GetByID(ctx, v.form.Collection, q.RecordID)
	if err != nil {
		return "", err
	}
	id, err := v.store.Create(ctx, QuotationsCollection, q.Doc())
	return id, errors.Wrap(err, "listview.quotations.create")
}

// DeleteQuotation removes a single quotation.
func (v *ListView) DeleteQuotation(ctx context.Context, quotationID string) error {
	return v.store.Delete(ctx, QuotationsCollection, quotationID)
}

// Cached returns the current summary cache. Tests use it to observe
// optimistic state.
func (v *ListView) Cached() []model.RecordSummary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.RecordSummary(nil), v.cache...)
}

func (v *ListView) statusCommand(id, newStatus string) Command {
	return &statusChange{view: v, id: id, next: newStatus}
}

type statusChange struct {
	view *ListView
	id   string
	next string
	prev string
}

func (c *statusChange) Apply() {
	c.view.mu.Lock()
	defer c.view.mu.Unlock()
	for i := range c.view.cache {
		if c.view.cache[i].ID == c.id {
			c.prev = c.view.cache[i].Status
			c.view.cache[i].Status = c.next
			return
		}
	}
}

func (c *statusChange) Rollback() {
	c.view.mu.Lock()
	defer c.view.mu.Unlock()
	for i := range c.view.cache {
		if c.view.cache[i].ID == c.id && c.view.cache[i].Status == c.next {
			c.view.cache[i].Status = c.prev
			return
		}
	}
}
