package forms

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/draft"
	"github.com/hidrodema/obra-forms/model"
	"github.com/hidrodema/obra-forms/store"
)

// DocumentStore is the persistence surface the orchestrator talks to,
// satisfied by *store.Store.
type DocumentStore interface {
	Create(ctx context.Context, collection string, doc store.Doc) (string, error)
	Update(ctx context.Context, collection, id string, partial store.Doc) error
	Delete(ctx context.Context, collection, id string) error
	GetByID(ctx context.Context, collection, id string) (store.Doc, error)
	Query(ctx context.Context, collection string, filter *store.Filter, order *store.Order) ([]store.Doc, error)
}

// Orchestrator runs the draft and submit paths of one form: draft
// persistence, validate-then-persist submission, record mapping, and
// cleanup. Persistence failures leave the wizard's answers untouched so
// the user can retry.
type Orchestrator struct {
	form   *Form
	store  DocumentStore
	drafts draft.Store
	now    func() time.Time
}

func NewOrchestrator(form *Form, docs DocumentStore, drafts draft.Store) *Orchestrator {
	return &Orchestrator{form: form, store: docs, drafts: drafts, now: time.Now}
}

// SaveDraft persists the wizard's in-progress state. While the flow
// selector of a branched form is unset, only the local draft is written:
// no remote call, so users can save before committing to a flow. Once a
// flow is chosen (or the form is static) the record is created or updated
// remotely with the form's draft status, under the relaxed validator.
// The record's identity travels in the snapshot, so later draft saves
// and the final submit update this record in place, even across
// sessions.
func (o *Orchestrator) SaveDraft(ctx context.Context, w *Wizard) error {
	err := o.relink(w)
	if err != nil {
		return err
	}

	snap := o.snapshot(w)
	err = o.drafts.Save(o.form.ID, snap)
	if err != nil {
		return errors.Wrap(err, "orchestrator.draft.save")
	}

	if o.form.Flow != nil && o.form.FlowOf(w.Answers()) == FlowNone {
		return nil
	}

	err = ValidateDraft(o.form, w.Answers())
	if err != nil {
		return err
	}

	rec := o.buildRecord(w, o.form.DraftStatus)
	if w.Editing() {
		return errors.Wrap(
			o.store.Update(ctx, o.form.Collection, w.EditID(), rec.Doc()),
			"orchestrator.draft.update")
	}

	id, err := o.store.Create(ctx, o.form.Collection, rec.Doc())
	if err != nil {
		return errors.Wrap(err, "orchestrator.draft.create")
	}
	rec.ID = id
	w.editID = id
	w.editNumber = rec.Number

	snap.RecordID = id
	snap.RecordNumber = rec.Number
	return errors.Wrap(o.drafts.Save(o.form.ID, snap), "orchestrator.draft.save")
}

// RestoreDraft loads a saved draft into an empty wizard, re-clamping the
// restored section index into the active range and re-attaching the
// remote draft record, if one was already created. A wizard that already
// holds answers is left alone.
func (o *Orchestrator) RestoreDraft(w *Wizard) error {
	if len(w.Answers()) > 0 {
		return nil
	}
	snap, ok, err := o.drafts.Load(o.form.ID)
	if err != nil {
		return errors.Wrap(err, "orchestrator.draft.restore")
	}
	if !ok {
		return nil
	}
	w.Load(AnswerMap(snap.FormData), snap.CurrentSection)
	w.editID = snap.RecordID
	w.editNumber = snap.RecordNumber
	return nil
}

// Submit runs the full validator and, when clean, persists the record:
// create with a fresh record number, or update in place when editing
// (identifier and creation timestamp preserved, update timestamp
// refreshed by the store). On success the draft is cleared and the wizard
// reset; on a persistence failure the answers survive for a retry.
func (o *Orchestrator) Submit(ctx context.Context, w *Wizard) (*model.Record, error) {
	err := Validate(o.form, w.Answers())
	if err != nil {
		return nil, err
	}

	// a draft of this form may already own a remote record
	err = o.relink(w)
	if err != nil {
		return nil, err
	}

	rec := o.buildRecord(w, o.form.InitialStatus)

	if w.Editing() {
		rec.ID = w.EditID()
		err = o.store.Update(ctx, o.form.Collection, rec.ID, rec.Doc())
		if err != nil {
			return nil, errors.Wrap(err, "orchestrator.submit.update")
		}
	} else {
		rec.ID, err = o.store.Create(ctx, o.form.Collection, rec.Doc())
		if err != nil {
			return nil, errors.Wrap(err, "orchestrator.submit.create")
		}
	}

	err = o.drafts.Clear(o.form.ID)
	if err != nil {
		return nil, errors.Wrap(err, "orchestrator.submit.clear_draft")
	}
	w.Reset()
	return &rec, nil
}

// relink attaches the remote draft record of this form to a wizard that
// does not hold one yet, so a session restart (or a stateless request)
// keeps updating the same record instead of creating ghosts.
func (o *Orchestrator) relink(w *Wizard) error {
	if w.Editing() {
		return nil
	}
	snap, ok, err := o.drafts.Load(o.form.ID)
	if err != nil {
		return errors.Wrap(err, "orchestrator.draft.load")
	}
	if ok && snap.RecordID != "" {
		w.editID = snap.RecordID
		w.editNumber = snap.RecordNumber
	}
	return nil
}

func (o *Orchestrator) snapshot(w *Wizard) draft.Snapshot {
	return draft.Snapshot{
		FormData:       w.Answers(),
		CurrentSection: w.Index(),
		RecordID:       w.EditID(),
		RecordNumber:   w.EditNumber(),
	}
}

func (o *Orchestrator) buildRecord(w *Wizard, status string) model.Record {
	answers := w.Answers()

	number := w.EditNumber()
	if number == "" {
		number = model.NewRecordNumber(o.form.RecordPrefix, o.now())
	}

	client := answers.String(o.form.Denorm.ClientKey)
	if client == "" {
		client = DefaultClient
	}
	location := answers.String(o.form.Denorm.WorkLocationKey)
	if location == "" {
		location = DefaultWorkLocation
	}

	return model.Record{
		Number:       number,
		FormID:       o.form.ID,
		Status:       status,
		Client:       client,
		WorkLocation: location,
		VisitDate:    answers.String(o.form.Denorm.VisitDateKey),
		FormData:     answers.Clone(),
	}
}
