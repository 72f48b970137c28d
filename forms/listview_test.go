package forms

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidrodema/obra-forms/draft"
	"github.com/hidrodema/obra-forms/model"
)

func seedRecords(t *testing.T, docs *memStore, n int) []string {
	t.Helper()
	form := MDSForm()
	orch := NewOrchestrator(form, docs, draft.NewMemory())

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		w := NewWizard(form)
		w.Load(validMDSAnswers(), 0)
		rec, err := orch.Submit(context.Background(), w)
		require.NoError(t, err)
		ids[i] = rec.ID
	}
	return ids
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()
	ids := seedRecords(t, docs, 3)

	view := NewListView(MDSForm(), docs)
	summaries, err := view.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// creation time descending: the last created comes first
	assert.Equal(t, ids[2], summaries[0].ID)
	assert.Equal(t, ids[0], summaries[2].ID)
	assert.True(t, summaries[0].CreatedAt.After(summaries[2].CreatedAt))
}

func TestChangeStatusOptimisticRollback(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()
	ids := seedRecords(t, docs, 1)

	view := NewListView(MDSForm(), docs)
	_, err := view.List(ctx)
	require.NoError(t, err)

	require.NoError(t, view.ChangeStatus(ctx, ids[0], MDSStatusQuoted))
	assert.Equal(t, MDSStatusQuoted, view.Cached()[0].Status)

	doc, err := docs.GetByID(ctx, MDSForm().Collection, ids[0])
	require.NoError(t, err)
	assert.Equal(t, MDSStatusQuoted, model.RecordFromDoc(doc).Status)

	// a failing update rolls the optimistic change back
	docs.failUpdate = errors.New("store unavailable")
	err = view.ChangeStatus(ctx, ids[0], MDSStatusApproved)
	require.Error(t, err)
	assert.Equal(t, MDSStatusQuoted, view.Cached()[0].Status)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()
	ids := seedRecords(t, docs, 1)

	view := NewListView(MDSForm(), docs)
	err := view.ChangeStatus(ctx, ids[0], "banana")
	require.Error(t, err)
	assert.Equal(t, 0, docs.updates)
}

func TestDeleteCascadesToDependents(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()
	ids := seedRecords(t, docs, 1)

	view := NewListView(MDSForm(), docs)
	_, err := view.AddComment(ctx, model.Comment{RecordID: ids[0], Author: "ana", Text: "ok"})
	require.NoError(t, err)
	_, err = view.AddComment(ctx, model.Comment{RecordID: ids[0], Author: "bia", Text: "segue"})
	require.NoError(t, err)
	_, err = view.AddQuotation(ctx, model.Quotation{RecordID: ids[0], Supplier: "Fornecedora X", Amount: "250000"})
	require.NoError(t, err)

	require.NoError(t, view.Delete(ctx, ids[0]))

	// one record delete plus one per comment and quotation
	assert.Len(t, docs.deletes, 4)

	comments, err := view.Comments(ctx, ids[0])
	require.NoError(t, err)
	assert.Empty(t, comments)
	quotes, err := view.Quotations(ctx, ids[0])
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuotationsLifecycle(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()
	ids := seedRecords(t, docs, 1)

	view := NewListView(MDSForm(), docs)

	// quotes require an existing parent record
	_, err := view.AddQuotation(ctx, model.Quotation{RecordID: "missing", Supplier: "X", Amount: "100"})
	assert.Error(t, err)

	first, err := view.AddQuotation(ctx, model.Quotation{
		RecordID: ids[0], Supplier: "Fornecedora X", Amount: "250000", Notes: "prazo 30 dias"})
	require.NoError(t, err)
	_, err = view.AddQuotation(ctx, model.Quotation{
		RecordID: ids[0], Supplier: "Fornecedora Y", Amount: "198050"})
	require.NoError(t, err)

	quotes, err := view.Quotations(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, first, quotes[0].ID)
	assert.Equal(t, "Fornecedora X", quotes[0].Supplier)
	assert.Equal(t, "250000", quotes[0].Amount)

	require.NoError(t, view.DeleteQuotation(ctx, first))
	quotes, err = view.Quotations(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Fornecedora Y", quotes[0].Supplier)
}

func TestAddCommentRequiresRecord(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()

	view := NewListView(MDSForm(), docs)
	_, err := view.AddComment(ctx, model.Comment{RecordID: "missing", Text: "x"})
	assert.Error(t, err)
}

func TestCommentsOldestFirst(t *testing.T) {
	ctx := context.Background()
	docs := newMemStore()
	ids := seedRecords(t, docs, 1)

	view := NewListView(MDSForm(), docs)
	first, err := view.AddComment(ctx, model.Comment{RecordID: ids[0], Author: "ana", Text: "primeiro"})
	require.NoError(t, err)
	_, err = view.AddComment(ctx, model.Comment{RecordID: ids[0], Author: "bia", Text: "segundo"})
	require.NoError(t, err)

	comments, err := view.Comments(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first, comments[0].ID)
	assert.Equal(t, "primeiro", comments[0].Text)
}
