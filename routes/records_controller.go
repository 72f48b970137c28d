package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/app"
	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/forms/mask"
	"github.com/hidrodema/obra-forms/httpx"
	"github.com/hidrodema/obra-forms/log"
	"github.com/hidrodema/obra-forms/model"
	"github.com/hidrodema/obra-forms/pdf"
	"github.com/hidrodema/obra-forms/store"
)

type submitBody struct {
	FormData map[string]any `json:"formData"`
}

func ListRecords(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}

		view := forms.NewListView(form, app.Store)
		summaries, err := view.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_records", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"records": summaries,
		})
	}
}

func SubmitRecord(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}

		body := submitBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		wizard := forms.NewWizard(form)
		wizard.Load(forms.AnswerMap(body.FormData), 0)

		orch := forms.NewOrchestrator(form, app.Store, app.Drafts)
		rec, err := orch.Submit(r.Context(), wizard)
		if err != nil {
			if verrs := validationMessages(err); verrs != nil {
				w.WriteHeader(http.StatusUnprocessableEntity)
				render.JSON(w, r, map[string]any{"errors": verrs})
				return
			}
			httpx.LogInternalError(w, "db.insert_record", err)
			return
		}

		// out of band; the response never waits on mail delivery
		go app.Notifier.RecordCreated(form, rec)

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id":     rec.ID,
			"number": rec.Number,
			"status": rec.Status,
		})
	}
}

func GetRecord(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		view := forms.NewListView(form, app.Store)
		rec, err := view.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_record", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_record", err)
			return
		}

		render.JSON(w, r, rec)
	}
}

// ResubmitRecord performs the edit path: the stored record is reloaded
// into a wizard, the incoming answers replace its form data, and submit
// updates in place, preserving identifier and creation timestamp.
func ResubmitRecord(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		body := submitBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		view := forms.NewListView(form, app.Store)
		wizard, err := view.Edit(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "update_record", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_record", err)
			return
		}

		for key, value := range body.FormData {
			wizard.Answers()[key] = value
		}

		orch := forms.NewOrchestrator(form, app.Store, app.Drafts)
		rec, err := orch.Submit(r.Context(), wizard)
		if err != nil {
			if verrs := validationMessages(err); verrs != nil {
				w.WriteHeader(http.StatusUnprocessableEntity)
				render.JSON(w, r, map[string]any{"errors": verrs})
				return
			}
			httpx.LogInternalError(w, "db.update_record", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"id":     rec.ID,
			"number": rec.Number,
			"status": rec.Status,
		})
	}
}

func DeleteRecord(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		view := forms.NewListView(form, app.Store)
		err := view.Delete(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "delete_record", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.delete_record", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type statusBody struct {
	Status string `json:"status"`
}

func ChangeStatus(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		body := statusBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if !form.ValidStatus(body.Status) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "update_status.vocabulary",
				"status %q não é válido para %s", body.Status, form.ID)
			return
		}

		view := forms.NewListView(form, app.Store)
		err = view.ChangeStatus(r.Context(), id, body.Status)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "update_status", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.update_status", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ExportRecord(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		view := forms.NewListView(form, app.Store)
		rec, err := view.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "export_record", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_record", err)
			return
		}

		doc, err := pdf.RenderRecord(form, rec)
		if err != nil {
			httpx.LogInternalError(w, "pdf.render", err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+rec.Number+`.pdf"`)
		w.Write(doc)
	}
}

func ListComments(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		view := forms.NewListView(form, app.Store)
		comments, err := view.Comments(r.Context(), id)
		if err != nil {
			httpx.LogInternalError(w, "db.get_comments", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"comments": comments,
		})
	}
}

type commentBody struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

func AddComment(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		body := commentBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if body.Text == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.comment.empty")
			return
		}

		view := forms.NewListView(form, app.Store)
		commentID, err := view.AddComment(r.Context(), model.Comment{
			RecordID: id,
			Author:   body.Author,
			Text:     body.Text,
		})
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "add_comment", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.insert_comment", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": commentID,
		})
	}
}

func DeleteComment(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		commentID := chi.URLParam(r, "commentId")

		view := forms.NewListView(form, app.Store)
		err := view.DeleteComment(r.Context(), commentID)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "delete_comment", commentID)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.delete_comment", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListQuotations(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		view := forms.NewListView(form, app.Store)
		quotes, err := view.Quotations(r.Context(), id)
		if err != nil {
			httpx.LogInternalError(w, "db.get_quotations", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"quotations": quotes,
		})
	}
}

type quotationBody struct {
	Supplier string `json:"supplier"`
	Amount   string `json:"amount"`
	Notes    string `json:"notes"`
}

func AddQuotation(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		body := quotationBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if body.Supplier == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.quotation.supplier")
			return
		}
		cents, err := mask.CentsFromDecimal(body.Amount)
		if err != nil || cents == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.quotation.amount")
			return
		}

		view := forms.NewListView(form, app.Store)
		quotationID, err := view.AddQuotation(r.Context(), model.Quotation{
			RecordID: id,
			Supplier: body.Supplier,
			Amount:   cents,
			Notes:    body.Notes,
		})
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "add_quotation", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.insert_quotation", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": quotationID,
		})
	}
}

func DeleteQuotation(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		quotationID := chi.URLParam(r, "quotationId")

		view := forms.NewListView(form, app.Store)
		err := view.DeleteQuotation(r.Context(), quotationID)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "delete_quotation", quotationID)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.delete_quotation", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// validationMessages unpacks the fail-slow validator result into user
// messages, or nil when err is not a validation failure.
func validationMessages(err error) []string {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		msgs := make([]string, len(merr.Errors))
		for i, e := range merr.Errors {
			msgs[i] = e.Error()
		}
		return msgs
	}
	var verr forms.ValidationError
	if errors.As(err, &verr) {
		return []string{verr.Error()}
	}
	return nil
}
