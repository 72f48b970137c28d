package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hidrodema/obra-forms/app"
	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/httpx"
	"github.com/hidrodema/obra-forms/log"
)

// formSummary is the catalog projection of a form definition.
type formSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
	Statuses []string `json:"statuses"`
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := []formSummary{}
		for _, f := range app.Registry.All() {
			summaries = append(summaries, formSummary{
				ID:       f.ID,
				Title:    f.Title,
				Sections: f.ActiveSections(forms.AnswerMap{}),
				Statuses: f.Statuses,
			})
		}
		render.JSON(w, r, map[string]any{
			"forms": summaries,
		})
	}
}

func GetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		render.JSON(w, r, map[string]any{
			"id":        form.ID,
			"title":     form.Title,
			"sections":  form.ActiveSections(forms.AnswerMap{}),
			"statuses":  form.Statuses,
			"questions": form.Questions,
		})
	}
}

type draftBody struct {
	FormData       map[string]any `json:"formData"`
	CurrentSection int            `json:"currentSection"`
}

func SaveDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}

		body := draftBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		wizard := forms.NewWizard(form)
		wizard.Load(forms.AnswerMap(body.FormData), body.CurrentSection)

		orch := forms.NewOrchestrator(form, app.Store, app.Drafts)
		err = orch.SaveDraft(r.Context(), wizard)
		if err != nil {
			if verrs := validationMessages(err); verrs != nil {
				w.WriteHeader(http.StatusUnprocessableEntity)
				render.JSON(w, r, map[string]any{"errors": verrs})
				return
			}
			httpx.LogInternalError(w, "draft.save", err)
			return
		}

		resp := map[string]any{"formId": form.ID}
		if wizard.Editing() {
			resp["recordId"] = wizard.EditID()
		}
		render.JSON(w, r, resp)
	}
}

func RestoreDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}

		snap, found, err := app.Drafts.Load(form.ID)
		if err != nil {
			httpx.LogInternalError(w, "draft.restore", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "draft.restore", form.ID)
			return
		}

		// re-clamp the restored index into the active section range
		wizard := forms.NewWizard(form)
		wizard.Load(forms.AnswerMap(snap.FormData), snap.CurrentSection)

		render.JSON(w, r, draftBody{
			FormData:       wizard.Answers(),
			CurrentSection: wizard.Index(),
		})
	}
}

func ClearDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := formParam(app, w, r)
		if !ok {
			return
		}
		err := app.Drafts.Clear(form.ID)
		if err != nil {
			httpx.LogInternalError(w, "draft.clear", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func formParam(app app.App, w http.ResponseWriter, r *http.Request) (*forms.Form, bool) {
	id := chi.URLParam(r, "form")
	form, ok := app.Registry.Get(id)
	if !ok {
		httpx.LogNotFound(w, "get_form", id)
		return nil, false
	}
	return form, true
}
