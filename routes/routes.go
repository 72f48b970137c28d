package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hidrodema/obra-forms/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/forms", ListForms(app))
	api.Get("/forms/{form}", GetForm(app))

	// draft lifecycle, one draft per form identity
	api.Put("/forms/{form}/draft", SaveDraft(app))
	api.Get("/forms/{form}/draft", RestoreDraft(app))
	api.Delete("/forms/{form}/draft", ClearDraft(app))

	// record lifecycle
	api.Get("/forms/{form}/records", ListRecords(app))
	api.Post("/forms/{form}/records", SubmitRecord(app))
	api.Get("/forms/{form}/records/{id}", GetRecord(app))
	api.Put("/forms/{form}/records/{id}", ResubmitRecord(app))
	api.Delete("/forms/{form}/records/{id}", DeleteRecord(app))
	api.Patch("/forms/{form}/records/{id}/status", ChangeStatus(app))
	api.Get("/forms/{form}/records/{id}/export", ExportRecord(app))

	// comment threads
	api.Get("/forms/{form}/records/{id}/comments", ListComments(app))
	api.Post("/forms/{form}/records/{id}/comments", AddComment(app))
	api.Delete("/forms/{form}/records/{id}/comments/{commentId}", DeleteComment(app))

	// supplier quotations
	api.Get("/forms/{form}/records/{id}/quotations", ListQuotations(app))
	api.Post("/forms/{form}/records/{id}/quotations", AddQuotation(app))
	api.Delete("/forms/{form}/records/{id}/quotations/{quotationId}", DeleteQuotation(app))

	return api
}
