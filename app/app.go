package app

import (
	"github.com/hidrodema/obra-forms/config"
	"github.com/hidrodema/obra-forms/draft"
	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/notify"
	"github.com/hidrodema/obra-forms/store"
)

type App struct {
	*store.Store
	Drafts   draft.Store
	Registry *forms.Registry
	Notifier *notify.Notifier
	config.Config
}
