// Package notify reacts to record creation: it renders the record as a
// PDF and mails it to the configured recipient. Failures here never
// reach the user who created the record.
package notify

import (
	"fmt"

	"github.com/hidrodema/obra-forms/config"
	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/log"
	"github.com/hidrodema/obra-forms/mailer"
	"github.com/hidrodema/obra-forms/model"
	"github.com/hidrodema/obra-forms/pdf"
)

type Notifier struct {
	cfg    config.Notify
	mailer *mailer.Mailer
}

func New(cfg config.Notify, m *mailer.Mailer) *Notifier {
	return &Notifier{cfg: cfg, mailer: m}
}

// RecordCreated fires after a record of the watched form is created.
// Missing configuration is a logged no-op: the creating action already
// succeeded. Render or delivery failures are logged and swallowed.
func (n *Notifier) RecordCreated(form *forms.Form, rec *model.Record) {
	if form.ID != n.cfg.FormID {
		return
	}
	if n.cfg.Recipient == "" || !n.mailer.Configured() {
		log.Infof("notify.skip: no recipient or mail settings configured (%s)", rec.Number)
		return
	}

	doc, err := pdf.RenderRecord(form, rec)
	if err != nil {
		log.Errorf("notify.render: %s", err)
		return
	}

	subject := fmt.Sprintf("%s — novo registro %s", form.Title, rec.Number)
	body := fmt.Sprintf("Novo registro %s criado para o cliente %s.\nDocumento em anexo.",
		rec.Number, rec.Client)

	err = n.mailer.Send(n.cfg.Recipient, subject, body, doc, rec.Number+".pdf")
	if err != nil {
		log.Errorf("notify.send: %s", err)
		return
	}
	log.Infof("notify.sent: %s to %s", rec.Number, n.cfg.Recipient)
}
