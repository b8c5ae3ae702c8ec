package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vanik/app/views"
	"github.com/shashiranjanraj/vanik/pkg/bind"
	"github.com/shashiranjanraj/vanik/pkg/logger"
	"github.com/shashiranjanraj/vanik/pkg/mail"
)

// MailController serves the free-form send-email page.
type MailController struct{}

func NewMailController() *MailController {
	return &MailController{}
}

// Form renders the empty send-email form.
func (c *MailController) Form(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "sending-email.html", map[string]interface{}{
		"Form":   EmailForm{},
		"Errors": map[string]string{},
		"Sent":   false,
	})
}

// Send validates and delivers the message, then re-renders the form with
// a sent flag.
func (c *MailController) Send(w http.ResponseWriter, r *http.Request) {
	var form EmailForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(errs) > 0 {
		views.Render(w, r, "sending-email.html", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
			"Sent":   false,
		})
		return
	}

	err = mail.To(form.To).
		From(form.FromEmail).
		Subject(form.Subject).
		Text(form.Message).
		Send()
	if err != nil {
		logger.Error("send-email failed", "to", form.To, "error", err)
		views.Render(w, r, "sending-email.html", map[string]interface{}{
			"Form":   form,
			"Errors": map[string]string{"to": "The message could not be sent."},
			"Sent":   false,
		})
		return
	}

	views.Render(w, r, "sending-email.html", map[string]interface{}{
		"Form":   form,
		"Errors": map[string]string{},
		"Sent":   true,
	})
}
