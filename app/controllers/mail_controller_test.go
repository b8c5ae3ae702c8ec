package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/shashiranjanraj/vanik/pkg/testkit"
)

func TestSendEmailForm(t *testing.T) {
	h, _ := newApp(t)

	rec := testkit.Get(h, "/send-email")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	testkit.AssertBodyContains(t, rec, "Send email")
}

func TestSendEmail(t *testing.T) {
	h, _ := newApp(t)

	// No SMTP credentials in tests, so the mailer logs the message and
	// reports success.
	rec := testkit.PostForm(h, "/send-email", url.Values{
		"subject":    {"Hello"},
		"message":    {"A quick note."},
		"from_email": {"admin@vanik.local"},
		"to":         {"asha@example.com"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	testkit.AssertBodyContains(t, rec, "E-mail successfully sent.")
}

func TestSendEmailValidation(t *testing.T) {
	h, _ := newApp(t)

	rec := testkit.PostForm(h, "/send-email", url.Values{
		"subject":    {"Hello"},
		"message":    {"A quick note."},
		"from_email": {"not-an-address"},
		"to":         {"asha@example.com"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}

	// Input comes back for correction, without the sent banner.
	testkit.AssertBodyContains(t, rec, "not-an-address")
	if strings.Contains(rec.Body.String(), "E-mail successfully sent.") {
		t.Error("invalid submission must not report success")
	}
}
