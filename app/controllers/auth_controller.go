package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/app/services"
	"github.com/shashiranjanraj/vanik/app/views"
	"github.com/shashiranjanraj/vanik/pkg/bind"
	"github.com/shashiranjanraj/vanik/pkg/orm"
	"github.com/shashiranjanraj/vanik/pkg/router"
	"github.com/shashiranjanraj/vanik/pkg/session"
)

type AuthController struct {
	service *services.AuthService
	users   *repositories.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{
		service: services.NewAuthService(),
		users:   repositories.NewUserRepository(),
	}
}

// NewAuthControllerWithService injects a custom service, mostly for tests.
func NewAuthControllerWithService(s *services.AuthService) *AuthController {
	return &AuthController{service: s, users: repositories.NewUserRepository()}
}

// ShowRegister renders the registration form.
func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "auth/register.html", map[string]interface{}{
		"Form":   RegisterForm{},
		"Errors": map[string]string{},
	})
}

// Register creates the account, mails the activation link and signs the
// still-inactive user in before sending them to the check-your-inbox
// page.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var form RegisterForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	if len(errs) == 0 {
		_, err := c.users.FindByEmail(form.Email)
		switch {
		case err == nil:
			errs["email"] = "A user with this email already exists."
		case !orm.IsNotFound(err):
			internalError(w, r, err)
			return
		}
	}

	if len(errs) > 0 {
		views.Render(w, r, "auth/register.html", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := c.service.Register(form.FirstName, form.Email, form.Password)
	if err != nil {
		internalError(w, r, err)
		return
	}

	sess := session.FromCtx(r)
	sess.Regenerate()
	sess.Set("user_id", int(user.ID))
	if err := sess.Save(w); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/verify-email-done", http.StatusFound)
}

// ShowLogin renders the login form.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "auth/login.html", map[string]interface{}{
		"Form":   LoginForm{},
		"Errors": map[string]string{},
	})
}

// Login checks the credentials and starts the session. Failures of any
// kind re-render the form with a warning and HTTP 200.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(errs) > 0 {
		views.Render(w, r, "auth/login.html", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	sess := session.FromCtx(r)

	user, err := c.service.Login(form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		sess.PushFlash("warning", "Your email and password didn't match. Please try again.")
	case errors.Is(err, services.ErrInactiveAccount):
		sess.PushFlash("warning", "This account hasn't been activated yet. Check your inbox for the verification link.")
	case err != nil:
		internalError(w, r, err)
		return
	}
	if err != nil {
		views.Render(w, r, "auth/login.html", map[string]interface{}{
			"Form":   form,
			"Errors": map[string]string{},
		})
		return
	}

	sess.Regenerate()
	sess.Set("user_id", int(user.ID))
	if err := sess.Save(w); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout destroys the session and returns to the home page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// VerifyEmailDone tells the fresh registrant to check their inbox.
func (c *AuthController) VerifyEmailDone(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "auth/email/verify-email-done.html", nil)
}

// VerifyEmailConfirm handles the emailed activation link. A good link
// activates the account; any bad link flashes a warning and leaves the
// account untouched.
func (c *AuthController) VerifyEmailConfirm(w http.ResponseWriter, r *http.Request) {
	uidb64 := router.Param(r, "uidb64")
	token := router.Param(r, "token")

	_, err := c.service.Activate(uidb64, token)
	if err == nil {
		http.Redirect(w, r, "/verify-email-complete", http.StatusFound)
		return
	}
	if !errors.Is(err, services.ErrInvalidActivation) {
		internalError(w, r, err)
		return
	}

	sess := session.FromCtx(r)
	sess.PushFlash("warning", "The link is invalid.")
	views.Render(w, r, "auth/email/verify-email-confirm.html", nil)
}

// VerifyEmailComplete confirms the successful activation.
func (c *AuthController) VerifyEmailComplete(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "auth/email/verify-email-complete.html", nil)
}
