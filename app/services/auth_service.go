package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/app/views"
	"github.com/shashiranjanraj/vanik/config"
	"github.com/shashiranjanraj/vanik/pkg/auth"
	"github.com/shashiranjanraj/vanik/pkg/logger"
	"github.com/shashiranjanraj/vanik/pkg/mail"
	"github.com/shashiranjanraj/vanik/pkg/orm"
)

var (
	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInactiveAccount means the password matched but the email was
	// never verified.
	ErrInactiveAccount = errors.New("account is not active")

	// ErrInvalidActivation covers every way an activation link can fail:
	// undecodable uid, unknown user, tampered or outdated token.
	ErrInvalidActivation = errors.New("invalid activation link")
)

// AuthService implements registration, email verification and login.
type AuthService struct {
	users *repositories.UserRepository
	send  func(to []string, subject, html string) error
}

func NewAuthService() *AuthService {
	return &AuthService{
		users: repositories.NewUserRepository(),
		send:  mail.Deliver,
	}
}

// NewAuthServiceWithSender swaps the mail transport, mostly for tests.
func NewAuthServiceWithSender(send func(to []string, subject, html string) error) *AuthService {
	s := NewAuthService()
	s.send = send
	return s
}

// state fingerprints the fields an activation token is bound to.
// Activating the account or changing email or password flips the
// fingerprint, which kills every token issued before the change.
func state(u models.User) string {
	return auth.Fingerprint(
		strconv.FormatUint(uint64(u.ID), 10),
		u.Email,
		u.Password,
		strconv.FormatBool(u.IsActive),
	)
}

// Register creates an inactive account and emails the activation link.
// A mail failure does not roll the registration back: the account exists
// and a fresh link can be requested later.
func (s *AuthService) Register(firstName, email, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	user := models.User{
		FirstName: firstName,
		Email:     email,
		Password:  hash,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	if err := s.SendActivation(user); err != nil {
		logger.Warn("register: activation mail not sent", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// SendActivation emails the signed activation link bound to the user's
// current state.
func (s *AuthService) SendActivation(user models.User) error {
	token, err := auth.ActivationToken(user.ID, state(user))
	if err != nil {
		return fmt.Errorf("activation token: %w", err)
	}

	link := fmt.Sprintf("%s/verify-email/%s/%s", config.AppURL(), auth.EncodeUID(user.ID), token)

	body, err := views.RenderString("mail/activation.html", map[string]interface{}{
		"Name": user.FirstName,
		"Link": link,
	})
	if err != nil {
		return err
	}

	return s.send([]string{user.Email}, "Verify your email", body)
}

// Activate verifies the uid/token pair from an activation link and marks
// the account active. It fails closed: anything wrong with the link
// leaves the user untouched.
func (s *AuthService) Activate(uidb64, token string) (models.User, error) {
	id, err := auth.DecodeUID(uidb64)
	if err != nil {
		return models.User{}, ErrInvalidActivation
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.User{}, ErrInvalidActivation
		}
		return models.User{}, err
	}

	if err := auth.CheckActivationToken(token, user.ID, state(user)); err != nil {
		return models.User{}, ErrInvalidActivation
	}

	user.IsActive = true
	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login checks the credentials and the activation gate. The returned
// user is only meaningful when err is nil.
func (s *AuthService) Login(email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveAccount
	}

	return user, nil
}
