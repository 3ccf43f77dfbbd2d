package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	repo "github.com/oksasatya/devconnector-api/internal/domain/repository"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
	"github.com/oksasatya/devconnector-api/pkg/mailer"
	mailtpl "github.com/oksasatya/devconnector-api/pkg/mailer/templates"
)

// UserService implements registration and authentication. Tokens are
// self-contained; nothing about a session is stored server-side.
type UserService struct {
	Repo        repo.UserRepository
	JWT         *helpers.JWTManager
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *UserService {
	return &UserService{Repo: r, JWT: jwt, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

// Register creates a user with a bcrypt-hashed password and a Gravatar avatar
// derived from the email, then issues a session token. The plaintext password
// is never persisted or logged.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		AvatarURL: helpers.GravatarURL(email),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// Two registrations can pass the existence check concurrently; the
		// storage-layer unique index decides the winner.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.enqueueWelcome(ctx, u)
	return u, token, nil
}

// Authenticate verifies email/password and issues a new token. Unknown email
// and wrong password fail identically so accounts cannot be enumerated.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetUser returns the caller's own record.
func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data:     map[string]any{"Name": u.Name},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to enqueue welcome email")
	}
}
