// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hearsay-social/hearsay/internal/cache"
	"github.com/hearsay-social/hearsay/internal/pkg/log"
	"github.com/hearsay-social/hearsay/internal/platform/email"
	usererrors "github.com/hearsay-social/hearsay/users/errors"
	"github.com/hearsay-social/hearsay/users/models"
	"github.com/hearsay-social/hearsay/users/repository"
	"github.com/hearsay-social/hearsay/users/validation"
)

const (
	// forgetPasswordPrefix namespaces reset tokens in the cache.
	forgetPasswordPrefix = "forget-password:"

	// resetTokenTTL bounds how long a reset link stays valid.
	resetTokenTTL = 24 * time.Hour
)

// UserService defines the account operations exposed through the API.
type UserService interface {
	// Register validates the credentials, creates the account and
	// returns it. Violations come back as field errors on the result.
	Register(ctx context.Context, input models.RegisterInput) (*models.UserResult, error)

	// Login checks the credentials against the stored hash. The
	// identifier is treated as an email when it contains "@".
	Login(ctx context.Context, usernameOrEmail, password string) (*models.UserResult, error)

	// Me resolves the session's user.
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// ForgotPassword issues a single-use reset token and emails a reset
	// link. Unknown emails return false without error.
	ForgotPassword(ctx context.Context, emailAddress string) (bool, error)

	// ChangePassword consumes a reset token and replaces the password.
	ChangePassword(ctx context.Context, token, newPassword string) (*models.UserResult, error)
}

// ServiceConfig carries the pieces of app config the service needs.
type ServiceConfig struct {
	AppName   string
	WebDomain string
	EmailFrom string
}

type userService struct {
	repo   repository.UserRepository
	cache  cache.Cache
	sender email.Sender
	config ServiceConfig
}

// NewUserService creates a new instance of the user service.
func NewUserService(repo repository.UserRepository, c cache.Cache, sender email.Sender, config ServiceConfig) UserService {
	return &userService{repo: repo, cache: c, sender: sender, config: config}
}

func (s *userService) Register(ctx context.Context, input models.RegisterInput) (*models.UserResult, error) {
	if fieldErrs := validation.ValidateRegister(input); len(fieldErrs) > 0 {
		return &models.UserResult{Errors: fieldErrs}, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := &models.User{
		ID:             id,
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: string(hashed),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, usererrors.ErrDuplicateUser) {
			return &models.UserResult{Errors: []models.FieldError{{
				Field:   "username",
				Message: "That username has already been taken!",
			}}}, nil
		}
		// Unclassified store failures are real errors, not an empty
		// success response.
		log.Error("registration failed for %q: %v", input.Username, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.UserResult{User: user}, nil
}

func (s *userService) Login(ctx context.Context, usernameOrEmail, password string) (*models.UserResult, error) {
	var (
		user *models.User
		err  error
	)
	if strings.Contains(usernameOrEmail, "@") {
		user, err = s.repo.FindByEmail(ctx, usernameOrEmail)
	} else {
		user, err = s.repo.FindByUsername(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return &models.UserResult{Errors: []models.FieldError{{
				Field:   "usernameOrEmail",
				Message: "That username/email doesn't exist",
			}}}, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return &models.UserResult{Errors: []models.FieldError{{
			Field:   "password",
			Message: "Incorrect Password",
		}}}, nil
	}

	return &models.UserResult{User: user}, nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *userService) ForgotPassword(ctx context.Context, emailAddress string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := uuid.NewV4()
	if err != nil {
		return false, fmt.Errorf("failed to generate reset token: %w", err)
	}

	key := forgetPasswordPrefix + token.String()
	if err := s.cache.Set(ctx, key, []byte(user.ID.String()), resetTokenTTL); err != nil {
		return false, fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/change-password/%s", s.config.WebDomain, token.String())
	msg := email.Message{
		From:    s.fromHeader(),
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Reset your %s password", s.config.AppName),
		Body:    resetEmailBody(user.Username, resetLink),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return false, fmt.Errorf("failed to send reset email: %w", err)
	}

	return true, nil
}

func (s *userService) ChangePassword(ctx context.Context, token, newPassword string) (*models.UserResult, error) {
	if fieldErrs := validation.ValidateNewPassword(newPassword); len(fieldErrs) > 0 {
		return &models.UserResult{Errors: fieldErrs}, nil
	}

	key := forgetPasswordPrefix + token
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return &models.UserResult{Errors: []models.FieldError{{
				Field:   "token",
				Message: "The token is either expired or is tampered with!",
			}}}, nil
		}
		return nil, fmt.Errorf("failed to load reset token: %w", err)
	}

	userID, err := uuid.FromString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed reset token payload: %w", err)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return &models.UserResult{Errors: []models.FieldError{{
				Field:   "token",
				Message: "The user no longer exists!",
			}}}, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	user.HashedPassword = string(hashed)

	// Single use: the token must not survive a successful reset.
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn("failed to delete consumed reset token: %v", err)
	}

	return &models.UserResult{User: user}, nil
}

// fromHeader builds the reset mail's From header from the configured
// sender address, or leaves it to the sender's default when unset.
func (s *userService) fromHeader() string {
	if s.config.EmailFrom == "" {
		return ""
	}
	return fmt.Sprintf("%s <%s>", s.config.AppName, s.config.EmailFrom)
}

func resetEmailBody(username, resetLink string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family:sans-serif; color:#2A3E52">
    <p>Hey %s,</p>
    <p>There was a request to change your password!</p>
    <p>If you did not make this request, just ignore this email.
       Otherwise, please click the link below to change your password:</p>
    <p><a href="%s">Reset Password</a></p>
    <p>If that link didn't work, copy this address into your browser:<br/>%s</p>
  </body>
</html>`, username, resetLink, resetLink)
}
