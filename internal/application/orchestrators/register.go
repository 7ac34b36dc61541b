package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/email"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForRegister defines the store interface needed by Register.
type AccountStoreForRegister interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// RegisterInput carries input for the orchestrator.
type RegisterInput struct {
	Email    string
	Password string
}

// RegisterDeps holds dependencies for Register.
type RegisterDeps struct {
	AccountStore AccountStoreForRegister
	EmailSender  email.Sender // optional; nil skips the welcome email
	FromAddress  string
}

var ErrEmailTaken = errors.New("an account with this email already exists")

// ExecuteRegister coordinates account creation.
// PRE: Valid email, password >= 8 chars
// POST: Account created with hashed password, welcome email queued
// INVARIANT: Email must be unique
func ExecuteRegister(ctx context.Context, input RegisterInput, deps RegisterDeps) (account.Account, error) {
	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     input.Email,
		CreatedAt: time.Now(),
	}

	if err := acct.Validate(); err != nil {
		return account.Account{}, err
	}

	// Check if email already exists
	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		return account.Account{}, ErrEmailTaken
	}

	// Set password (handles hashing and length validation)
	if err := acct.SetPassword(input.Password); err != nil {
		return account.Account{}, err
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return account.Account{}, err
	}

	slog.Info("auth_event", "event", "account_created", "email", acct.Email)

	// Welcome email is best-effort: registration already succeeded.
	if deps.EmailSender != nil {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{acct.Email},
			From:    deps.FromAddress,
			Subject: "Welcome to YouTube Clone",
			HTML:    email.WelcomeHTML(acct.Email),
		})
		if err != nil {
			slog.Warn("auth_event", "event", "welcome_email_failed", "email", acct.Email, "error", err)
		}
	}

	return acct, nil
}
