package orchestrators

import (
	"context"
	"errors"
	"testing"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/email"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/account"
)

// mockAccountStore implements AccountStoreForRegister and AccountStoreForLogin.
type mockAccountStore struct {
	accounts map[string]account.Account // keyed by email
	saveErr  error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]account.Account)}
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := m.accounts[email]
	if !ok {
		return account.Account{}, errors.New("not found")
	}
	return a, nil
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.accounts[a.Email] = a
	return nil
}

// recordingSender captures sent emails for assertions.
type recordingSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (s *recordingSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if s.sendErr != nil {
		return email.SendResult{}, s.sendErr
	}
	s.sent = append(s.sent, req)
	return email.SendResult{MessageID: "msg-001"}, nil
}

// --- ExecuteRegister tests ---

func TestExecuteRegister_Valid(t *testing.T) {
	store := newMockAccountStore()
	sender := &recordingSender{}
	acct, err := ExecuteRegister(context.Background(), RegisterInput{
		Email:    "viewer@example.com",
		Password: "correct horse battery",
	}, RegisterDeps{AccountStore: store, EmailSender: sender, FromAddress: "noreply@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acct.ID == "" {
		t.Error("expected generated account ID")
	}
	if acct.PasswordHash == "" || acct.PasswordHash == "correct horse battery" {
		t.Error("expected password to be hashed")
	}
	if _, ok := store.accounts["viewer@example.com"]; !ok {
		t.Error("expected account to be persisted")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 welcome email, got %d", len(sender.sent))
	}
	if sender.sent[0].To[0] != "viewer@example.com" {
		t.Errorf("welcome email sent to %s", sender.sent[0].To[0])
	}
}

func TestExecuteRegister_DuplicateEmail(t *testing.T) {
	store := newMockAccountStore()
	store.accounts["taken@example.com"] = account.Account{ID: "a1", Email: "taken@example.com"}
	_, err := ExecuteRegister(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "longenough",
	}, RegisterDeps{AccountStore: store})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestExecuteRegister_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "longenough", account.ErrEmptyEmail},
		{"bad email", "no-at-sign", "longenough", account.ErrInvalidEmail},
		{"empty password", "a@b.com", "", account.ErrEmptyPassword},
		{"short password", "a@b.com", "short", account.ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockAccountStore()
			_, err := ExecuteRegister(context.Background(), RegisterInput{
				Email:    tc.email,
				Password: tc.password,
			}, RegisterDeps{AccountStore: store})
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestExecuteRegister_EmailFailureIsNotFatal(t *testing.T) {
	store := newMockAccountStore()
	sender := &recordingSender{sendErr: errors.New("provider down")}
	_, err := ExecuteRegister(context.Background(), RegisterInput{
		Email:    "viewer@example.com",
		Password: "longenough",
	}, RegisterDeps{AccountStore: store, EmailSender: sender})
	if err != nil {
		t.Fatalf("registration should survive email failure, got %v", err)
	}
	if _, ok := store.accounts["viewer@example.com"]; !ok {
		t.Error("expected account to be persisted")
	}
}

// --- ExecuteLogin tests ---

func registeredStore(t *testing.T, email, password string) *mockAccountStore {
	t.Helper()
	store := newMockAccountStore()
	_, err := ExecuteRegister(context.Background(), RegisterInput{
		Email:    email,
		Password: password,
	}, RegisterDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	return store
}

func TestExecuteLogin_Valid(t *testing.T) {
	store := registeredStore(t, "viewer@example.com", "longenough")
	res, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "viewer@example.com",
		Password: "longenough",
	}, LoginDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccountID == "" {
		t.Error("expected account ID in result")
	}
	if res.Email != "viewer@example.com" {
		t.Errorf("expected email in result, got %s", res.Email)
	}
}

func TestExecuteLogin_WrongPassword(t *testing.T) {
	store := registeredStore(t, "viewer@example.com", "longenough")
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "viewer@example.com",
		Password: "wrong-password",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestExecuteLogin_UnknownEmail(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "longenough",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestExecuteLogin_EmptyInput(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteLogin(context.Background(), LoginInput{}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
