package account_test

import (
	"errors"
	"testing"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/account"
)

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr error
	}{
		{
			name:    "valid account",
			account: account.Account{ID: "1", Email: "viewer@example.com"},
			wantErr: nil,
		},
		{
			name:    "empty email",
			account: account.Account{ID: "2"},
			wantErr: account.ErrEmptyEmail,
		},
		{
			name:    "whitespace email",
			account: account.Account{ID: "3", Email: "   "},
			wantErr: account.ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			account: account.Account{ID: "4", Email: "viewer.example.com"},
			wantErr: account.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_SetPassword_CheckPassword verifies the hash round trip.
func TestAccount_SetPassword_CheckPassword(t *testing.T) {
	var a account.Account
	if err := a.SetPassword("correct horse battery"); err != nil {
		t.Fatalf("SetPassword() = %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "correct horse battery" {
		t.Fatal("password was not hashed")
	}
	if err := a.CheckPassword("correct horse battery"); err != nil {
		t.Errorf("CheckPassword(correct) = %v", err)
	}
	if err := a.CheckPassword("wrong password"); !errors.Is(err, account.ErrWrongPassword) {
		t.Errorf("CheckPassword(wrong) = %v, want ErrWrongPassword", err)
	}
}

// TestAccount_SetPassword_Rejections covers empty and short passwords.
func TestAccount_SetPassword_Rejections(t *testing.T) {
	var a account.Account
	if err := a.SetPassword(""); !errors.Is(err, account.ErrEmptyPassword) {
		t.Errorf("SetPassword(empty) = %v, want ErrEmptyPassword", err)
	}
	if err := a.SetPassword("short"); !errors.Is(err, account.ErrPasswordTooShort) {
		t.Errorf("SetPassword(short) = %v, want ErrPasswordTooShort", err)
	}
}
