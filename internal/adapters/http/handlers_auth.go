package web

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http/middleware"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/application/orchestrators"
)

// handleRegister handles POST /register
func handleRegister(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &input); err != nil {
		jsonError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	deps := orchestrators.RegisterDeps{
		AccountStore: stores.AccountStore,
		EmailSender:  emailSender,
		FromAddress:  emailFromAddress,
	}
	acct, err := orchestrators.ExecuteRegister(r.Context(), orchestrators.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	}, deps)
	if err != nil {
		if errors.Is(err, orchestrators.ErrEmailTaken) {
			jsonError(w, err.Error(), http.StatusConflict)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, acct)
}

// handleLogin handles POST /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &input); err != nil {
		jsonError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	}, orchestrators.LoginDeps{AccountStore: stores.AccountStore})
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]string{
		"id":    result.AccountID,
		"email": result.Email,
	})
}

// handleMe handles GET /me
// Resolves the session's user id back to the stored account, so a client can
// detect a stale session for a deleted account.
func handleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	acct, err := stores.AccountStore.GetByID(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			jsonError(w, "account not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, acct)
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
