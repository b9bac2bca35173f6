package panel

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/iyhunko/treko-inventory/internal/store"
)

// Authenticator performs the login call.
type Authenticator interface {
	Login(ctx context.Context, creds store.Credentials) (*store.LoginResult, error)
}

// LoginForm validates credentials, calls the store and opens the Gate on success.
type LoginForm struct {
	auth Authenticator
	gate *Gate

	mu      sync.Mutex
	loading bool
	message string
}

func NewLoginForm(auth Authenticator, gate *Gate) *LoginForm {
	return &LoginForm{auth: auth, gate: gate}
}

// Submit clears the previous message, then either rejects blank fields
// locally or issues exactly one login request.
func (f *LoginForm) Submit(ctx context.Context, code, name, password string) error {
	f.mu.Lock()
	f.message = ""
	f.loading = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" || name == "" || strings.TrimSpace(password) == "" {
		f.setMessage(MsgFillAllFields)
		return validationError(MsgFillAllFields)
	}

	result, err := f.auth.Login(ctx, store.Credentials{Code: code, Name: name, Password: password})
	if err != nil {
		slog.Warn("login failed", slog.String("code", code), slog.Any("err", err))
		f.setMessage(describeLoginError(err))
		return err
	}

	slog.Info("login succeeded", slog.String("code", result.Employee.Code))
	f.gate.Establish(result)
	return nil
}

func describeLoginError(err error) string {
	var serverErr *store.ServerError
	switch {
	case errors.As(err, &serverErr):
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return MsgInvalidCredentials
	case errors.Is(err, store.ErrNoResponse):
		return store.MsgNoResponse
	default:
		return MsgCannotConnect
	}
}

func (f *LoginForm) setMessage(msg string) {
	f.mu.Lock()
	f.message = msg
	f.mu.Unlock()
}

// Message is the single error currently shown, or "".
func (f *LoginForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Loading reports whether a login call is in flight.
func (f *LoginForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// ButtonLabel is the submit control's text.
func (f *LoginForm) ButtonLabel() string {
	if f.Loading() {
		return LabelLoggingIn
	}
	return LabelLogin
}
