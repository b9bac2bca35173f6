package panel_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/iyhunko/treko-inventory/internal/panel"
	"github.com/iyhunko/treko-inventory/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_Success(t *testing.T) {
	ctx := context.Background()
	s := new(MockStore)
	gate := panel.NewGate(nil)
	form := panel.NewLoginForm(s, gate)

	s.On("Login", ctx, store.Credentials{Code: "F001", Name: "Maria", Password: "s3nha"}).
		Run(func(mock.Arguments) {
			assert.True(t, form.Loading(), "loading while the call is in flight")
			assert.Equal(t, "Acessando...", form.ButtonLabel())
		}).
		Return(&store.LoginResult{Token: "tok", Employee: store.Employee{Code: "F001", Name: "Maria"}}, nil)

	require.NoError(t, form.Submit(ctx, " F001", "Maria ", "s3nha"))

	assert.True(t, gate.LoggedIn())
	assert.Equal(t, "tok", gate.Token())
	assert.False(t, form.Loading())
	assert.Equal(t, "Entrar", form.ButtonLabel())
	assert.Empty(t, form.Message())
}

func TestLoginForm_BlankFields(t *testing.T) {
	for _, fields := range [][3]string{
		{"", "Maria", "s3nha"},
		{"F001", " ", "s3nha"},
		{"F001", "Maria", ""},
	} {
		s := new(MockStore)
		gate := panel.NewGate(nil)
		form := panel.NewLoginForm(s, gate)

		err := form.Submit(context.Background(), fields[0], fields[1], fields[2])

		assert.ErrorIs(t, err, panel.ErrValidation)
		assert.Equal(t, "Por favor, preencha todos os campos.", form.Message())
		assert.False(t, form.Loading())
		assert.False(t, gate.LoggedIn())
		s.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	}
}

func TestLoginForm_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &store.ServerError{Status: 401, Message: "Funcionário inativo."}, "Funcionário inativo."},
		{"server without message", &store.ServerError{Status: 401}, "Credenciais inválidas."},
		{"no response", fmt.Errorf("%w: timeout", store.ErrNoResponse), "Servidor não respondeu. O back-end está rodando?"},
		{"not sent", fmt.Errorf("%w: bad url", store.ErrNotSent), "Não foi possível conectar ao servidor."},
		{"unknown", errors.New("boom"), "Não foi possível conectar ao servidor."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(MockStore)
			s.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)
			gate := panel.NewGate(nil)
			form := panel.NewLoginForm(s, gate)

			err := form.Submit(context.Background(), "F001", "Maria", "s3nha")

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, form.Message())
			assert.False(t, form.Loading())
			assert.False(t, gate.LoggedIn())
		})
	}
}

func TestLoginForm_NewSubmitClearsMessage(t *testing.T) {
	s := new(MockStore)
	gate := panel.NewGate(nil)
	form := panel.NewLoginForm(s, gate)

	require.Error(t, form.Submit(context.Background(), "", "", ""))
	require.NotEmpty(t, form.Message())

	s.On("Login", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			assert.Empty(t, form.Message(), "previous message cleared before the call")
		}).
		Return(&store.LoginResult{Token: "tok"}, nil)

	require.NoError(t, form.Submit(context.Background(), "F001", "Maria", "s3nha"))
	assert.Empty(t, form.Message())
}
