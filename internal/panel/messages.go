package panel

import (
	"errors"
	"fmt"
)

// User-facing messages.
const (
	MsgFillAllFields      = "Por favor, preencha todos os campos."
	MsgInvalidCredentials = "Credenciais inválidas."
	MsgCannotConnect      = "Não foi possível conectar ao servidor."
	MsgLoadFailed         = "Não foi possível carregar os produtos. Verifique o back-end."
	MsgInvalidProduct     = "Nome e Preço (maior que zero) são obrigatórios."
	MsgSaveFailed         = "Erro ao salvar produto."
	MsgDeleteFailed       = "Erro ao excluir produto."
	MsgConfirmDelete      = "Tem certeza que deseja excluir este produto?"
	MsgNoMatches          = "Nenhum produto encontrado."
	MsgNoProducts         = "Nenhum produto cadastrado."
	MsgLoading            = "Carregando produtos..."
	MsgNoDescription      = "Sem descrição"
)

// Login button labels.
const (
	LabelLogin     = "Entrar"
	LabelLoggingIn = "Acessando..."
)

var (
	// ErrValidation wraps every locally rejected submit. No request is made.
	ErrValidation = errors.New("validation failed")
	// ErrNoPendingDelete is returned by ConfirmDelete when nothing awaits confirmation.
	ErrNoPendingDelete = errors.New("no delete awaiting confirmation")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
