package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iyhunko/treko-inventory/internal/panel"
	"github.com/iyhunko/treko-inventory/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	products []store.Product
	nextID   int64
	loginErr error
	deleted  []int64
}

func (f *fakeClient) Login(_ context.Context, creds store.Credentials) (*store.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &store.LoginResult{Token: "tok", Employee: store.Employee{Code: creds.Code, Name: creds.Name}}, nil
}

func (f *fakeClient) ListProducts(context.Context) ([]store.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Product(nil), f.products...), nil
}

func (f *fakeClient) CreateProduct(_ context.Context, in store.ProductInput) (store.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := store.Product{ID: f.nextID, Name: in.Name, Description: in.Description, Price: in.Price}
	f.products = append([]store.Product{p}, f.products...)
	return p, nil
}

func (f *fakeClient) UpdateProduct(_ context.Context, id int64, in store.ProductInput) (store.Product, error) {
	return store.Product{ID: id, Name: in.Name, Description: in.Description, Price: in.Price}, nil
}

func (f *fakeClient) DeleteProduct(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

// drain runs cmd and feeds back the messages produced by this package,
// ignoring cursor blinks and other bubbles internals.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case loginDoneMsg, loadedMsg, submittedMsg, deletedMsg, logoutMsg:
			var next tea.Cmd
			m, next = m.Update(msg)
			m = drain(t, m, next)
		}
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func login(t *testing.T, client *fakeClient) (tea.Model, *panel.Gate) {
	t.Helper()
	gate := panel.NewGate(nil)
	var m tea.Model = New(client, gate)

	m = typeText(m, "F001")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "Maria")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "s3nha")

	var cmd tea.Cmd
	m, cmd = m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	return drain(t, m, cmd), gate
}

func TestLoginThenCatalog(t *testing.T) {
	client := &fakeClient{products: []store.Product{{ID: 1, Name: "Caneta", Price: 2.5}}, nextID: 1}

	m, gate := login(t, client)

	require.True(t, gate.LoggedIn())
	view := m.View()
	assert.Contains(t, view, "Gerenciamento de produtos")
	assert.Contains(t, view, "Produtos em Estoque (1)")
	assert.Contains(t, view, "Caneta")
	assert.Contains(t, view, "R$ 2.50")
	assert.Contains(t, view, "Sem descrição")
	assert.Contains(t, view, "Cadastrar Produto")
	assert.Contains(t, view, "Maria (F001)", "header shows the logged-in employee")
}

func TestLoginFailureShowsMessage(t *testing.T) {
	client := &fakeClient{loginErr: &store.ServerError{Status: 401, Message: "Credenciais inválidas."}}

	m, gate := login(t, client)

	assert.False(t, gate.LoggedIn())
	assert.Contains(t, m.View(), "Credenciais inválidas.")
	assert.Contains(t, m.View(), "Entrar")
}

func TestLoginBlankFields(t *testing.T) {
	gate := panel.NewGate(nil)
	var m tea.Model = New(&fakeClient{}, gate)

	m, cmd := m.Update(key(tea.KeyEnter))
	m = drain(t, m, cmd)

	assert.False(t, gate.LoggedIn())
	assert.Contains(t, m.View(), "Por favor, preencha todos os campos.")
}

func TestCreateProduct(t *testing.T) {
	client := &fakeClient{}
	m, _ := login(t, client)
	assert.Contains(t, m.View(), "Nenhum produto cadastrado.")

	m = typeText(m, "Lápis")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "HB")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "1.20")

	m, cmd := m.Update(key(tea.KeyEnter))
	m = drain(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "Produtos em Estoque (1)")
	assert.Contains(t, view, "Lápis")
	assert.Contains(t, view, "R$ 1.20")

	app := m.(Model)
	assert.Empty(t, app.manager.inputs[focusName].Value(), "draft cleared after create")
	assert.Empty(t, app.manager.inputs[focusPrice].Value())
}

func TestCreateRejectedLocally(t *testing.T) {
	client := &fakeClient{}
	m, _ := login(t, client)

	m = typeText(m, "Lápis")
	m, cmd := m.Update(key(tea.KeyEnter))
	m = drain(t, m, cmd)

	assert.Contains(t, m.View(), "Nome e Preço")
	assert.Contains(t, m.View(), "Produtos em Estoque (0)")
}

func TestEditFromList(t *testing.T) {
	client := &fakeClient{products: []store.Product{{ID: 1, Name: "Caneta", Description: "Azul", Price: 2.5}}}
	m, _ := login(t, client)

	m, _ = m.Update(key(tea.KeyShiftTab))
	m, _ = m.Update(runes("e"))

	app := m.(Model)
	assert.Equal(t, focusName, app.manager.focus, "edit jumps back to the form")
	assert.Equal(t, "Caneta", app.manager.inputs[focusName].Value())
	assert.Equal(t, "Azul", app.manager.inputs[focusDescription].Value())
	assert.Equal(t, "2.5", app.manager.inputs[focusPrice].Value())
	assert.Contains(t, m.View(), "Editar Produto")
	assert.Contains(t, m.View(), "Atualizar")

	m, _ = m.Update(key(tea.KeyEsc))
	assert.Contains(t, m.View(), "Cadastrar Produto")
	assert.Empty(t, m.(Model).manager.inputs[focusName].Value())
}

func TestDeleteConfirmation(t *testing.T) {
	client := &fakeClient{products: []store.Product{{ID: 1, Name: "Caneta", Price: 2.5}, {ID: 2, Name: "Caderno", Price: 10}}}
	m, _ := login(t, client)

	m, _ = m.Update(key(tea.KeyShiftTab))
	m, _ = m.Update(runes("d"))
	assert.Contains(t, m.View(), "excluir este produto?")

	m, cmd := m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "excluir este produto?")
	assert.Empty(t, client.deleted)

	m, _ = m.Update(runes("d"))
	m, cmd = m.Update(runes("s"))
	m = drain(t, m, cmd)

	assert.Equal(t, []int64{1}, client.deleted)
	assert.Contains(t, m.View(), "Produtos em Estoque (1)")
	assert.NotContains(t, m.View(), "Caneta")
}

func TestDeleteEditedProductClearsForm(t *testing.T) {
	client := &fakeClient{products: []store.Product{{ID: 1, Name: "Caneta", Description: "Azul", Price: 2.5}}}
	m, _ := login(t, client)

	m, _ = m.Update(key(tea.KeyShiftTab))
	m, _ = m.Update(runes("e"))
	require.Equal(t, "Caneta", m.(Model).manager.inputs[focusName].Value())

	// back to the list, the edited product is still under the cursor
	m, _ = m.Update(key(tea.KeyShiftTab))
	m, _ = m.Update(runes("d"))
	m, cmd := m.Update(runes("s"))
	m = drain(t, m, cmd)

	require.Equal(t, []int64{1}, client.deleted)
	app := m.(Model)
	assert.Empty(t, app.manager.inputs[focusName].Value())
	assert.Empty(t, app.manager.inputs[focusDescription].Value())
	assert.Empty(t, app.manager.inputs[focusPrice].Value())
	assert.Contains(t, m.View(), "Cadastrar Produto")
	assert.NotContains(t, m.View(), "Atualizar")

	// the visible form and the draft agree, so a new product can be typed in
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "Lápis")
	m, _ = m.Update(key(tea.KeyTab))
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "1.20")
	m, cmd = m.Update(key(tea.KeyEnter))
	m = drain(t, m, cmd)

	assert.NotContains(t, m.View(), panel.MsgInvalidProduct)
	assert.Contains(t, m.View(), "Lápis")
}

func TestLoginEnterWhileSubmittingIsIgnored(t *testing.T) {
	gate := panel.NewGate(nil)
	client := &fakeClient{loginErr: &store.ServerError{Status: 401, Message: panel.MsgInvalidCredentials}}
	var m tea.Model = New(client, gate)

	m = typeText(m, "F001")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "Maria")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "s3nha")

	m, first := m.Update(key(tea.KeyEnter))
	require.NotNil(t, first)
	assert.Contains(t, m.View(), panel.LabelLoggingIn)

	m, second := m.Update(key(tea.KeyEnter))
	assert.Nil(t, second, "one login request in flight at a time")

	m = drain(t, m, first)
	assert.Contains(t, m.View(), panel.MsgInvalidCredentials)
	assert.Contains(t, m.View(), panel.LabelLogin)

	_, retry := m.Update(key(tea.KeyEnter))
	assert.NotNil(t, retry, "a finished attempt allows another")
}

func TestSearchFiltersList(t *testing.T) {
	client := &fakeClient{products: []store.Product{{ID: 1, Name: "Caneta", Price: 2.5}, {ID: 2, Name: "Caderno", Price: 10}}}
	m, _ := login(t, client)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(key(tea.KeyTab))
	}
	m = typeText(m, "NET")

	assert.Contains(t, m.View(), "Produtos em Estoque (1)")

	m = typeText(m, "xyz")
	assert.Contains(t, m.View(), "Nenhum produto encontrado.")
}

func TestLogout(t *testing.T) {
	client := &fakeClient{}
	m, gate := login(t, client)

	m, cmd := m.Update(key(tea.KeyCtrlO))
	m = drain(t, m, cmd)

	assert.False(t, gate.LoggedIn())
	assert.Contains(t, m.View(), "Código do Funcionário")
}

func TestCtrlCQuits(t *testing.T) {
	var m tea.Model = New(&fakeClient{}, panel.NewGate(nil))

	_, cmd := m.Update(key(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
