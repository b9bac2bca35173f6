// Package tui is the terminal front end of the admin panel.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iyhunko/treko-inventory/internal/panel"
)

// Client is everything the screens need from the remote store.
type Client interface {
	panel.Authenticator
	panel.ProductStore
}

// Model switches between the login screen and the product manager
// according to the session gate.
type Model struct {
	client  Client
	gate    *panel.Gate
	login   loginModel
	manager managerModel
}

func New(client Client, gate *panel.Gate) Model {
	return Model{
		client: client,
		gate:   gate,
		login:  newLoginModel(panel.NewLoginForm(client, gate)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case loginDoneMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if msg.err == nil && m.gate.LoggedIn() {
			// Every login mounts a fresh manager, which loads the catalog once.
			m.manager = newManagerModel(panel.NewManager(m.client), m.gate.Employee())
			return m, tea.Batch(cmd, m.manager.Init())
		}
		return m, cmd
	case logoutMsg:
		m.gate.Logout()
		m.manager = managerModel{}
		m.login = newLoginModel(panel.NewLoginForm(m.client, m.gate))
		return m, m.login.Init()
	}

	var cmd tea.Cmd
	if m.gate.LoggedIn() && m.manager.mgr != nil {
		m.manager, cmd = m.manager.Update(msg)
	} else {
		m.login, cmd = m.login.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.gate.LoggedIn() && m.manager.mgr != nil {
		return m.manager.View()
	}
	return m.login.View()
}
