package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iyhunko/treko-inventory/internal/panel"
)

const (
	fieldCode = iota
	fieldName
	fieldPassword
)

type loginDoneMsg struct {
	err error
}

type loginModel struct {
	form   *panel.LoginForm
	inputs []textinput.Model
	focus  int
	// set when the login command is handed to the runtime, before the
	// form itself starts loading
	submitting bool
}

func newLoginModel(form *panel.LoginForm) loginModel {
	code := textinput.New()
	code.Placeholder = "Código do Funcionário"
	code.CharLimit = 32
	code.Focus()

	name := textinput.New()
	name.Placeholder = "Nome"
	name.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "Senha"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return loginModel{
		form:   form,
		inputs: []textinput.Model{code, name, password},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		case "enter":
			if m.submitting || m.form.Loading() {
				return m, nil
			}
			m.submitting = true
			return m, m.submit()
		}
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.inputs[fieldPassword].Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) setFocus(i int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// submit runs the login call off the UI loop.
func (m loginModel) submit() tea.Cmd {
	form := m.form
	code := m.inputs[fieldCode].Value()
	name := m.inputs[fieldName].Value()
	password := m.inputs[fieldPassword].Value()
	return func() tea.Msg {
		return loginDoneMsg{err: form.Submit(context.Background(), code, name, password)}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(brandStyle.Render("TREKO-Gestão de estoque"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		prefix := "  "
		if i == m.focus {
			prefix = focusedStyle.Render("> ")
		}
		b.WriteString(prefix + in.View() + "\n")
	}
	if msg := m.form.Message(); msg != "" {
		b.WriteString("\n" + errorStyle.Render(msg) + "\n")
	}
	label := m.form.ButtonLabel()
	if m.submitting {
		label = panel.LabelLoggingIn
	}
	b.WriteString("\n" + buttonStyle.Render(label))
	b.WriteString("\n\n" + mutedStyle.Render("tab: próximo campo • enter: entrar • ctrl+c: sair"))
	return panelStyle.Render(b.String())
}
