package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iyhunko/treko-inventory/internal/panel"
	"github.com/iyhunko/treko-inventory/internal/store"
)

// Focus order of the manager screen.
const (
	focusName = iota
	focusDescription
	focusPrice
	focusSearch
	focusList
	focusCount
)

type (
	loadedMsg    struct{ err error }
	submittedMsg struct{ err error }
	deletedMsg   struct{ err error }
	logoutMsg    struct{}
)

type managerModel struct {
	mgr      *panel.Manager
	employee store.Employee
	inputs   [focusList]textinput.Model
	focus    int
	cursor   int
	scroll   uint64
}

func newManagerModel(mgr *panel.Manager, employee store.Employee) managerModel {
	name := textinput.New()
	name.Placeholder = "Nome do Produto"
	name.CharLimit = 255

	description := textinput.New()
	description.Placeholder = "Descrição"
	description.CharLimit = 1024

	price := textinput.New()
	price.Placeholder = "Preço (ex: 19.99)"
	price.CharLimit = 16

	search := textinput.New()
	search.Placeholder = "Pesquisar por nome ou descrição..."

	m := managerModel{
		mgr:      mgr,
		employee: employee,
		inputs:   [focusList]textinput.Model{name, description, price, search},
	}
	m.inputs[focusName].Focus()
	return m
}

func (m managerModel) Init() tea.Cmd {
	mgr := m.mgr
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return loadedMsg{err: mgr.Load(context.Background())}
	})
}

func (m managerModel) Update(msg tea.Msg) (managerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.clampCursor()
		return m, nil
	case submittedMsg, deletedMsg:
		// a delete may have ended the edit session
		m.syncDraft()
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.mgr.Snapshot().ConfirmDelete {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}
	return m.updateInput(msg)
}

func (m managerModel) updateConfirm(msg tea.KeyMsg) (managerModel, tea.Cmd) {
	switch msg.String() {
	case "y", "s", "enter":
		mgr := m.mgr
		return m, func() tea.Msg {
			return deletedMsg{err: mgr.ConfirmDelete(context.Background())}
		}
	case "n", "esc":
		m.mgr.CancelDelete()
	}
	return m, nil
}

func (m managerModel) updateKey(msg tea.KeyMsg) (managerModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount), nil
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	case "ctrl+o":
		return m, func() tea.Msg { return logoutMsg{} }
	case "esc":
		if m.mgr.Snapshot().CanCancel {
			m.mgr.CancelEdit()
			m.syncDraft()
		}
		return m, nil
	case "enter":
		if m.focus < focusSearch {
			mgr := m.mgr
			return m, func() tea.Msg {
				return submittedMsg{err: mgr.Submit(context.Background())}
			}
		}
	}

	if m.focus == focusList {
		return m.updateList(msg)
	}
	return m.updateInput(msg)
}

func (m managerModel) updateList(msg tea.KeyMsg) (managerModel, tea.Cmd) {
	products := m.mgr.Filtered()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(products)-1 {
			m.cursor++
		}
	case "e", "enter":
		if m.cursor < len(products) {
			m.mgr.StartEdit(products[m.cursor])
			m.syncDraft()
		}
	case "d", "x":
		if m.cursor < len(products) {
			m.mgr.RequestDelete(products[m.cursor].ID)
		}
	}
	return m, nil
}

func (m managerModel) updateInput(msg tea.Msg) (managerModel, tea.Cmd) {
	if m.focus >= focusList {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	value := m.inputs[m.focus].Value()
	switch m.focus {
	case focusName:
		m.mgr.SetName(value)
	case focusDescription:
		m.mgr.SetDescription(value)
	case focusPrice:
		m.mgr.SetPriceText(value)
	case focusSearch:
		m.mgr.SetSearchTerm(value)
		m.clampCursor()
	}
	return m, cmd
}

// syncDraft copies the Manager's draft into the form inputs and jumps
// back to the form when a new edit started.
func (m *managerModel) syncDraft() {
	v := m.mgr.Snapshot()
	m.inputs[focusName].SetValue(v.Draft.Name)
	m.inputs[focusDescription].SetValue(v.Draft.Description)
	m.inputs[focusPrice].SetValue(v.Draft.PriceText)
	if v.ScrollSignal != m.scroll {
		m.scroll = v.ScrollSignal
		*m = m.setFocus(focusName)
	}
}

func (m managerModel) setFocus(i int) managerModel {
	if m.focus < focusList {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if m.focus < focusList {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m *managerModel) clampCursor() {
	n := len(m.mgr.Filtered())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m managerModel) View() string {
	v := m.mgr.Snapshot()

	header := headerStyle.Render("Gerenciamento de produtos") + "  " +
		mutedStyle.Render(fmt.Sprintf("%s (%s) • ctrl+o: sair", m.employee.Name, m.employee.Code))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, m.formView(v), " ", m.listView(v)),
	)
}

func (m managerModel) formView(v panel.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.FormTitle) + "\n\n")
	for i := focusName; i <= focusPrice; i++ {
		b.WriteString(m.prefix(i) + m.inputs[i].View() + "\n")
	}
	b.WriteString("\n" + buttonStyle.Render(v.SubmitLabel))
	if v.CanCancel {
		b.WriteString("  " + mutedStyle.Render("esc: Cancelar"))
	}
	return panelStyle.Width(44).Render(b.String())
}

func (m managerModel) listView(v panel.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Heading) + "\n")
	b.WriteString(m.prefix(focusSearch) + m.inputs[focusSearch].View() + "\n\n")

	if v.Err != "" {
		b.WriteString(errorStyle.Render(v.Err) + "\n")
	}
	if v.ConfirmDelete {
		b.WriteString(confirmStyle.Render(panel.MsgConfirmDelete+" (s/n)") + "\n")
	}

	switch {
	case v.LoadState == panel.LoadLoading:
		b.WriteString(mutedStyle.Render(panel.MsgLoading))
	case len(v.Products) == 0:
		b.WriteString(mutedStyle.Render(v.EmptyText))
	default:
		for i, p := range v.Products {
			style := cardStyle
			if m.focus == focusList && i == m.cursor {
				style = selectedCardStyle
			}
			card := fmt.Sprintf("%s  %s\n%s",
				nameStyle.Render(p.Name),
				priceStyle.Render(panel.FormatPrice(p.Price)),
				mutedStyle.Render(panel.DescriptionOrDefault(p.Description)))
			b.WriteString(style.Render(card) + "\n")
		}
	}

	if m.focus == focusList {
		b.WriteString("\n" + mutedStyle.Render("↑/↓: mover • e: Editar • d: Excluir"))
	}
	return panelStyle.Width(60).Render(b.String())
}

func (m managerModel) prefix(i int) string {
	if i == m.focus {
		return focusedStyle.Render("> ")
	}
	return "  "
}
