package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/tradebook/internal/app"
	"github.com/andy/tradebook/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenClients Screen = iota
	ScreenTransactions
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenClients:
		return "Clients"
	case ScreenTransactions:
		return "Transactions"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	clientSvc     service.ClientService
	currentScreen Screen
	width         int
	height        int

	clients      *ClientsModel
	transactions *TransactionsModel

	// First-run state
	checkedFirstRun bool
	openForm        bool // start in the new client form

	err error
}

// New creates a new root model
func New(clients service.ClientService, txs service.TransactionService, currency string) Model {
	return Model{
		clientSvc:     clients,
		currentScreen: ScreenClients,
		clients:       NewClientsModel(clients),
		transactions:  NewTransactionsModel(txs, currency),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.clients.Init()}
	if m.openForm {
		cmds = append(cmds, func() tea.Msg { return OpenNewClientFormMsg{} })
	} else {
		cmds = append(cmds, m.checkFirstRun())
	}
	return tea.Batch(cmds...)
}

// checkFirstRun checks if any clients exist in the database
func (m *Model) checkFirstRun() tea.Cmd {
	return func() tea.Msg {
		clients, err := m.clientSvc.List(context.Background())
		if err != nil {
			return firstRunCheckMsg{hasClients: true} // assume yes on error
		}
		return firstRunCheckMsg{hasClients: len(clients) > 0}
	}
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (C, T, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

func (m *Model) activeScreen() tea.Model {
	if m.currentScreen == ScreenTransactions {
		return m.transactions
	}
	return m.clients
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// switchTo changes screen and asks it to reload
func (m *Model) switchTo(screen Screen) tea.Cmd {
	m.currentScreen = screen
	return func() tea.Msg { return RefreshDataMsg{} }
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit
			case key.Matches(msg, DefaultKeyMap.Clients):
				return m, m.switchTo(ScreenClients)
			case key.Matches(msg, DefaultKeyMap.Transactions):
				return m, m.switchTo(ScreenTransactions)
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case firstRunCheckMsg:
		if !m.checkedFirstRun && !msg.hasClients {
			m.checkedFirstRun = true
			m.currentScreen = ScreenClients
			return m, func() tea.Msg { return OpenNewClientFormMsg{} }
		}
		m.checkedFirstRun = true
		return m, nil

	case ShowTransactionsMsg:
		m.currentScreen = ScreenTransactions
		return m, m.transactions.Show(msg.Index)

	case SwitchScreenMsg:
		return m, m.switchTo(msg.Screen)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case clientsDataMsg, clientSavedMsg, OpenNewClientFormMsg:
		// Clients screen messages land there even while another screen is shown
		_, cmd := m.clients.Update(msg)
		return m, cmd

	case transactionsDataMsg, transactionSavedMsg:
		_, cmd := m.transactions.Update(msg)
		return m, cmd
	}

	_, cmd := m.activeScreen().Update(msg)
	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("tradebook - %s", m.currentScreen.String()))
	footer := footerStyle.Render("[C]lients  [T]ransactions  [Q]uit")
	content := m.activeScreen().View()

	errorDisplay := ""
	if m.err != nil {
		errorDisplay = errorStyle.Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	return run(New(a.ClientService, a.TransactionService, a.Currency()))
}

// RunNewClientForm starts the TUI in the new client form
func RunNewClientForm(a *app.App) error {
	m := New(a.ClientService, a.TransactionService, a.Currency())
	m.openForm = true
	return run(m)
}

func run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
