package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/parser"
	"github.com/andy/tradebook/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clientMode represents the current screen mode
type clientMode int

const (
	clientModeList clientMode = iota
	clientModeNew
)

// form field indices
const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldAddress
	fieldTags
)

// ClientsModel displays the client list and the new client form
type ClientsModel struct {
	svc       service.ClientService
	clients   []*domain.Client
	cursor    int
	loading   bool
	err       error
	statusMsg string

	// Form state
	mode          clientMode
	form          *form
	autoNewClient bool // open new client form after data loads
}

type clientsDataMsg struct {
	clients []*domain.Client
	err     error
}

type clientSavedMsg struct {
	name string
	err  error
}

// NewClientsModel creates a new clients screen model
func NewClientsModel(svc service.ClientService) *ClientsModel {
	return &ClientsModel{
		svc:     svc,
		loading: true,
	}
}

// IsCapturingInput returns true when the form is active
func (m *ClientsModel) IsCapturingInput() bool {
	return m.mode == clientModeNew
}

func (m *ClientsModel) Init() tea.Cmd {
	return m.loadClients()
}

func (m *ClientsModel) loadClients() tea.Cmd {
	return func() tea.Msg {
		clients, err := m.svc.List(context.Background())
		return clientsDataMsg{clients: clients, err: err}
	}
}

func newClientForm() *form {
	return newForm([]formField{
		{label: "Name:", placeholder: "Alex Yeoh", charLimit: 100, width: 40, check: func(s string) error {
			_, err := parser.ParseName(s)
			return err
		}},
		{label: "Phone:", placeholder: "87438807", charLimit: 20, width: 20, check: func(s string) error {
			_, err := parser.ParsePhone(s)
			return err
		}},
		{label: "Email:", placeholder: "alexyeoh@example.com", charLimit: 100, width: 40, check: func(s string) error {
			_, err := parser.ParseEmail(s)
			return err
		}},
		{label: "Address:", placeholder: "Blk 30 Geylang Street 29, #06-40", charLimit: 200, width: 50, check: func(s string) error {
			_, err := parser.ParseAddress(s)
			return err
		}},
		{label: "Tags (optional):", placeholder: "friends vip", charLimit: 200, width: 40, check: func(s string) error {
			_, err := parser.ParseTags(splitTags(s))
			return err
		}},
	})
}

func (m *ClientsModel) openForm() tea.Cmd {
	m.mode = clientModeNew
	m.form = newClientForm()
	return m.form.Init()
}

// buildClient parses every form field into a client
func (m *ClientsModel) buildClient() (*domain.Client, error) {
	name, err := parser.ParseName(m.form.Value(fieldName))
	if err != nil {
		return nil, err
	}
	phone, err := parser.ParsePhone(m.form.Value(fieldPhone))
	if err != nil {
		return nil, err
	}
	email, err := parser.ParseEmail(m.form.Value(fieldEmail))
	if err != nil {
		return nil, err
	}
	address, err := parser.ParseAddress(m.form.Value(fieldAddress))
	if err != nil {
		return nil, err
	}
	tags, err := parser.ParseTags(splitTags(m.form.Value(fieldTags)))
	if err != nil {
		return nil, err
	}
	return domain.NewClient(name, phone, email, address, tags), nil
}

func (m *ClientsModel) saveClient() tea.Cmd {
	client, err := m.buildClient()
	return func() tea.Msg {
		if err != nil {
			return clientSavedMsg{err: err}
		}
		if err := m.svc.Add(context.Background(), client); err != nil {
			return clientSavedMsg{err: err}
		}
		return clientSavedMsg{name: client.Name.String()}
	}
}

func (m *ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle OpenNewClientFormMsg at the top so it works regardless of mode
	if _, ok := msg.(OpenNewClientFormMsg); ok {
		if m.loading {
			// Data hasn't loaded yet; set flag to auto-open form when it does
			m.autoNewClient = true
			return m, nil
		}
		return m, m.openForm()
	}

	if m.mode == clientModeNew {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadClients()

	case clientsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clients = msg.clients
			if m.cursor >= len(m.clients) {
				m.cursor = max(0, len(m.clients)-1)
			}
		}
		if m.autoNewClient {
			m.autoNewClient = false
			return m, m.openForm()
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		m.statusMsg = ""
		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.clients)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			return m, m.openForm()
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				idx, err := domain.IndexFromZeroBased(m.cursor)
				if err != nil {
					m.err = err
					return m, nil
				}
				return m, func() tea.Msg { return ShowTransactionsMsg{Index: idx} }
			}
		}
	}

	return m, nil
}

func (m *ClientsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientSavedMsg:
		if msg.err != nil {
			m.form.SetError(saveErrorMessage(msg.err))
			return m, nil
		}
		m.mode = clientModeList
		m.form = nil
		m.statusMsg = fmt.Sprintf("New client added: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Back) {
			m.mode = clientModeList
			m.form = nil
			return m, nil
		}
	}

	done, cmd := m.form.Update(msg)
	if done {
		return m, m.saveClient()
	}
	return m, cmd
}

// saveErrorMessage turns a failed save into the line shown under the form
func saveErrorMessage(err error) string {
	return service.UserMessage(err)
}

func (m *ClientsModel) View() string {
	if m.mode == clientModeNew {
		var s string
		if len(m.clients) == 0 {
			s += titleStyle.Render("Welcome to tradebook!") + "\n"
			s += subtitleStyle.Render("  Add your first client to get started.") + "\n\n"
		} else {
			s += titleStyle.Render("New Client") + "\n\n"
		}
		return s + m.form.View()
	}
	return m.viewList()
}

func (m *ClientsModel) viewList() string {
	if m.loading {
		return "Loading clients..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := titleStyle.Render("Clients") + "\n\n"

	if m.statusMsg != "" {
		s += statusStyle.Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.clients) == 0 {
		s += subtitleStyle.Render("  No clients yet. Press 'n' to add one.") + "\n"
		return s
	}

	for i, client := range m.clients {
		s += m.renderClient(i, client) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: transactions")
	return s
}

func (m *ClientsModel) renderClient(index int, client *domain.Client) string {
	indicator := "  "
	if index == m.cursor {
		indicator = "> "
	}

	line1 := fmt.Sprintf("%s%d. %s", indicator, index+1, client.Name)
	if len(client.Tags) > 0 {
		tags := make([]string, len(client.Tags))
		for i, t := range client.Tags {
			tags[i] = t.String()
		}
		line1 += " " + subtitleStyle.Render(strings.Join(tags, " "))
	}
	line2 := fmt.Sprintf("    %s  |  %s", client.Phone, client.Email)
	line3 := "    " + truncateStr(client.Address.String(), 60)
	if client.Remark != nil {
		line3 += "\n    " + subtitleStyle.Render(truncateStr(client.Remark.String(), 60))
	}

	if index == m.cursor {
		return focusStyle.Render(line1) + "\n" + line2 + "\n" + line3
	}
	return line1 + "\n" + subtitleStyle.Render(line2) + "\n" + subtitleStyle.Render(line3)
}
