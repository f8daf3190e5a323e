package tui

import (
	"context"
	"fmt"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/parser"
	"github.com/andy/tradebook/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// transaction form field indices
const (
	fieldKind = iota
	fieldGoods
	fieldPrice
	fieldQuantity
	fieldDate
)

// TransactionsModel lists one client's transactions and records new ones
type TransactionsModel struct {
	svc      service.TransactionService
	currency string

	index    domain.Index
	selected bool
	summary  *service.ClientSummary
	txs      []*domain.Transaction
	loading  bool
	err      error
	status   string

	form *form // nil unless adding
}

type transactionsDataMsg struct {
	summary *service.ClientSummary
	txs     []*domain.Transaction
	err     error
}

type transactionSavedMsg struct {
	tx  *domain.Transaction
	err error
}

// NewTransactionsModel creates a new transactions screen model
func NewTransactionsModel(svc service.TransactionService, currency string) *TransactionsModel {
	return &TransactionsModel{svc: svc, currency: currency}
}

// IsCapturingInput returns true when the form is active
func (m *TransactionsModel) IsCapturingInput() bool {
	return m.form != nil
}

func (m *TransactionsModel) Init() tea.Cmd {
	if !m.selected {
		return nil
	}
	return m.load()
}

// Show switches the screen to the client at idx
func (m *TransactionsModel) Show(idx domain.Index) tea.Cmd {
	m.index = idx
	m.selected = true
	m.form = nil
	m.status = ""
	return m.load()
}

func (m *TransactionsModel) load() tea.Cmd {
	m.loading = true
	idx := m.index
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := m.svc.Summary(ctx, idx)
		if err != nil {
			return transactionsDataMsg{err: err}
		}
		_, txs, err := m.svc.List(ctx, idx)
		return transactionsDataMsg{summary: summary, txs: txs, err: err}
	}
}

func newTransactionForm() *form {
	return newForm([]formField{
		{label: "Kind (buy/sell):", placeholder: "sell", charLimit: 4, width: 10, check: func(s string) error {
			_, err := parser.ParseKind(s)
			return err
		}},
		{label: "Goods:", placeholder: "Durian", charLimit: 100, width: 40, check: func(s string) error {
			_, err := parser.ParseGoods(s)
			return err
		}},
		{label: "Price:", placeholder: "12.50", charLimit: 20, width: 20, check: func(s string) error {
			_, err := parser.ParsePrice(s)
			return err
		}},
		{label: "Quantity:", placeholder: "10", charLimit: 20, width: 20, check: func(s string) error {
			_, err := parser.ParseQuantity(s)
			return err
		}},
		{label: "Date (DD/MM/YYYY):", placeholder: "07/01/2024", charLimit: 10, width: 12, check: func(s string) error {
			_, err := parser.ParseDate(s)
			return err
		}},
	})
}

func (m *TransactionsModel) buildInput() (service.TransactionInput, error) {
	var in service.TransactionInput
	var err error
	if in.Kind, err = parser.ParseKind(m.form.Value(fieldKind)); err != nil {
		return in, err
	}
	if in.Goods, err = parser.ParseGoods(m.form.Value(fieldGoods)); err != nil {
		return in, err
	}
	if in.Price, err = parser.ParsePrice(m.form.Value(fieldPrice)); err != nil {
		return in, err
	}
	if in.Quantity, err = parser.ParseQuantity(m.form.Value(fieldQuantity)); err != nil {
		return in, err
	}
	if in.Date, err = parser.ParseDate(m.form.Value(fieldDate)); err != nil {
		return in, err
	}
	return in, nil
}

func (m *TransactionsModel) saveTransaction() tea.Cmd {
	in, err := m.buildInput()
	idx := m.index
	return func() tea.Msg {
		if err != nil {
			return transactionSavedMsg{err: err}
		}
		tx, err := m.svc.Add(context.Background(), idx, in)
		return transactionSavedMsg{tx: tx, err: err}
	}
}

func (m *TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		if m.selected {
			return m, m.load()
		}

	case transactionsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.summary = msg.summary
			m.txs = msg.txs
		}

	case tea.KeyMsg:
		if m.loading || !m.selected {
			return m, nil
		}
		m.status = ""

		switch {
		case key.Matches(msg, DefaultKeyMap.New):
			m.form = newTransactionForm()
			return m, m.form.Init()
		case key.Matches(msg, DefaultKeyMap.Back):
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenClients} }
		}
	}

	return m, nil
}

func (m *TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionSavedMsg:
		if msg.err != nil {
			m.form.SetError(saveErrorMessage(msg.err))
			return m, nil
		}
		m.form = nil
		m.status = fmt.Sprintf("Recorded: %s %s x %s", msg.tx.Kind, msg.tx.Goods, msg.tx.Quantity)
		return m, m.load()

	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Back) {
			m.form = nil
			return m, nil
		}
	}

	done, cmd := m.form.Update(msg)
	if done {
		return m, m.saveTransaction()
	}
	return m, cmd
}

func (m *TransactionsModel) View() string {
	if !m.selected {
		return subtitleStyle.Render("  Select a client on the clients screen first.")
	}
	if m.loading {
		return "Loading transactions..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := titleStyle.Render(fmt.Sprintf("Transactions: %s", m.summary.Client.Name)) + "\n\n"

	if m.form != nil {
		return s + m.form.View()
	}

	if m.status != "" {
		s += statusStyle.Render("  "+m.status) + "\n\n"
	}

	if len(m.txs) == 0 {
		s += subtitleStyle.Render("  No transactions yet. Press 'n' to record one.") + "\n"
	}

	for _, t := range m.txs {
		style := sellStyle
		if t.Kind == domain.TransactionBuy {
			style = buyStyle
		}
		s += fmt.Sprintf("  %-12s %s %-20s %6s @ %-12s %s\n",
			t.Date,
			style.Render(fmt.Sprintf("%-4s", t.Kind)),
			truncateStr(t.Goods.String(), 20),
			t.Quantity,
			formatMoney(m.currency, t.Price.Value()),
			formatMoney(m.currency, t.SignedTotal()),
		)
	}

	s += fmt.Sprintf("\n  Bought: %s  Sold: %s  Net: %s\n",
		formatMoney(m.currency, m.summary.Bought),
		formatMoney(m.currency, m.summary.Sold),
		totalStyle.Render(formatMoney(m.currency, m.summary.Net)),
	)

	s += "\n" + helpStyle.Render("  n: new transaction  esc: back to clients")
	return s
}
