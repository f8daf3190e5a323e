package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/logging"
	"github.com/andy/tradebook/internal/parser"
	"github.com/andy/tradebook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mock implementations
type mockClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[int64]*domain.Client), nextID: 1}
}

func (m *mockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	client.ID = m.nextID
	m.nextID++
	c := *client
	m.clients[c.ID] = &c
	return nil
}
func (m *mockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if c, ok := m.clients[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, repository.ErrNotFound
}
func (m *mockClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(m.clients))
	for _, c := range m.clients {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (m *mockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if _, ok := m.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	c := *client
	m.clients[c.ID] = &c
	return nil
}
func (m *mockClientRepo) SetRemark(ctx context.Context, id int64, remark *domain.Text) error {
	c, ok := m.clients[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Remark = remark
	return nil
}
func (m *mockClientRepo) Delete(ctx context.Context, id int64) error {
	delete(m.clients, id)
	return nil
}

type mockTxRepo struct {
	txs    []*domain.Transaction
	nextID int64
}

func (m *mockTxRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	m.nextID++
	tx.ID = m.nextID
	m.txs = append(m.txs, tx)
	return nil
}
func (m *mockTxRepo) ListByClient(ctx context.Context, clientID int64) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range m.txs {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (m *mockTxRepo) Delete(ctx context.Context, id int64) error { return nil }
func (m *mockTxRepo) DeleteByClient(ctx context.Context, clientID int64) error {
	kept := m.txs[:0]
	for _, t := range m.txs {
		if t.ClientID != clientID {
			kept = append(kept, t)
		}
	}
	m.txs = kept
	return nil
}

func newClient(t *testing.T, name string) *domain.Client {
	t.Helper()
	n, err := parser.ParseName(name)
	require.NoError(t, err)
	p, _ := parser.ParsePhone("91234567")
	e, _ := parser.ParseEmail("someone@example.com")
	a, _ := parser.ParseAddress("1 Main St")
	return domain.NewClient(n, p, e, a, nil)
}

func index(t *testing.T, oneBased string) domain.Index {
	t.Helper()
	idx, err := parser.ParseIndex(oneBased)
	require.NoError(t, err)
	return idx
}

func setup(t *testing.T) (ClientService, TransactionService, *mockClientRepo, *mockTxRepo) {
	clients := newMockClientRepo()
	txs := &mockTxRepo{}
	log := logging.Discard()
	return NewClientService(clients, txs, log), NewTransactionService(clients, txs, log), clients, txs
}

func TestClientService_AddRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setup(t)

	require.NoError(t, svc.Add(ctx, newClient(t, "Alice")))
	err := svc.Add(ctx, newClient(t, "ALICE"))
	require.ErrorIs(t, err, ErrDuplicateClient)
}

func TestClientService_IndexLookup(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setup(t)

	require.NoError(t, svc.Add(ctx, newClient(t, "Alice")))
	require.NoError(t, svc.Add(ctx, newClient(t, "Bob")))

	c, err := svc.At(ctx, index(t, "2"))
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.Name.String())

	_, err = svc.At(ctx, index(t, "3"))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestClientService_Edit(t *testing.T) {
	ctx := context.Background()
	svc, _, repo, _ := setup(t)

	require.NoError(t, svc.Add(ctx, newClient(t, "Alice")))
	require.NoError(t, svc.Add(ctx, newClient(t, "Bob")))

	phone, err := parser.ParsePhone("65550000")
	require.NoError(t, err)
	tags, err := parser.ParseTags([]string{"vip"})
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, index(t, "1"), ClientPatch{Phone: &phone, Tags: tags})
	require.NoError(t, err)
	assert.Equal(t, "65550000", edited.Phone.String())
	assert.Equal(t, "65550000", repo.clients[edited.ID].Phone.String())
	assert.Equal(t, []string{"vip"}, repo.clients[edited.ID].TagNames())

	bob, err := parser.ParseName("bob")
	require.NoError(t, err)
	_, err = svc.Edit(ctx, index(t, "1"), ClientPatch{Name: &bob})
	require.ErrorIs(t, err, ErrDuplicateClient)

	_, err = svc.Edit(ctx, index(t, "1"), ClientPatch{})
	require.Error(t, err)
}

func TestClientService_DeleteRemovesTransactions(t *testing.T) {
	ctx := context.Background()
	clients, txSvc, _, txRepo := setup(t)

	require.NoError(t, clients.Add(ctx, newClient(t, "Alice")))
	_, err := txSvc.Add(ctx, index(t, "1"), input(t, "sell", "Durian", "10", "2", "01/01/2024"))
	require.NoError(t, err)
	require.Len(t, txRepo.txs, 1)

	deleted, err := clients.Delete(ctx, index(t, "1"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", deleted.Name.String())
	assert.Empty(t, txRepo.txs)

	list, err := clients.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClientService_Remark(t *testing.T) {
	ctx := context.Background()
	svc, _, repo, _ := setup(t)
	require.NoError(t, svc.Add(ctx, newClient(t, "Alice")))

	text, err := parser.ParseText("prefers mornings")
	require.NoError(t, err)

	c, err := svc.Remark(ctx, index(t, "1"), &text)
	require.NoError(t, err)
	require.NotNil(t, c.Remark)
	assert.Equal(t, "prefers mornings", repo.clients[c.ID].Remark.String())

	c, err = svc.Remark(ctx, index(t, "1"), nil)
	require.NoError(t, err)
	assert.Nil(t, c.Remark)
}

func input(t *testing.T, kind, goods, price, qty, date string) TransactionInput {
	t.Helper()
	k, err := parser.ParseKind(kind)
	require.NoError(t, err)
	g, err := parser.ParseGoods(goods)
	require.NoError(t, err)
	p, err := parser.ParsePrice(price)
	require.NoError(t, err)
	q, err := parser.ParseQuantity(qty)
	require.NoError(t, err)
	d, err := parser.ParseDate(date)
	require.NoError(t, err)
	return TransactionInput{Kind: k, Goods: g, Price: p, Quantity: q, Date: d}
}

func TestTransactionService_Summary(t *testing.T) {
	ctx := context.Background()
	clients, txSvc, _, _ := setup(t)

	require.NoError(t, clients.Add(ctx, newClient(t, "Alice")))
	idx := index(t, "1")

	_, err := txSvc.Add(ctx, idx, input(t, "sell", "Durian", "12.50", "4", "07/01/2024"))
	require.NoError(t, err)
	_, err = txSvc.Add(ctx, idx, input(t, "buy", "Mango", "3", "10", "08/01/2024"))
	require.NoError(t, err)

	summary, err := txSvc.Summary(ctx, idx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Transactions)
	assert.Equal(t, 50.0, summary.Sold)
	assert.Equal(t, 30.0, summary.Bought)
	assert.Equal(t, 20.0, summary.Net)
	assert.Equal(t, "Alice", summary.Client.Name.String())
}

func TestTransactionService_UnknownClient(t *testing.T) {
	ctx := context.Background()
	_, txSvc, _, _ := setup(t)

	_, err := txSvc.Add(ctx, index(t, "1"), input(t, "buy", "Mango", "3", "10", "08/01/2024"))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUserMessage(t *testing.T) {
	_, err := parser.ParsePrice("abc")
	require.Error(t, err)

	assert.Equal(t, MessageInvalidClientIndex, UserMessage(ErrIndexOutOfRange))
	assert.Equal(t, MessageDuplicateClient, UserMessage(fmt.Errorf("add: %w", ErrDuplicateClient)))
	assert.Equal(t, domain.MessagePriceConstraints, UserMessage(err))
}
