package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andy/tradebook/internal/db"
	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"), "test-key")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations())
	t.Cleanup(func() { database.Close() })
	return database
}

func mustClient(t *testing.T, name, phone, email, address string, tags ...string) *domain.Client {
	t.Helper()
	n, err := parser.ParseName(name)
	require.NoError(t, err)
	p, err := parser.ParsePhone(phone)
	require.NoError(t, err)
	e, err := parser.ParseEmail(email)
	require.NoError(t, err)
	a, err := parser.ParseAddress(address)
	require.NoError(t, err)
	tg, err := parser.ParseTags(tags)
	require.NoError(t, err)
	return domain.NewClient(n, p, e, a, tg)
}

func mustTx(t *testing.T, clientID int64, kind, goods, price, qty, date string) *domain.Transaction {
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
	return domain.NewTransaction(clientID, k, g, p, q, d)
}

func TestClientRepo_CreateListUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(openTestDB(t))

	alice := mustClient(t, "Alice Tan", "91234567", "alice@example.com", "1 Orchard Rd", "vip", "friend")
	bob := mustClient(t, "Bob", "999", "bob@b.co", "2 Bukit Rd")
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))
	assert.NotZero(t, alice.ID)

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Alice Tan", clients[0].Name.String())
	assert.Equal(t, []string{"vip", "friend"}, clients[0].TagNames())
	assert.Empty(t, clients[1].Tags)
	assert.Nil(t, clients[1].Remark)

	// Same name, different case
	dup := mustClient(t, "alice tan", "123", "x@y.z", "addr")
	require.Error(t, repo.Create(ctx, dup))

	tags, err := parser.ParseTags([]string{"wholesale"})
	require.NoError(t, err)
	alice.Tags = tags
	require.NoError(t, repo.Update(ctx, alice))

	got, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"wholesale"}, got.TagNames())
}

func TestClientRepo_Remark(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(openTestDB(t))

	c := mustClient(t, "Carol", "555", "c@c.cc", "3 Road")
	require.NoError(t, repo.Create(ctx, c))

	remark, err := parser.ParseText("pays in cash")
	require.NoError(t, err)
	require.NoError(t, repo.SetRemark(ctx, c.ID, &remark))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Remark)
	assert.Equal(t, "pays in cash", got.Remark.String())

	require.NoError(t, repo.SetRemark(ctx, c.ID, nil))
	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Remark)

	require.ErrorIs(t, repo.SetRemark(ctx, 999, nil), ErrNotFound)
}

func TestClientRepo_CorruptRowIsRejected(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	repo := NewClientRepo(database)

	c := mustClient(t, "Dave", "12345", "d@d.dd", "4 Road")
	require.NoError(t, repo.Create(ctx, c))

	_, err := database.Exec(`UPDATE clients SET phone = 'not a phone' WHERE id = ?`, c.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, c.ID)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTransactionRepo_RoundTripAndOrder(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	clients := NewClientRepo(database)
	txs := NewTransactionRepo(database)

	c := mustClient(t, "Eve", "888", "e@e.ee", "5 Road")
	require.NoError(t, clients.Create(ctx, c))

	later := mustTx(t, c.ID, "sell", "Durian", "12.50", "4", "07/01/2024")
	earlier := mustTx(t, c.ID, "buy", "Mango", "3", "10", "29/02/1900")
	require.NoError(t, txs.Create(ctx, later))
	require.NoError(t, txs.Create(ctx, earlier))

	list, err := txs.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "29/02/1900", list[0].Date.Canonical())
	assert.Equal(t, domain.TransactionBuy, list[0].Kind)
	assert.Equal(t, "12.50", list[1].Price.Canonical())
	assert.True(t, list[1].Price.Equals(later.Price))
	assert.Equal(t, 50.0, list[1].Total())

	require.NoError(t, clients.Delete(ctx, c.ID))
	list, err = txs.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
