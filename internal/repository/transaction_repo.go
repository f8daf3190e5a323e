package repository

import (
	"context"
	"fmt"

	"github.com/andy/tradebook/internal/db"
	"github.com/andy/tradebook/internal/domain"
)

// TransactionRepo is a SQLite implementation of TransactionRepository
type TransactionRepo struct {
	db *db.DB
}

// NewTransactionRepo creates a new TransactionRepo
func NewTransactionRepo(database *db.DB) *TransactionRepo {
	return &TransactionRepo{db: database}
}

// sortKey orders dates as text, YYYY-MM-DD
func sortKey(d domain.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// Create inserts a new transaction
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}

	query := `
		INSERT INTO transactions (client_id, kind, goods, price, quantity, date, date_sort, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		t.ClientID,
		string(t.Kind),
		t.Goods.String(),
		t.Price.Canonical(),
		t.Quantity.Canonical(),
		t.Date.Canonical(),
		sortKey(t.Date),
		t.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get transaction ID: %w", err)
	}

	t.ID = id
	return nil
}

// ListByClient returns a client's transactions, oldest first
func (r *TransactionRepo) ListByClient(ctx context.Context, clientID int64) ([]*domain.Transaction, error) {
	query := `
		SELECT id, client_id, kind, goods, price, quantity, date, created_at
		FROM transactions
		WHERE client_id = ?
		ORDER BY date_sort, id
	`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		var (
			id, cid                             int64
			kind, goods, price, qty, date, made string
		)
		if err := rows.Scan(&id, &cid, &kind, &goods, &price, &qty, &date, &made); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		t, err := toTransaction(id, cid, kind, goods, price, qty, date, made)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// Delete removes a single transaction
func (r *TransactionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return expectOneRow(result, "transaction")
}

// DeleteByClient removes every transaction of a client
func (r *TransactionRepo) DeleteByClient(ctx context.Context, clientID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE client_id = ?`, clientID); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

// toTransaction re-validates each stored canonical form
func toTransaction(id, clientID int64, kind, goods, price, qty, date, createdAt string) (*domain.Transaction, error) {
	k, err := domain.ParseTransactionKind(kind)
	if err != nil {
		return nil, fmt.Errorf("transaction %d kind: %w", id, err)
	}
	g, err := domain.NewGoods(goods)
	if err != nil {
		return nil, fmt.Errorf("transaction %d goods: %w", id, err)
	}
	p, err := domain.NewPrice(price)
	if err != nil {
		return nil, fmt.Errorf("transaction %d price: %w", id, err)
	}
	q, err := domain.NewQuantity(qty)
	if err != nil {
		return nil, fmt.Errorf("transaction %d quantity: %w", id, err)
	}
	d, err := domain.NewDate(date)
	if err != nil {
		return nil, fmt.Errorf("transaction %d date: %w", id, err)
	}

	t := domain.NewTransaction(clientID, k, g, p, q, d)
	t.ID = id
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return t, nil
}
