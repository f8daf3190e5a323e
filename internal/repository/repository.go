package repository

import (
	"context"
	"errors"

	"github.com/andy/tradebook/internal/domain"
)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = errors.New("not found")

// ClientRepository manages client persistence
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error) // in display order
	Update(ctx context.Context, client *domain.Client) error
	SetRemark(ctx context.Context, id int64, remark *domain.Text) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository manages transaction persistence
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Transaction, error) // oldest first
	Delete(ctx context.Context, id int64) error
	DeleteByClient(ctx context.Context, clientID int64) error
}
