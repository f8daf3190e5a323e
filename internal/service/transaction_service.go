package service

import (
	"context"
	"log/slog"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/repository"
)

// TransactionInput is a validated transaction not yet tied to a client
type TransactionInput struct {
	Kind     domain.TransactionKind
	Goods    domain.Goods
	Price    domain.Price
	Quantity domain.Quantity
	Date     domain.Date
}

// ClientSummary totals a client's transactions
type ClientSummary struct {
	Client       *domain.Client
	Transactions int
	Bought       float64 // total paid to the client
	Sold         float64 // total received from the client
	Net          float64 // Sold - Bought
}

// TransactionService records goods transactions against clients
type TransactionService interface {
	// Add records a transaction for the client at idx
	Add(ctx context.Context, idx domain.Index, in TransactionInput) (*domain.Transaction, error)

	// List returns the transactions of the client at idx, oldest first
	List(ctx context.Context, idx domain.Index) (*domain.Client, []*domain.Transaction, error)

	// Summary totals the transactions of the client at idx
	Summary(ctx context.Context, idx domain.Index) (*ClientSummary, error)
}

type transactionService struct {
	clientRepo repository.ClientRepository
	txRepo     repository.TransactionRepository
	log        *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	clientRepo repository.ClientRepository,
	txRepo repository.TransactionRepository,
	log *slog.Logger,
) TransactionService {
	return &transactionService{
		clientRepo: clientRepo,
		txRepo:     txRepo,
		log:        log,
	}
}

func (s *transactionService) Add(ctx context.Context, idx domain.Index, in TransactionInput) (*domain.Transaction, error) {
	client, err := clientAt(ctx, s.clientRepo, idx)
	if err != nil {
		return nil, err
	}

	t := domain.NewTransaction(client.ID, in.Kind, in.Goods, in.Price, in.Quantity, in.Date)
	if err := s.txRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("transaction added",
		"id", t.ID,
		"client", client.Name.String(),
		"kind", string(t.Kind),
		"total", t.Total(),
	)
	return t, nil
}

func (s *transactionService) List(ctx context.Context, idx domain.Index) (*domain.Client, []*domain.Transaction, error) {
	client, err := clientAt(ctx, s.clientRepo, idx)
	if err != nil {
		return nil, nil, err
	}

	txs, err := s.txRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, nil, err
	}
	return client, txs, nil
}

func (s *transactionService) Summary(ctx context.Context, idx domain.Index) (*ClientSummary, error) {
	client, txs, err := s.List(ctx, idx)
	if err != nil {
		return nil, err
	}

	summary := &ClientSummary{Client: client, Transactions: len(txs)}
	for _, t := range txs {
		switch t.Kind {
		case domain.TransactionBuy:
			summary.Bought += t.Total()
		case domain.TransactionSell:
			summary.Sold += t.Total()
		}
		summary.Net += t.SignedTotal()
	}
	return summary, nil
}
