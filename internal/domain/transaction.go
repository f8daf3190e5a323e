package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

const MessageKindConstraints = "Transaction kind should be either buy or sell."

// ParseTransactionKind reads a kind case-insensitively
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(s)) {
	case TransactionBuy:
		return TransactionBuy, nil
	case TransactionSell:
		return TransactionSell, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

type Transaction struct {
	ID        int64
	ClientID  int64
	Kind      TransactionKind
	Goods     Goods
	Price     Price
	Quantity  Quantity
	Date      Date
	CreatedAt time.Time
}

// NewTransaction creates a transaction against a client
func NewTransaction(clientID int64, kind TransactionKind, goods Goods, price Price, quantity Quantity, date Date) *Transaction {
	return &Transaction{
		ClientID:  clientID,
		Kind:      kind,
		Goods:     goods,
		Price:     price,
		Quantity:  quantity,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// Total returns price times quantity
func (t *Transaction) Total() float64 {
	return t.Price.Value() * float64(t.Quantity.Value())
}

// SignedTotal is positive for money received (sell) and negative for money paid (buy)
func (t *Transaction) SignedTotal() float64 {
	if t.Kind == TransactionBuy {
		return -t.Total()
	}
	return t.Total()
}

// Validate returns an error if the transaction is invalid
func (t *Transaction) Validate() error {
	if t.ClientID <= 0 {
		return errors.New("client ID is required")
	}
	if t.Kind != TransactionBuy && t.Kind != TransactionSell {
		return errors.New("transaction kind must be buy or sell")
	}
	if t.Goods.IsZero() {
		return errors.New("goods are required")
	}
	if t.Price.IsZero() {
		return errors.New("price is required")
	}
	if t.Quantity.IsZero() {
		return errors.New("quantity is required")
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
