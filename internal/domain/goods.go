package domain

import "strings"

const MessageGoodsConstraints = "Goods should not be left empty."

// Goods names the item that changed hands in a transaction
type Goods struct {
	name string
}

// NewGoods creates Goods from a non-blank name
func NewGoods(name string) (Goods, error) {
	if !IsValidGoods(name) {
		return Goods{}, invalidArgument(MessageGoodsConstraints)
	}
	return Goods{name: name}, nil
}

// IsValidGoods returns true if s has at least one non-space character
func IsValidGoods(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (g Goods) String() string {
	return g.name
}

func (g Goods) Equals(other Goods) bool {
	return g.name == other.name
}

// IsZero returns true for the unset Goods
func (g Goods) IsZero() bool {
	return g.name == ""
}
