// Package parser turns raw user strings into domain values.
//
// Every function trims its input, runs the field's checks in their declared
// order and reports the first failure as a *ParseError. Input that passes is
// handed to the domain constructor. The functions keep no state and are safe
// to call from any goroutine.
package parser

import (
	"strconv"
	"strings"

	"github.com/andy/tradebook/internal/domain"
)

// Field names carried on ParseError
const (
	FieldIndex    = "index"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldTag      = "tag"
	FieldText     = "remark"
	FieldGoods    = "goods"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
	FieldDate     = "date"
	FieldKind     = "kind"
)

// parse trims raw, reports the first failing rule and otherwise builds the value
func parse[T any](field, raw string, rules []domain.Rule, build func(string) (T, error)) (T, error) {
	trimmed := strings.TrimSpace(raw)
	if msg, failed := domain.FirstViolation(rules, trimmed); failed {
		var zero T
		return zero, newParseError(field, msg)
	}
	return build(trimmed)
}

func single(check func(string) bool, message string) []domain.Rule {
	return []domain.Rule{{Check: check, Message: message}}
}

// ParseIndex parses a one-based index into a zero-based domain.Index
func ParseIndex(oneBased string) (domain.Index, error) {
	trimmed := strings.TrimSpace(oneBased)
	if !domain.IsNonZeroUnsignedInteger(trimmed) {
		return domain.Index{}, newParseError(FieldIndex, domain.MessageInvalidIndex)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return domain.Index{}, newParseError(FieldIndex, domain.MessageInvalidIndex)
	}
	return domain.IndexFromOneBased(n)
}

// ParseName parses a client name
func ParseName(name string) (domain.Name, error) {
	return parse(FieldName, name, single(domain.IsValidName, domain.MessageNameConstraints), domain.NewName)
}

// ParsePhone parses a client phone number
func ParsePhone(phone string) (domain.Phone, error) {
	return parse(FieldPhone, phone, single(domain.IsValidPhone, domain.MessagePhoneConstraints), domain.NewPhone)
}

// ParseEmail parses a client email address
func ParseEmail(email string) (domain.Email, error) {
	return parse(FieldEmail, email, single(domain.IsValidEmail, domain.MessageEmailConstraints), domain.NewEmail)
}

// ParseAddress parses a client address
func ParseAddress(address string) (domain.Address, error) {
	return parse(FieldAddress, address, single(domain.IsValidAddress, domain.MessageAddressConstraints), domain.NewAddress)
}

// ParseText parses a remark
func ParseText(text string) (domain.Text, error) {
	return parse(FieldText, text, single(domain.IsValidText, domain.MessageTextConstraints), domain.NewText)
}

// ParseTag parses a single tag name
func ParseTag(tag string) (domain.Tag, error) {
	return parse(FieldTag, tag, single(domain.IsValidTagName, domain.MessageTagConstraints), domain.NewTag)
}

// ParseTags parses every tag and drops duplicates. It stops at the first
// invalid tag. No tags yields an empty, non-nil slice.
func ParseTags(tags []string) ([]domain.Tag, error) {
	parsed := make([]domain.Tag, 0, len(tags))
	for _, raw := range tags {
		tag, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, tag)
	}
	return domain.UniqueTags(parsed), nil
}

// ParseGoods parses the goods of a transaction
func ParseGoods(goods string) (domain.Goods, error) {
	return parse(FieldGoods, goods, single(domain.IsValidGoods, domain.MessageGoodsConstraints), domain.NewGoods)
}

// ParsePrice parses a unit price
func ParsePrice(price string) (domain.Price, error) {
	return parse(FieldPrice, price, domain.PriceRules(), domain.NewPrice)
}

// ParseQuantity parses a unit count
func ParseQuantity(quantity string) (domain.Quantity, error) {
	return parse(FieldQuantity, quantity, domain.QuantityRules(), domain.NewQuantity)
}

// ParseDate parses a DD/MM/YYYY date
func ParseDate(date string) (domain.Date, error) {
	return parse(FieldDate, date, single(domain.IsValidDate, domain.MessageDateConstraints), domain.NewDate)
}

// ParseKind parses a transaction kind, buy or sell
func ParseKind(kind string) (domain.TransactionKind, error) {
	k, err := domain.ParseTransactionKind(strings.TrimSpace(kind))
	if err != nil {
		return "", newParseError(FieldKind, domain.MessageKindConstraints)
	}
	return k, nil
}
