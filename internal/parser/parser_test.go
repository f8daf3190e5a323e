package parser

import (
	"errors"
	"testing"

	"github.com/andy/tradebook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireParseError asserts err is a *ParseError carrying message
func requireParseError(t *testing.T, err error, message string) {
	t.Helper()
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %v", err)
	assert.Equal(t, message, pe.Message)
	assert.False(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("  3 ")
	require.NoError(t, err)
	assert.Equal(t, 2, idx.ZeroBased())

	idx, err = ParseIndex("1")
	require.NoError(t, err)
	assert.Equal(t, 0, idx.ZeroBased())

	for _, s := range []string{"0", "-1", "+1", "01", "1 2", "", "abc", "99999999999"} {
		_, err := ParseIndex(s)
		requireParseError(t, err, "Index is not a non-zero unsigned integer.")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Price should not be left empty."},
		{"   ", "Price should not be left empty."},
		{"abc", "Price should only contain numbers and at most one decimal point."},
		{"-abc", "Price should only contain numbers and at most one decimal point."},
		{"-5", "Price should be not be negative."},
		{"-2000000", "Price should be not be negative."},
		{"2000000", "Price should be not be more than 1 million."},
		{"1000000", "Price should be not be more than 1 million."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParsePrice(tt.in)
			requireParseError(t, err, tt.want)
		})
	}

	p, err := ParsePrice("12.50")
	require.NoError(t, err)
	assert.Equal(t, 12.5, p.Value())
	assert.Equal(t, "12.50", p.String())
	assert.Equal(t, "12.50", p.Canonical())
}

func TestParseQuantity(t *testing.T) {
	_, err := ParseQuantity("0")
	requireParseError(t, err, domain.MessageQuantityZero)

	_, err = ParseQuantity("3.5")
	requireParseError(t, err, domain.MessageQuantityWhole)

	// fails both the numeric and the digit-only check; numeric comes first
	_, err = ParseQuantity("3x")
	requireParseError(t, err, domain.MessageQuantityConstraints)

	_, err = ParseQuantity("")
	requireParseError(t, err, domain.MessageQuantityEmpty)

	_, err = ParseQuantity("-0")
	requireParseError(t, err, domain.MessageQuantityNegative)

	_, err = ParseQuantity("1000000")
	requireParseError(t, err, domain.MessageQuantityTooLarge)

	q, err := ParseQuantity(" 10 ")
	require.NoError(t, err)
	assert.Equal(t, 10, q.Value())
	assert.Equal(t, "10", q.Canonical())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 29, d.Day())

	for _, s := range []string{"29/02/2023", "31/04/2024", "2024-01-07", ""} {
		_, err := ParseDate(s)
		requireParseError(t, err, "Date should be in the format DD/MM/YYYY")
	}

	d, err = ParseDate(" 07/01/2024 ")
	require.NoError(t, err)
	assert.Equal(t, "7 Jan 2024", d.String())
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NotNil(t, tags)

	tags, err = ParseTags([]string{})
	require.NoError(t, err)
	assert.Empty(t, tags)

	tags, err = ParseTags([]string{"friend", "vip", "friend"})
	require.NoError(t, err)
	assert.Len(t, tags, 2)
	assert.Equal(t, "friend", tags[0].Name())
	assert.Equal(t, "vip", tags[1].Name())

	_, err = ParseTags([]string{"ok", "bad tag", "#also bad"})
	requireParseError(t, err, domain.MessageTagConstraints)
}

func TestParseEmail(t *testing.T) {
	e, err := ParseEmail("a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", e.String())

	_, err = ParseEmail("not-an-email")
	requireParseError(t, err, domain.MessageEmailConstraints)
}

func TestParseSingleRuleFields(t *testing.T) {
	tests := []struct {
		field string
		parse func(string) error
		bad   string
		want  string
	}{
		{FieldName, func(s string) error { _, err := ParseName(s); return err }, "J@ne", domain.MessageNameConstraints},
		{FieldPhone, func(s string) error { _, err := ParsePhone(s); return err }, "12", domain.MessagePhoneConstraints},
		{FieldAddress, func(s string) error { _, err := ParseAddress(s); return err }, "  ", domain.MessageAddressConstraints},
		{FieldText, func(s string) error { _, err := ParseText(s); return err }, " ", domain.MessageTextConstraints},
		{FieldGoods, func(s string) error { _, err := ParseGoods(s); return err }, "", domain.MessageGoodsConstraints},
		{FieldTag, func(s string) error { _, err := ParseTag(s); return err }, "a b", domain.MessageTagConstraints},
		{FieldKind, func(s string) error { _, err := ParseKind(s); return err }, "gift", domain.MessageKindConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := tt.parse(tt.bad)
			requireParseError(t, err, tt.want)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" SELL ")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionSell, k)
}

func TestParse_TrimInsensitive(t *testing.T) {
	inputs := []string{"Alice Tan", "91234567", "a@b.c", "12.50", "10", "07/01/2024", "friend", "  "}

	for _, in := range inputs {
		padded := " \t" + in + " \n"

		n1, e1 := ParseName(in)
		n2, e2 := ParseName(padded)
		assert.Equal(t, n1, n2)
		assert.Equal(t, e1, e2)

		p1, e1 := ParsePrice(in)
		p2, e2 := ParsePrice(padded)
		assert.Equal(t, p1, p2)
		assert.Equal(t, e1, e2)

		q1, e1 := ParseQuantity(in)
		q2, e2 := ParseQuantity(padded)
		assert.Equal(t, q1, q2)
		assert.Equal(t, e1, e2)

		d1, e1 := ParseDate(in)
		d2, e2 := ParseDate(padded)
		assert.Equal(t, d1, d2)
		assert.Equal(t, e1, e2)

		m1, e1 := ParseEmail(in)
		m2, e2 := ParseEmail(padded)
		assert.Equal(t, m1, m2)
		assert.Equal(t, e1, e2)
	}
}

func TestParse_RoundTripThroughCanonicalForm(t *testing.T) {
	for _, s := range []string{"12.50", "0.5", "999999.99", "+3", ".25"} {
		p, err := ParsePrice(s)
		require.NoError(t, err, s)
		assert.True(t, isValidAll(domain.PriceRules(), p.Canonical()))
		again, err := ParsePrice(p.Canonical())
		require.NoError(t, err)
		assert.True(t, p.Equals(again))
	}

	for _, s := range []string{"1", "007", "999999"} {
		q, err := ParseQuantity(s)
		require.NoError(t, err, s)
		again, err := ParseQuantity(q.Canonical())
		require.NoError(t, err)
		assert.True(t, q.Equals(again))
	}

	for _, s := range []string{"07/01/2024", "29/02/1900", "31/12/9999", "30/06/2001"} {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.True(t, domain.IsValidDate(d.Canonical()))
		again, err := ParseDate(d.Canonical())
		require.NoError(t, err)
		assert.True(t, d.Equals(again))
	}

	n, err := ParseName("Alice Tan")
	require.NoError(t, err)
	again, err := ParseName(n.String())
	require.NoError(t, err)
	assert.True(t, n.Equals(again))

	tag, err := ParseTag("vip")
	require.NoError(t, err)
	tagAgain, err := ParseTag(tag.Name())
	require.NoError(t, err)
	assert.True(t, tag.Equals(tagAgain))
}

func isValidAll(rules []domain.Rule, s string) bool {
	_, failed := domain.FirstViolation(rules, s)
	return !failed
}

func TestIsParseError(t *testing.T) {
	_, err := ParseName("")
	assert.True(t, IsParseError(err))

	_, err = domain.NewName("")
	assert.False(t, IsParseError(err))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
