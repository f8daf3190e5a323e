package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricePredicates(t *testing.T) {
	tests := []struct {
		in                        string
		nonEmpty, numeric, nonNeg bool
		small                     bool
	}{
		{"", false, false, true, false},
		{"abc", true, false, true, false},
		{"12.50", true, true, true, true},
		{".5", true, true, true, true},
		{"5.", true, true, true, true},
		{"-5", true, true, false, true},
		{"+5", true, true, true, true},
		{"1.2.3", true, false, true, false},
		{"1e5", true, false, true, false},
		{"NaN", true, false, true, false},
		{"Inf", true, false, true, false},
		{"0x10", true, false, true, false},
		{"999999.99", true, true, true, true},
		{"1000000", true, true, true, false},
		{"2000000", true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.nonEmpty, IsNonEmptyPrice(tt.in), "non-empty")
			assert.Equal(t, tt.numeric, IsValidPrice(tt.in), "numeric")
			assert.Equal(t, tt.nonNeg, IsNonNegativePrice(tt.in), "non-negative")
			assert.Equal(t, tt.small, IsSmallPrice(tt.in), "small")
		})
	}
}

func TestNewPrice(t *testing.T) {
	p, err := NewPrice("12.50")
	require.NoError(t, err)

	assert.Equal(t, 12.5, p.Value())
	assert.Equal(t, "12.50", p.Canonical())
	assert.Equal(t, "12.50", p.String())
}

func TestNewPrice_ReportsFirstRule(t *testing.T) {
	_, err := NewPrice("-abc")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), MessagePriceConstraints)
}

func TestPrice_StringGroupsThousands(t *testing.T) {
	p, err := NewPrice("1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1,234.50", p.String())
}

func TestPrice_EqualityUsesLiteral(t *testing.T) {
	a, _ := NewPrice("12.50")
	b, _ := NewPrice("12.5")
	c, _ := NewPrice("12.50")

	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(c))
	assert.Equal(t, a.Value(), b.Value())
}
