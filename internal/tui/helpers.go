package tui

import (
	"strings"

	"github.com/andy/tradebook/internal/domain"
)

// formatMoney formats money as "$X,XXX.XX", with a leading minus when negative
func formatMoney(currency string, amount float64) string {
	if amount < 0 {
		return "-" + currency + domain.FormatAmount(-amount)
	}
	return currency + domain.FormatAmount(amount)
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// splitTags splits "a, b c" into its tag names
func splitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
