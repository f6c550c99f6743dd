package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRuleFind(t *testing.T) {
	rule := FieldRule{
		Name:    "amount",
		Pattern: regexp.MustCompile(`(?i)Amount Paid:\s*([\d,]+\.?\d*)`),
	}

	assert.Equal(t, "12,000", rule.Find("Some header Amount Paid: 12,000 trailing"))
	assert.Equal(t, NotFound, rule.Find("no amount here"))

	withDefault := FieldRule{
		Name:    "tax",
		Pattern: regexp.MustCompile(`A Tax\s*([\d,]+)`),
		Default: "0",
	}
	assert.Equal(t, "0", withDefault.Find("nothing matches"))
}

func TestRuleSetMissingRequired(t *testing.T) {
	rules := RuleSet{
		{Name: "a", Pattern: regexp.MustCompile(`a=(\d+)`), Required: true},
		{Name: "b", Pattern: regexp.MustCompile(`b=(\d+)`), Required: true},
		{Name: "c", Pattern: regexp.MustCompile(`c=(\d+)`)},
	}

	fields := rules.Extract("a=1")
	assert.Equal(t, "1", fields["a"])
	assert.Equal(t, NotFound, fields["b"])
	assert.Equal(t, []string{"b"}, rules.MissingRequired(fields))

	fields = rules.Extract("a=1 b=2")
	assert.Empty(t, rules.MissingRequired(fields))
}

func TestSectionFrom(t *testing.T) {
	text := "A Tax ₹ 999 ... Tax Breakup Details A Tax ₹ 100"

	section := SectionFrom(text, "tax breakup details")
	assert.Equal(t, "Tax Breakup Details A Tax ₹ 100", section)

	// Absent header widens the search to the whole text.
	assert.Equal(t, text, SectionFrom(text, "Minor Head"))
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("1,23,456.50")
	require.NoError(t, err)
	assert.Equal(t, "123456.5", d.String())

	d, err = ParseAmount("12,000")
	require.NoError(t, err)
	assert.Equal(t, "12000", d.String())

	_, err = ParseAmount("N/A")
	assert.Error(t, err)
}

func TestAmountOrZero(t *testing.T) {
	assert.Equal(t, "14000", AmountOrZero("14,000").String())
	assert.True(t, AmountOrZero("N/A").IsZero())
	assert.True(t, AmountOrZero("").IsZero())
}
