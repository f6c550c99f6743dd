package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cadesk/challan-extractor/dto"
)

// Extraction schema for Professional Tax challans. The tax period is a bounded
// word run ending at the next "Amount" label or the end of the text.
var ptRules = RuleSet{
	{Name: "tin", Pattern: regexp.MustCompile(`(?i)TIN[:\s]+(\d{11})`), Required: true},
	{Name: "tax_period", Pattern: regexp.MustCompile(`(?i)Tax Period[:\s]+([\w\s-]+?)(?:\s*Amount|$)`), Required: true},
	{Name: "amount", Pattern: regexp.MustCompile(`(?i)Total Payable[:\s]+([\d,]+\.?\d*)`), Required: true},
	{Name: "payment_date", Pattern: regexp.MustCompile(`(?i)Date of Payment[:\s]+(\d{2}[-/]\d{2}[-/]\d{4})`), Required: true},
}

var ptPeriodDateRe = regexp.MustCompile(`(\d{2})-(\d{2})-(\d{4})`)

// PT falls due on the 10th of the month after the period month, except the
// March period which falls due on April 30.
const ptDueDay = 10

// ptDueDate derives the due date from the first DD-MM-YYYY token inside the
// tax-period text. Periods without such a token have no computable due date.
func ptDueDate(period string) (time.Time, bool) {
	m := ptPeriodDateRe.FindStringSubmatch(period)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	return DueDate(time.Month(month), year, ptDueDay, time.March), true
}

// ParsePTChallan extracts one Professional Tax record from concatenated
// challan text. Missing required fields or a malformed payment date reject
// the document; a period without a date token only blanks the due date.
func ParsePTChallan(text, filename string) (*dto.PTRecord, error) {
	fields := ptRules.Extract(text)
	if missing := ptRules.MissingRequired(fields); len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	amount, err := ParseAmount(fields["amount"])
	if err != nil {
		return nil, fmt.Errorf("malformed amount %q", fields["amount"])
	}

	paymentDateStr := strings.ReplaceAll(fields["payment_date"], "/", "-")
	paid, err := ParseDate(paymentDateStr)
	if err != nil {
		return nil, err
	}

	rec := &dto.PTRecord{
		Filename:    filename,
		TIN:         fields["tin"],
		TaxPeriod:   fields["tax_period"],
		Amount:      amount,
		DueDate:     NotFound,
		PaymentDate: paymentDateStr,
		Delay:       "-",
	}
	if due, ok := ptDueDate(fields["tax_period"]); ok {
		rec.DueDate = FormatDate(due)
		rec.Delay = DelayOrDash(paid, due)
	}
	return rec, nil
}
