package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cadesk/challan-extractor/dto"
)

// Extraction schema for ESIC monthly contribution challans.
var esicRules = RuleSet{
	{Name: "challan_period", Pattern: regexp.MustCompile(`(?i)Challan Period:\s*([A-Za-z]{3}-\d{4})`), Required: true},
	{Name: "amount_paid", Pattern: regexp.MustCompile(`(?i)Amount Paid:\s*([\d,]+\.?\d*)`), Required: true},
	{Name: "challan_number", Pattern: regexp.MustCompile(`(?i)Challan Number[^\d]*(\d{14})`), Required: true},
	{Name: "submitted_date", Pattern: regexp.MustCompile(`(?i)Challan Submitted Date\s*(\d{2}-\d{2}-\d{4})`), Required: true},
}

// ESIC contributions fall due on the 15th of the following month, except the
// February period which falls due on April 30.
const esicDueDay = 15

// ParseESICChallan extracts one ESIC record from concatenated challan text.
// Any missing required field or malformed value rejects the whole document.
func ParseESICChallan(text, filename string) (*dto.ESICRecord, error) {
	fields := esicRules.Extract(text)
	if missing := esicRules.MissingRequired(fields); len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	period := CanonicalPeriod(fields["challan_period"])
	month, year, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	amount, err := ParseAmount(fields["amount_paid"])
	if err != nil {
		return nil, fmt.Errorf("malformed amount %q", fields["amount_paid"])
	}

	submitted, err := ParseDate(fields["submitted_date"])
	if err != nil {
		return nil, err
	}

	due := DueDate(month, year, esicDueDay, time.February)

	return &dto.ESICRecord{
		Filename:      filename,
		ChallanPeriod: period,
		AmountPaid:    amount,
		ChallanNumber: fields["challan_number"],
		DueDate:       FormatDate(due),
		SubmittedDate: fields["submitted_date"],
		Delay:         DelayOrDash(submitted, due),
	}, nil
}
