package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/cadesk/challan-extractor/dto"
)

// Extraction schema for TDS challan counterfoils. Only the nature of payment
// and the deposit date are mandatory; monetary fields degrade to zero.
var tdsRules = RuleSet{
	{Name: "challan_no", Pattern: regexp.MustCompile(`(?i)Challan No\s*:?\s*(\d+)`)},
	{Name: "nature_of_payment", Pattern: regexp.MustCompile(`(?i)Nature of Payment\s*:?\s*([\w /]+?)(?:\s*Amount \(|\s*Date of Deposit|$)`), Required: true},
	{Name: "amount", Pattern: regexp.MustCompile(`(?i)Amount \(in Rs\.?\)\s*:?\s*(?:₹\s*)?([\d,]+)`), Default: "0"},
	{Name: "deposit_date", Pattern: regexp.MustCompile(`(?i)Date of Deposit(?:\s*/\s*Tender)?\s*:?\s*(\d{2}-[A-Za-z]{3}-\d{4})`), Required: true},
}

// Breakup sub-fields are searched only from the "Tax Breakup Details" header
// onward; when the header is missing the whole text is searched, which is
// looser and can latch onto look-alike labels elsewhere on the counterfoil.
const tdsBreakupHeader = "Tax Breakup Details"

var tdsBreakupRules = RuleSet{
	{Name: "tax", Pattern: regexp.MustCompile(`(?i)A Tax\s*₹\s*([\d,]+)`), Default: "0"},
	{Name: "surcharge", Pattern: regexp.MustCompile(`(?i)B Surcharge\s*₹\s*([\d,]+)`), Default: "0"},
	{Name: "cess", Pattern: regexp.MustCompile(`(?i)C Cess\s*₹\s*([\d,]+)`), Default: "0"},
	{Name: "interest", Pattern: regexp.MustCompile(`(?i)D Interest\s*₹\s*([\d,]+)`), Default: "0"},
	{Name: "penalty", Pattern: regexp.MustCompile(`(?i)E Penalty\s*₹\s*([\d,]+)`), Default: "0"},
	{Name: "fee", Pattern: regexp.MustCompile(`(?i)F Fee under section 234E\s*₹\s*([\d,]+)`), Default: "0"},
}

// Filenames like "TDS_April'24.pdf" carry the payment month directly.
var filenameMonthRe = regexp.MustCompile(`(?i)([A-Za-z]{3,9})'(\d{2})`)

// TDS falls due on the 7th of the month after the payment month, except the
// February payment month which falls due on April 30.
const tdsDueDay = 7

// tdsPaymentMonth infers the payment month, preferring a MonthName'YY token
// in the filename and falling back to the deposit date shifted back one
// calendar month.
func tdsPaymentMonth(filename string, deposit time.Time) (time.Month, int) {
	if m := filenameMonthRe.FindStringSubmatch(filename); m != nil {
		if month, ok := MonthFromToken(m[1]); ok {
			yy, _ := strconv.Atoi(m[2])
			return month, 2000 + yy
		}
	}
	prev := time.Date(deposit.Year(), deposit.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return prev.Month(), prev.Year()
}

// ParseTDSChallan extracts one TDS record from concatenated challan text.
// Only a missing nature of payment or a missing/malformed deposit date
// rejects the document.
func ParseTDSChallan(text, filename string) (*dto.TDSRecord, error) {
	fields := tdsRules.Extract(text)
	if fields["nature_of_payment"] == NotFound {
		return nil, fmt.Errorf("nature of payment not found")
	}
	if fields["deposit_date"] == NotFound {
		return nil, fmt.Errorf("deposit date not found")
	}

	deposit, err := ParseDate(fields["deposit_date"])
	if err != nil {
		return nil, err
	}

	month, year := tdsPaymentMonth(filename, deposit)
	due := DueDate(month, year, tdsDueDay, time.February)

	breakup := tdsBreakupRules.Extract(SectionFrom(text, tdsBreakupHeader))

	return &dto.TDSRecord{
		Filename:        filename,
		ChallanNo:       fields["challan_no"],
		NatureOfPayment: fields["nature_of_payment"],
		PaymentMonth:    FormatPeriod(month, year),
		Amount:          AmountOrZero(fields["amount"]),
		Tax:             AmountOrZero(breakup["tax"]),
		Surcharge:       AmountOrZero(breakup["surcharge"]),
		Cess:            AmountOrZero(breakup["cess"]),
		Interest:        AmountOrZero(breakup["interest"]),
		Penalty:         AmountOrZero(breakup["penalty"]),
		Fee:             AmountOrZero(breakup["fee"]),
		DepositDate:     fields["deposit_date"],
		DueDate:         FormatDate(due),
		DelayDays:       DelayDays(deposit, due),
		SortKey:         time.Date(year, month, 1, 0, 0, 0, 0, time.Local),
	}, nil
}
