package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tdsText = `ITNS 281 Challan No : 05123 Nature of Payment : 94C Payment to Contractors ` +
	`Amount (in Rs.) : ₹ 15,000 Date of Deposit : 05-May-2024 ` +
	`Tax Breakup Details A Tax ₹ 14,000 B Surcharge ₹ 0 C Cess ₹ 1,000 ` +
	`D Interest ₹ 0 E Penalty ₹ 0 F Fee under section 234E ₹ 0`

func TestParseTDSChallan(t *testing.T) {
	rec, err := ParseTDSChallan(tdsText, "TDS_April'24.pdf")
	require.NoError(t, err)

	assert.Equal(t, "TDS_April'24.pdf", rec.Filename)
	assert.Equal(t, "05123", rec.ChallanNo)
	assert.Equal(t, "94C Payment to Contractors", rec.NatureOfPayment)
	assert.Equal(t, "Apr-2024", rec.PaymentMonth)
	assert.Equal(t, "15000", rec.Amount.String())
	assert.Equal(t, "14000", rec.Tax.String())
	assert.Equal(t, "1000", rec.Cess.String())
	assert.True(t, rec.Surcharge.IsZero())
	assert.Equal(t, "05-May-2024", rec.DepositDate)
	// April payments fall due on May 7; deposited May 5, so no delay.
	assert.Equal(t, "07-05-2024", rec.DueDate)
	assert.Equal(t, 0, rec.DelayDays)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local), rec.SortKey)
}

func TestParseTDSChallanDelayed(t *testing.T) {
	text := `Challan No : 99001 Nature of Payment : 94J Professional Fees ` +
		`Amount (in Rs.) : ₹ 8,000 Date of Deposit : 12-May-2024`

	rec, err := ParseTDSChallan(text, "TDS_April'24.pdf")
	require.NoError(t, err)

	assert.Equal(t, "07-05-2024", rec.DueDate)
	assert.Equal(t, 5, rec.DelayDays)
}

func TestParseTDSChallanFebruaryCarveOut(t *testing.T) {
	text := `Challan No : 42 Nature of Payment : 94C Payment to Contractors ` +
		`Amount (in Rs.) : ₹ 1,000 Date of Deposit : 05-Mar-2024`

	rec, err := ParseTDSChallan(text, "TDS_February'24.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Feb-2024", rec.PaymentMonth)
	assert.Equal(t, "30-04-2024", rec.DueDate)
	// Deposited well before April 30: clamped to zero, not a dash.
	assert.Equal(t, 0, rec.DelayDays)
}

func TestParseTDSChallanMonthFromDepositDate(t *testing.T) {
	text := `Challan No : 7 Nature of Payment : 92B Salaries ` +
		`Amount (in Rs.) : ₹ 50,000 Date of Deposit : 05-May-2024`

	// No MonthName'YY token in the filename: deposit date minus one month.
	rec, err := ParseTDSChallan(text, "challan1.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Apr-2024", rec.PaymentMonth)
	assert.Equal(t, "07-05-2024", rec.DueDate)
}

func TestParseTDSChallanBreakupDefaultsToZero(t *testing.T) {
	text := `Challan No : 7 Nature of Payment : 92B Salaries Date of Deposit : 05-May-2024`

	rec, err := ParseTDSChallan(text, "challan1.pdf")
	require.NoError(t, err)

	assert.True(t, rec.Amount.IsZero())
	assert.True(t, rec.Tax.IsZero())
	assert.True(t, rec.Fee.IsZero())
}

func TestParseTDSChallanBreakupScopedToSection(t *testing.T) {
	// The decoy row before the header must not be picked up.
	text := `A Tax ₹ 999 Challan No : 7 Nature of Payment : 92B Salaries ` +
		`Date of Deposit : 05-May-2024 Tax Breakup Details A Tax ₹ 100`

	rec, err := ParseTDSChallan(text, "challan1.pdf")
	require.NoError(t, err)

	assert.Equal(t, "100", rec.Tax.String())
}

func TestParseTDSChallanMissingMandatoryFields(t *testing.T) {
	_, err := ParseTDSChallan(`Challan No : 1 Date of Deposit : 05-May-2024`, "x.pdf")
	assert.ErrorContains(t, err, "nature of payment")

	_, err = ParseTDSChallan(`Challan No : 1 Nature of Payment : 94C Contractors`, "x.pdf")
	assert.ErrorContains(t, err, "deposit date")
}
