package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadesk/challan-extractor/dto"
)

func tdsDoc(nature string) string {
	return `Challan No : 100 Nature of Payment : ` + nature +
		` Amount (in Rs.) : ₹ 5,000 Date of Deposit : 05-Jun-2024`
}

func TestTDSProcessBatchGrouping(t *testing.T) {
	svc := NewTDSService(fakeProcessor{}, nil, 0)

	batch, err := svc.ProcessBatch(context.Background(), []dto.UploadFile{
		file("TDS_May'24.pdf", tdsDoc("94C Payment to Contractors")),
		file("TDS_April'24_fees.pdf", tdsDoc("94J Professional Fees")),
		file("TDS_April'24.pdf", tdsDoc("94C Payment to Contractors")),
	})
	require.NoError(t, err)
	require.Len(t, batch.Groups, 2)

	// Groups follow first occurrence of each nature of payment.
	contractors := batch.Groups[0]
	fees := batch.Groups[1]
	assert.Equal(t, "94C Payment to Contractors", contractors.NatureOfPayment)
	assert.Equal(t, "94J Professional Fees", fees.NatureOfPayment)

	// Within a group, records sort by payment month.
	require.Len(t, contractors.Records, 2)
	assert.Equal(t, "Apr-2024", contractors.Records[0].PaymentMonth)
	assert.Equal(t, "May-2024", contractors.Records[1].PaymentMonth)

	require.Len(t, fees.Records, 1)
	assert.Equal(t, "TDS_April'24_fees.pdf", fees.Records[0].Filename)
	assert.Empty(t, batch.Notices)
}

func TestTDSProcessBatchPartialAcceptance(t *testing.T) {
	svc := NewTDSService(fakeProcessor{}, nil, 0)

	// No nature of payment in the second document.
	batch, err := svc.ProcessBatch(context.Background(), []dto.UploadFile{
		file("good.pdf", tdsDoc("92B Salaries")),
		file("bad.pdf", `Challan No : 1 Date of Deposit : 05-Jun-2024`),
	})
	require.NoError(t, err)

	require.Len(t, batch.Groups, 1)
	require.Len(t, batch.Notices, 1)
	assert.Equal(t, "Could not extract data from bad.pdf", batch.Notices[0].Message)
	assert.Equal(t, dto.NoticeWarning, batch.Notices[0].Level)
}

func TestGroupTDSRecordsStableForEqualMonths(t *testing.T) {
	recs := []dto.TDSRecord{
		{Filename: "a.pdf", NatureOfPayment: "94C"},
		{Filename: "b.pdf", NatureOfPayment: "94C"},
		{Filename: "c.pdf", NatureOfPayment: "94C"},
	}
	groups := groupTDSRecords(recs)
	require.Len(t, groups, 1)
	assert.Equal(t, "a.pdf", groups[0].Records[0].Filename)
	assert.Equal(t, "b.pdf", groups[0].Records[1].Filename)
	assert.Equal(t, "c.pdf", groups[0].Records[2].Filename)
}
