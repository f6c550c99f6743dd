package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/cadesk/challan-extractor/dto"
)

// ExportService renders batch results for download or clipboard use.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var (
	esicHeaders = []string{"Filename", "Challan Period", "Amount Paid", "Challan Number", "Due Date", "Challan Submitted", "Delay (Days)"}
	ptHeaders   = []string{"File Name", "TIN", "Tax Period", "Amount", "Due Date", "Payment Date", "Delay (Days)"}
	tdsHeaders  = []string{"Filename", "Challan No", "Nature of Payment", "Month", "Amount", "Tax", "Surcharge", "Cess", "Interest", "Penalty", "Fee u/s 234E", "Deposit Date", "Due Date", "Delay (Days)"}
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func esicRow(r dto.ESICRecord) []string {
	return []string{r.Filename, r.ChallanPeriod, money(r.AmountPaid), r.ChallanNumber, r.DueDate, r.SubmittedDate, r.Delay}
}

func ptRow(r dto.PTRecord) []string {
	return []string{r.Filename, r.TIN, r.TaxPeriod, money(r.Amount), r.DueDate, r.PaymentDate, r.Delay}
}

func tdsRow(r dto.TDSRecord) []string {
	return []string{
		r.Filename, r.ChallanNo, r.NatureOfPayment, r.PaymentMonth,
		money(r.Amount), money(r.Tax), money(r.Surcharge), money(r.Cess),
		money(r.Interest), money(r.Penalty), money(r.Fee),
		r.DepositDate, r.DueDate, fmt.Sprintf("%d", r.DelayDays),
	}
}

// writeCSVRow quotes every cell unconditionally. encoding/csv quotes lazily,
// and the download format requires all cells quoted.
func writeCSVRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// ESICCSV renders one flat table with a header row.
func (e *ExportService) ESICCSV(batch *dto.ESICBatch) string {
	var b strings.Builder
	writeCSVRow(&b, esicHeaders)
	for _, r := range batch.Records {
		writeCSVRow(&b, esicRow(r))
	}
	return b.String()
}

func (e *ExportService) PTCSV(batch *dto.PTBatch) string {
	var b strings.Builder
	writeCSVRow(&b, ptHeaders)
	for _, r := range batch.Records {
		writeCSVRow(&b, ptRow(r))
	}
	return b.String()
}

// TDSCSV renders one section per nature-of-payment group: a label row, the
// header row, then the group's records, separated by blank lines.
func (e *ExportService) TDSCSV(batch *dto.TDSBatch) string {
	var b strings.Builder
	for i, g := range batch.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeCSVRow(&b, []string{g.NatureOfPayment})
		writeCSVRow(&b, tdsHeaders)
		for _, r := range g.Records {
			writeCSVRow(&b, tdsRow(r))
		}
	}
	return b.String()
}

// ESICClipboard renders the tab-separated block copied to the clipboard: no
// header, one row per record.
func (e *ExportService) ESICClipboard(batch *dto.ESICBatch) string {
	rows := make([]string, 0, len(batch.Records))
	for _, r := range batch.Records {
		rows = append(rows, strings.Join([]string{
			r.Filename, r.ChallanPeriod, r.AmountPaid.String(), r.ChallanNumber,
			r.DueDate, r.SubmittedDate, r.Delay,
		}, "\t"))
	}
	return strings.Join(rows, "\n")
}

func writeXLSX(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExportService) ESICXLSX(batch *dto.ESICBatch) ([]byte, error) {
	rows := make([][]string, 0, len(batch.Records))
	for _, r := range batch.Records {
		rows = append(rows, esicRow(r))
	}
	return writeXLSX(esicHeaders, rows)
}

func (e *ExportService) PTXLSX(batch *dto.PTBatch) ([]byte, error) {
	rows := make([][]string, 0, len(batch.Records))
	for _, r := range batch.Records {
		rows = append(rows, ptRow(r))
	}
	return writeXLSX(ptHeaders, rows)
}

// TDSXLSX keeps all groups on one sheet, each preceded by its label row.
// Nature-of-payment labels may contain characters that are invalid in sheet
// names, so one-sheet-per-group is not an option.
func (e *ExportService) TDSXLSX(batch *dto.TDSBatch) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	row := 1
	writeRow := func(cells []string) {
		for i, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}
	for _, g := range batch.Groups {
		writeRow([]string{g.NatureOfPayment})
		writeRow(tdsHeaders)
		for _, r := range g.Records {
			writeRow(tdsRow(r))
		}
		row++ // blank separator row
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
