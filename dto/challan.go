package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UploadFile is one uploaded document: raw PDF bytes plus the original filename.
type UploadFile struct {
	Filename string
	Data     []byte
}

type NoticeLevel string

const (
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a per-file (or batch-level, when Filename is empty) human-readable
// failure message. Successful documents never produce a notice.
type Notice struct {
	Filename string      `json:"filename,omitempty"`
	Message  string      `json:"message"`
	Level    NoticeLevel `json:"level"`
}

// ESICRecord is one parsed ESIC challan.
type ESICRecord struct {
	Filename      string          `json:"filename"`
	ChallanPeriod string          `json:"challan_period"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	ChallanNumber string          `json:"challan_number"`
	DueDate       string          `json:"due_date"`
	SubmittedDate string          `json:"challan_submitted_date"`
	Delay         string          `json:"delay"` // days as digits, or "-" when not delayed
}

// PTRecord is one parsed Professional Tax challan.
type PTRecord struct {
	Filename    string          `json:"filename"`
	TIN         string          `json:"tin"`
	TaxPeriod   string          `json:"tax_period"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"`
	PaymentDate string          `json:"payment_date"`
	Delay       string          `json:"delay"`
}

// TDSRecord is one parsed TDS challan. Unlike ESIC/PT, a non-positive delay is
// reported as 0 rather than a dash.
type TDSRecord struct {
	Filename        string          `json:"filename"`
	ChallanNo       string          `json:"challan_no"`
	NatureOfPayment string          `json:"nature_of_payment"`
	PaymentMonth    string          `json:"payment_month"` // Mon-YYYY
	Amount          decimal.Decimal `json:"amount"`
	Tax             decimal.Decimal `json:"tax"`
	Surcharge       decimal.Decimal `json:"surcharge"`
	Cess            decimal.Decimal `json:"cess"`
	Interest        decimal.Decimal `json:"interest"`
	Penalty         decimal.Decimal `json:"penalty"`
	Fee             decimal.Decimal `json:"fee"`
	DepositDate     string          `json:"deposit_date"` // DD-Mon-YYYY as printed on the challan
	DueDate         string          `json:"due_date"`
	DelayDays       int             `json:"delay_days"`

	// SortKey is the first day of the payment month. Ordering only, never displayed.
	SortKey time.Time `json:"-"`
}

// ESICBatch is the result of one ESIC upload. Batches are replace-only: a new
// upload produces a new BatchID and the previous batch is discarded wholesale.
type ESICBatch struct {
	BatchID uuid.UUID    `json:"batch_id"`
	Records []ESICRecord `json:"records"`
	Notices []Notice     `json:"notices"`
}

type PTBatch struct {
	BatchID uuid.UUID  `json:"batch_id"`
	Records []PTRecord `json:"records"`
	Notices []Notice   `json:"notices"`
}

// TDSGroup holds the records sharing one nature-of-payment label, ordered by
// payment month. Groups appear in first-occurrence order of their label.
type TDSGroup struct {
	NatureOfPayment string      `json:"nature_of_payment"`
	Records         []TDSRecord `json:"records"`
}

type TDSBatch struct {
	BatchID uuid.UUID  `json:"batch_id"`
	Groups  []TDSGroup `json:"groups"`
	Notices []Notice   `json:"notices"`
}
