package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cadesk/challan-extractor/dto"
	"github.com/cadesk/challan-extractor/utils"
)

// TDSService processes TDS challan uploads and groups accepted records by
// nature of payment.
type TDSService struct {
	pdf     PDFProcessor
	logger  *slog.Logger
	timeout time.Duration
}

func NewTDSService(pdf PDFProcessor, logger *slog.Logger, timeout time.Duration) *TDSService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TDSService{pdf: pdf, logger: logger, timeout: timeout}
}

func (s *TDSService) ProcessBatch(ctx context.Context, files []dto.UploadFile) (*dto.TDSBatch, error) {
	records, notices, err := processBatch(ctx, s.pdf, s.logger, files, s.timeout, utils.ParseTDSChallan)
	if err != nil {
		return nil, err
	}
	s.logger.Info("tds batch processed", "files", len(files), "accepted", len(records))
	return &dto.TDSBatch{BatchID: uuid.New(), Groups: groupTDSRecords(records), Notices: notices}, nil
}

// groupTDSRecords buckets records by nature of payment, groups ordered by
// first occurrence of each label, records within a group sorted by payment
// month (stable for equal months).
func groupTDSRecords(records []dto.TDSRecord) []dto.TDSGroup {
	index := make(map[string]int)
	var groups []dto.TDSGroup
	for _, r := range records {
		i, ok := index[r.NatureOfPayment]
		if !ok {
			i = len(groups)
			index[r.NatureOfPayment] = i
			groups = append(groups, dto.TDSGroup{NatureOfPayment: r.NatureOfPayment})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	for i := range groups {
		recs := groups[i].Records
		sort.SliceStable(recs, func(a, b int) bool {
			return recs[a].SortKey.Before(recs[b].SortKey)
		})
	}
	return groups
}
