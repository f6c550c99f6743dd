package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cadesk/challan-extractor/dto"
	"github.com/cadesk/challan-extractor/utils"
)

// ESICService processes ESIC contribution challan uploads.
type ESICService struct {
	pdf     PDFProcessor
	logger  *slog.Logger
	timeout time.Duration
}

func NewESICService(pdf PDFProcessor, logger *slog.Logger, timeout time.Duration) *ESICService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ESICService{pdf: pdf, logger: logger, timeout: timeout}
}

// ProcessBatch parses one upload. Record order matches input file order
// restricted to accepted documents.
func (s *ESICService) ProcessBatch(ctx context.Context, files []dto.UploadFile) (*dto.ESICBatch, error) {
	records, notices, err := processBatch(ctx, s.pdf, s.logger, files, s.timeout, utils.ParseESICChallan)
	if err != nil {
		return nil, err
	}
	s.logger.Info("esic batch processed", "files", len(files), "accepted", len(records))
	return &dto.ESICBatch{BatchID: uuid.New(), Records: records, Notices: notices}, nil
}
