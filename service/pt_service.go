package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cadesk/challan-extractor/dto"
	"github.com/cadesk/challan-extractor/utils"
)

// PTService processes Professional Tax challan uploads.
type PTService struct {
	pdf     PDFProcessor
	logger  *slog.Logger
	timeout time.Duration
}

func NewPTService(pdf PDFProcessor, logger *slog.Logger, timeout time.Duration) *PTService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PTService{pdf: pdf, logger: logger, timeout: timeout}
}

func (s *PTService) ProcessBatch(ctx context.Context, files []dto.UploadFile) (*dto.PTBatch, error) {
	records, notices, err := processBatch(ctx, s.pdf, s.logger, files, s.timeout, utils.ParsePTChallan)
	if err != nil {
		return nil, err
	}
	s.logger.Info("pt batch processed", "files", len(files), "accepted", len(records))
	return &dto.PTBatch{BatchID: uuid.New(), Records: records, Notices: notices}, nil
}
