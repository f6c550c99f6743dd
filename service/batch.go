package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cadesk/challan-extractor/dto"
)

// maxConcurrentExtractions bounds the worker pool for PDF text extraction.
// Results are written to index-addressed slots, so concurrency never leaks
// into the observable output order.
const maxConcurrentExtractions = 4

type docOutcome[T any] struct {
	record *T
	notice *dto.Notice
}

// extractWithTimeout guards a single document's extraction. Malformed PDFs
// can hang a naive parser; a timeout turns that into a per-document failure
// instead of stalling the whole batch.
func extractWithTimeout(ctx context.Context, p PDFProcessor, data []byte, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		return p.ExtractText(data)
	}

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := p.ExtractText(data)
		ch <- result{text, err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-time.After(timeout):
		return "", fmt.Errorf("text extraction timed out after %s", timeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// processBatch drives the extract-then-parse pipeline over every uploaded
// file. Each document is independent: its failure yields exactly one notice
// and never aborts the batch. Context cancellation discards the batch
// entirely; partial results are never returned.
func processBatch[T any](
	ctx context.Context,
	p PDFProcessor,
	logger *slog.Logger,
	files []dto.UploadFile,
	timeout time.Duration,
	parse func(text, filename string) (*T, error),
) ([]T, []dto.Notice, error) {
	outcomes := make([]docOutcome[T], len(files))
	sem := make(chan struct{}, maxConcurrentExtractions)

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f dto.UploadFile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			text, err := extractWithTimeout(ctx, p, f.Data, timeout)
			if err != nil {
				logger.Warn("text extraction failed", "file", f.Filename, "err", err)
				outcomes[i].notice = &dto.Notice{
					Filename: f.Filename,
					Message:  "Failed to process " + f.Filename,
					Level:    dto.NoticeError,
				}
				return
			}

			rec, err := parse(text, f.Filename)
			if err != nil {
				logger.Warn("could not extract challan data", "file", f.Filename, "err", err)
				outcomes[i].notice = &dto.Notice{
					Filename: f.Filename,
					Message:  "Could not extract data from " + f.Filename,
					Level:    dto.NoticeWarning,
				}
				return
			}
			outcomes[i].record = rec
		}(i, f)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var records []T
	var notices []dto.Notice
	for _, o := range outcomes {
		if o.record != nil {
			records = append(records, *o.record)
		}
		if o.notice != nil {
			notices = append(notices, *o.notice)
		}
	}
	if len(records) == 0 {
		notices = append(notices, dto.Notice{
			Message: "No data could be extracted from the files.",
			Level:   dto.NoticeError,
		})
	}
	return records, notices, nil
}
