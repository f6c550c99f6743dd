package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadesk/challan-extractor/dto"
)

// fakeProcessor treats the uploaded bytes as the already-extracted text.
// Payloads starting with "!" simulate a corrupt document.
type fakeProcessor struct{}

func (fakeProcessor) ExtractText(data []byte) (string, error) {
	if strings.HasPrefix(string(data), "!") {
		return "", errors.New("corrupt PDF")
	}
	return string(data), nil
}

// slowProcessor blocks longer than any reasonable test timeout.
type slowProcessor struct{}

func (slowProcessor) ExtractText(data []byte) (string, error) {
	time.Sleep(5 * time.Second)
	return "", nil
}

func file(name, text string) dto.UploadFile {
	return dto.UploadFile{Filename: name, Data: []byte(text)}
}

func TestExtractWithTimeout(t *testing.T) {
	_, err := extractWithTimeout(context.Background(), slowProcessor{}, nil, 50*time.Millisecond)
	assert.ErrorContains(t, err, "timed out")

	text, err := extractWithTimeout(context.Background(), fakeProcessor{}, []byte("hello"), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestProcessBatchCancellationDiscardsBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewESICService(fakeProcessor{}, nil, 0)
	batch, err := svc.ProcessBatch(ctx, []dto.UploadFile{file("a.pdf", "whatever")})
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, context.Canceled)
}
