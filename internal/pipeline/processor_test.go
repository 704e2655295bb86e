package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

type fakeAcquirer struct {
	texts    map[string]string
	failures map[string][]error
	calls    map[string]int
	mu       sync.Mutex
}

func newFakeAcquirer(texts map[string]string) *fakeAcquirer {
	return &fakeAcquirer{texts: texts, failures: map[string][]error{}, calls: map[string]int{}}
}

func (f *fakeAcquirer) Acquire(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.calls[path]
	f.calls[path]++
	if n < len(f.failures[path]) {
		return "", f.failures[path][n]
	}
	text, ok := f.texts[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, common.ErrUnsupportedFormat)
	}
	return text, nil
}

type fixedDetector model.Language

func (d fixedDetector) Detect(string) model.Language { return model.Language(d) }

var fastRetry = ProcessorOptions{
	Retry: common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond},
}

func TestProcessFile(t *testing.T) {
	acq := newFakeAcquirer(map[string]string{
		"/in/kredit.txt": "Kundennummer: AB-12345\nKreditlimit: 5.000,00 EUR",
	})
	acq.failures["/in/kredit.txt"] = []error{errors.New("pdftotext crashed")}

	pr := NewProcessor(New(WithIDGenerator(fixedID)), acq, fixedDetector(model.LanguageGerman), fastRetry)
	rec, err := pr.ProcessFile(context.Background(), "/in/kredit.txt")
	require.NoError(t, err)

	assert.Equal(t, "kredit.txt", rec.FileName)
	assert.Equal(t, model.DocumentTypeCredit, rec.Type)
	assert.Equal(t, 2, acq.calls["/in/kredit.txt"])
}

func TestProcessFileUnsupportedIsNotRetried(t *testing.T) {
	acq := newFakeAcquirer(nil)
	pr := NewProcessor(New(), acq, fixedDetector(model.LanguageEnglish), fastRetry)

	_, err := pr.ProcessFile(context.Background(), "/in/photo.heic")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
	assert.Equal(t, 1, acq.calls["/in/photo.heic"])
}

func TestProcessFileEmptyText(t *testing.T) {
	acq := newFakeAcquirer(map[string]string{"/in/blank.pdf": ""})
	pr := NewProcessor(New(WithIDGenerator(fixedID)), acq, fixedDetector(model.LanguageUnknown), fastRetry)

	rec, err := pr.ProcessFile(context.Background(), "/in/blank.pdf")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentTypeUnknown, rec.Type)
	assert.Equal(t, "generated-id", rec.DocumentID())
}

func TestBatch(t *testing.T) {
	acq := newFakeAcquirer(map[string]string{
		"a.txt": "Kreditlimit: 5.000,00 EUR",
		"b.txt": "Closing Balance: 10.00",
		"c.txt": "",
	})
	pr := NewProcessor(New(), acq, fixedDetector(model.LanguageGerman), fastRetry)

	var mu sync.Mutex
	done := 0
	results, err := pr.Batch(context.Background(), []string{"a.txt", "b.txt", "c.txt", "d.bin"}, BatchOptions{
		Workers: 2,
		OnDone: func(Result) {
			mu.Lock()
			done++
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, 4, done)

	assert.Equal(t, "a.txt", results[0].Path)
	assert.Equal(t, model.DocumentTypeCredit, results[0].Record.Type)
	assert.NoError(t, results[2].Err)
	assert.ErrorIs(t, results[3].Err, common.ErrUnsupportedFormat)
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr := NewProcessor(New(), newFakeAcquirer(nil), fixedDetector(model.LanguageEnglish), fastRetry)
	_, err := pr.Batch(ctx, []string{"a.txt"}, BatchOptions{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
