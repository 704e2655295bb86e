// Package acquire turns input files into plain text: text files are read as-is,
// PDFs go through pdftotext with an OCR fallback for scans, images are OCR'd and
// OFX/QFX statements are rendered as statement text.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/ofx"
)

// Recognizer recognizes the text of an encoded image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Config names the external tools and OCR settings.
type Config struct {
	Pdftotext string // default "pdftotext"
	Pdftoppm  string // default "pdftoppm"
	Tesseract string // default "tesseract"
	Langs     string // tesseract languages, default "deu+eng+fra+spa+ita"
	DPI       int    // rasterization DPI for scanned PDFs, default 300
	MaxPages  int    // 0 = no limit
}

// DefaultLangs covers every language with extraction rules.
const DefaultLangs = "deu+eng+fra+spa+ita"

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Supported reports whether path has an extension Acquire can read.
func Supported(path string) bool {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".text", ".pdf", ".ofx", ".qfx":
		return true
	default:
		return imageExts[ext]
	}
}

// Option configures an Acquirer.
type Option func(*Acquirer)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(a *Acquirer) { a.runner = r }
}

// WithRecognizer uses an in-process recognizer instead of the tesseract command.
func WithRecognizer(r Recognizer) Option {
	return func(a *Acquirer) { a.recognizer = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Acquirer) { a.logger = l }
}

// Acquirer reads document text from files.
type Acquirer struct {
	runner     Runner
	recognizer Recognizer
	logger     *slog.Logger
	ofx        *ofx.Parser
	cfg        Config
}

// New creates an Acquirer, filling unset config values with defaults.
func New(cfg Config, opts ...Option) *Acquirer {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Langs == "" {
		cfg.Langs = DefaultLangs
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}

	a := &Acquirer{cfg: cfg, ofx: ofx.NewParser()}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.runner == nil {
		a.runner = NewExecRunner(a.logger)
	}
	return a
}

// Acquire returns the normalized text of the file at path.
func (a *Acquirer) Acquire(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", common.ErrUnsupportedFormat, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var text string
	switch {
	case ext == ".txt" || ext == ".text":
		var b []byte
		b, err = os.ReadFile(path) //nolint:gosec // caller-selected input file
		text = string(b)
	case ext == ".pdf":
		text, err = a.pdf(ctx, path)
	case ext == ".ofx" || ext == ".qfx":
		text, err = a.statement(ctx, path)
	case imageExts[ext]:
		text, err = a.image(ctx, path)
	default:
		return "", fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}
	return Normalize(text), nil
}

func (a *Acquirer) pdf(ctx context.Context, path string) (string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <file> -
	out, errb, err := a.runner.Run(ctx, a.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 256))
	}
	if strings.TrimSpace(string(out)) != "" {
		return string(out), nil
	}
	a.logger.Info("pdf has no text layer, running OCR", "path", path)
	return a.pdfOCR(ctx, path)
}

func (a *Acquirer) pdfOCR(ctx context.Context, path string) (string, error) {
	tmp, err := os.MkdirTemp("", "docextract-ocr-*")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	prefix := filepath.Join(tmp, "page")
	args := []string{"-r", strconv.Itoa(a.cfg.DPI), "-png"}
	if a.cfg.MaxPages > 0 {
		args = append(args, "-f", "1", "-l", strconv.Itoa(a.cfg.MaxPages))
	}
	args = append(args, path, prefix)
	if _, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm, args...); err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 256))
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", fmt.Errorf("glob pages: %w", err)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: pdftoppm produced no pages for %s", common.ErrNoText, path)
	}
	sort.Strings(pages)

	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		txt, err := a.image(ctx, page)
		if err != nil {
			return "", err
		}
		texts = append(texts, txt)
	}
	return strings.Join(texts, "\n\f\n"), nil
}

func (a *Acquirer) image(ctx context.Context, path string) (string, error) {
	if a.recognizer != nil {
		b, err := os.ReadFile(path) //nolint:gosec // caller-selected input file
		if err != nil {
			return "", fmt.Errorf("read image: %w", err)
		}
		return a.recognizer.Recognize(ctx, b)
	}

	// tesseract <file> stdout -l <langs>
	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, path, "stdout", "-l", a.cfg.Langs)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 256))
	}
	return string(out), nil
}

func (a *Acquirer) statement(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // caller-selected input file
	if err != nil {
		return "", fmt.Errorf("open statement: %w", err)
	}
	defer func() { _ = f.Close() }()

	statements, err := a.ofx.ParseFile(ctx, f)
	if err != nil {
		return "", err
	}
	return ofx.RenderAll(statements), nil
}

// Normalize composes the text to NFC and unifies line endings. Page breaks
// become blank lines.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\f", "\n")
	return s
}
