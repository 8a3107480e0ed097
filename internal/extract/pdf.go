package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/voucherdesk/voucherdesk/internal/entity"
)

// Row grouping and word merge tolerances, in PDF points.
const (
	rowTolerance  = 3.0
	wordGapFactor = 0.3
)

// PDFExtractor reads embedded text from voucher PDFs. It does not OCR
// image-only scans; a page without extractable text contributes nothing.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// Extract returns the document's plain text, pages joined with newlines.
// Row order within a page follows the PDF's top-to-bottom text rows, so the
// line-based heuristics downstream see the same lines a human would.
//
// ledongthuc/pdf reports malformed files by panicking; the recover converts
// that into a per-document error so one corrupt file cannot take down a
// whole batch.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (doc entity.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = entity.Document{}
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return entity.Document{}, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return entity.Document{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return entity.Document{}, fmt.Errorf("read page %d of %s: %w", i, path, err)
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
	}

	doc = entity.Document{
		Name: filepath.Base(path),
		Text: sb.String(),
	}
	e.logger.Debug("extract.text.ok", "file", doc.Name, "chars", len(doc.Text))
	return doc, nil
}

// ExtractLayout returns the document with per-word tokens and page width.
// Only the first page is analyzed positionally; the voucher layout family
// this targets carries its receipt/charge table there.
func (e *PDFExtractor) ExtractLayout(ctx context.Context, path string) (doc entity.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = entity.Document{}
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	doc, err = e.Extract(ctx, path)
	if err != nil {
		return entity.Document{}, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return entity.Document{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return doc, nil
	}
	p := r.Page(1)
	if p.V.IsNull() {
		return doc, nil
	}

	texts := p.Content().Text
	doc.Words = groupWords(texts)
	doc.PageWidth = pageWidth(p, texts)

	e.logger.Debug("extract.layout.ok", "file", doc.Name, "words", len(doc.Words), "page_width", doc.PageWidth)
	return doc, nil
}

// groupWords merges raw content chunks (often per-glyph) into word tokens in
// reading order: rows top-to-bottom, words left-to-right within a row.
func groupWords(texts []pdf.Text) []entity.Word {
	chunks := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		chunks = append(chunks, t)
	}
	if len(chunks) == 0 {
		return nil
	}

	// Rows share a Y coordinate within tolerance.
	sort.SliceStable(chunks, func(i, j int) bool {
		if diff := chunks[i].Y - chunks[j].Y; diff > rowTolerance || diff < -rowTolerance {
			return chunks[i].Y > chunks[j].Y
		}
		return chunks[i].X < chunks[j].X
	})

	var words []entity.Word
	var cur *entity.Word
	var curEnd, curY float64

	for _, c := range chunks {
		gapLimit := wordGapFactor * c.FontSize
		if gapLimit <= 0 {
			gapLimit = 1.0
		}
		sameRow := cur != nil && c.Y >= curY-rowTolerance && c.Y <= curY+rowTolerance
		if sameRow && c.X-curEnd <= gapLimit {
			cur.Text += c.S
			curEnd = c.X + c.W
			continue
		}
		words = append(words, entity.Word{})
		cur = &words[len(words)-1]
		cur.Text = c.S
		cur.X = c.X
		cur.Y = c.Y
		curEnd = c.X + c.W
		curY = c.Y
	}
	return words
}

// pageWidth reads the MediaBox when present, falling back to the right edge
// of the widest token so midpoint classification still has a denominator.
func pageWidth(p pdf.Page, texts []pdf.Text) float64 {
	box := p.V.Key("MediaBox")
	if box.Kind() == pdf.Array && box.Len() == 4 {
		if w := box.Index(2).Float64() - box.Index(0).Float64(); w > 0 {
			return w
		}
	}
	var max float64
	for _, t := range texts {
		if edge := t.X + t.W; edge > max {
			max = edge
		}
	}
	return max
}
