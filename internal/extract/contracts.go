package extract

import (
	"context"

	"github.com/voucherdesk/voucherdesk/internal/entity"
)

// TextExtractor is Stage 1: file -> plain text document.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (entity.Document, error)
}

// LayoutExtractor is the positional variant of Stage 1: file -> document with
// per-word geometry and page width, for midpoint-based side classification.
type LayoutExtractor interface {
	ExtractLayout(ctx context.Context, path string) (entity.Document, error)
}
