package ports

import (
	"context"
	"io"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

// FrequencyAnalyzer runs the normalization pipeline and the ranker over a document.
type FrequencyAnalyzer interface {
	Analyze(ctx context.Context, text string, opts domain.Options) (domain.Analysis, error)
}

// ChartRenderer draws chart series to w.
type ChartRenderer interface {
	Render(w io.Writer, series []domain.Series) error
}
