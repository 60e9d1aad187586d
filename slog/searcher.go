package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cookalong"
)

// Ensure LoggingSearcher implements cookalong.RecipeSearcher.
var _ cookalong.RecipeSearcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a RecipeSearcher with logging.
type LoggingSearcher struct {
	next   cookalong.RecipeSearcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next cookalong.RecipeSearcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search logs the query, the number of results, duration and error.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []cookalong.RecipeCandidate, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
