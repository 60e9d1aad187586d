package mock

import (
	"context"

	"github.com/fwojciec/cookalong"
)

var (
	_ cookalong.RecipeExtractor = (*RecipeExtractor)(nil)
	_ cookalong.RecipeSearcher  = (*RecipeSearcher)(nil)
)

// RecipeExtractor is a mock implementation of cookalong.RecipeExtractor.
type RecipeExtractor struct {
	ExtractFn func(html, pageURL string) (*cookalong.RecipeDetails, error)
}

func (e *RecipeExtractor) Extract(html, pageURL string) (*cookalong.RecipeDetails, error) {
	return e.ExtractFn(html, pageURL)
}

// RecipeSearcher is a mock implementation of cookalong.RecipeSearcher.
type RecipeSearcher struct {
	SearchFn func(ctx context.Context, query string) ([]cookalong.RecipeCandidate, error)
}

func (s *RecipeSearcher) Search(ctx context.Context, query string) ([]cookalong.RecipeCandidate, error) {
	return s.SearchFn(ctx, query)
}
