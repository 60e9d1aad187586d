package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cookalong"
)

var _ cookalong.RecipeExtractor = (*Extractor)(nil)

// Extractor implements cookalong.RecipeExtractor. It detects the page layout
// and delegates to the strategy registered for it.
type Extractor struct {
	strategies map[Layout]Strategy
}

// NewExtractor creates an Extractor with the labeled and unlabeled strategies.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: map[Layout]Strategy{
			LayoutLabeled:   NewLabeledStrategy(),
			LayoutUnlabeled: NewUnlabeledStrategy(),
		},
	}
}

// Extract parses the page and returns its ingredients and instructions.
// The page URL is accepted for interface symmetry and error messages.
func (e *Extractor) Extract(html, pageURL string) (*cookalong.RecipeDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cookalong.Errorf(cookalong.EINVALID, "failed to parse recipe page %s: %v", pageURL, err)
	}

	details := e.strategyFor(doc).Extract(doc)
	return &details, nil
}

// StrategyForHTML returns the strategy that would be used for the page.
// Returns nil if the HTML cannot be parsed.
func (e *Extractor) StrategyForHTML(html string) Strategy {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return e.strategyFor(doc)
}

func (e *Extractor) strategyFor(doc *goquery.Document) Strategy {
	return e.strategies[DetectLayout(doc)]
}
