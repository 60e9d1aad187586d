package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cookalong"
)

// DefaultSiteURL is the recipe site searched by default.
const DefaultSiteURL = "https://www.skinnytaste.com"

const (
	resultSelector  = `a[rel~="bookmark"]`
	headingSelector = "h1, h2, h3, h4, h5, h6"
)

var _ cookalong.RecipeSearcher = (*Searcher)(nil)

// Searcher implements cookalong.RecipeSearcher by fetching the site's search
// results page and parsing it.
type Searcher struct {
	fetcher cookalong.Fetcher
	siteURL string
}

// NewSearcher creates a Searcher for the site at siteURL.
// An empty siteURL selects DefaultSiteURL.
func NewSearcher(fetcher cookalong.Fetcher, siteURL string) *Searcher {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return &Searcher{
		fetcher: fetcher,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// SearchURL returns the results page URL for the query. Spaces are encoded
// as '+' and every other reserved character is percent-encoded.
func (s *Searcher) SearchURL(query string) string {
	return s.siteURL + "/?s=" + url.QueryEscape(query)
}

// Search fetches and parses the results page for the query.
func (s *Searcher) Search(ctx context.Context, query string) ([]cookalong.RecipeCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, cookalong.Errorf(cookalong.EINVALID, "search query required")
	}

	pageURL := s.SearchURL(query)
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return ParseSearchResults(html, pageURL)
}

// ParseSearchResults returns one candidate per bookmark link that contains a
// heading, in document order. Bookmark links without a heading are
// promotional or navigational and are skipped. Relative links are resolved
// against pageURL.
func ParseSearchResults(html, pageURL string) ([]cookalong.RecipeCandidate, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, cookalong.Errorf(cookalong.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cookalong.Errorf(cookalong.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := []cookalong.RecipeCandidate{}
	doc.Find(resultSelector).Each(func(_ int, sel *goquery.Selection) {
		heading := sel.Find(headingSelector).First()
		if heading.Length() == 0 {
			return
		}

		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		candidates = append(candidates, cookalong.RecipeCandidate{
			Title: strings.TrimSpace(heading.Text()),
			URL:   resolved,
		})
	})

	return candidates, nil
}

// resolveURL resolves a possibly relative href against the base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
