package cookalong

import "context"

// RecipeCandidate is a single entry of a search results page.
type RecipeCandidate struct {
	Title string `json:"recipe_title"`
	URL   string `json:"recipe_url"`
}

// RecipeDetails holds the structured content of a recipe page.
// Instructions are in execution order and are never reordered or deduplicated.
type RecipeDetails struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// StepCount returns the number of instructions.
func (r *RecipeDetails) StepCount() int {
	return len(r.Instructions)
}

// Empty reports whether the recipe has no instructions to read.
func (r *RecipeDetails) Empty() bool {
	return len(r.Instructions) == 0
}

// RecipeExtractor recovers ingredients and instructions from a recipe page.
type RecipeExtractor interface {
	// Extract parses the page and returns best-effort results. Pages that
	// match no known layout yield empty sequences rather than an error.
	// Returns EINVALID only if the HTML cannot be parsed at all.
	Extract(html, pageURL string) (*RecipeDetails, error)
}

// RecipeSearcher searches the recipe site.
type RecipeSearcher interface {
	// Search returns candidates in the site's native order. No cap is
	// applied; truncation is up to the caller.
	// Returns EINVALID if the query is blank.
	Search(ctx context.Context, query string) ([]RecipeCandidate, error)
}
