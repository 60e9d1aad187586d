// Package goquery implements recipe page extraction and search result parsing
// on top of github.com/PuerkitoBio/goquery.
package goquery

import "github.com/PuerkitoBio/goquery"

// Layout names one of the page layouts the recipe site has used over time.
type Layout string

// Layout constants.
const (
	// LayoutLabeled marks pages where ingredients and instructions carry
	// dedicated CSS classes.
	LayoutLabeled Layout = "labeled"

	// LayoutUnlabeled marks older pages where the recipe is free-form
	// post content introduced by a "Directions:" paragraph.
	LayoutUnlabeled Layout = "unlabeled"
)

// Selectors and text markers of the site's markup.
const (
	ingredientSelector   = ".ingredient"
	instructionsSelector = ".instructions"
	contentSelector      = "div.post"

	directionsMarker   = "Directions:"
	subscriptionMarker = "Get new free recipes and exclusive content delivered right to your inbox:"
)

// DetectLayout picks the layout of a parsed page. A page is labeled iff at
// least one ingredient element exists; anything else, including a labeled
// page whose ingredient list happens to be empty, is treated as unlabeled.
func DetectLayout(doc *goquery.Document) Layout {
	if hasSelector(doc, ingredientSelector) {
		return LayoutLabeled
	}
	return LayoutUnlabeled
}

func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
