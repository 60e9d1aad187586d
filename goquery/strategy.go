package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cookalong"
)

// Strategy extracts a recipe from a page of one specific layout.
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document) cookalong.RecipeDetails
}

var (
	_ Strategy = (*LabeledStrategy)(nil)
	_ Strategy = (*UnlabeledStrategy)(nil)
)

// LabeledStrategy reads pages where every ingredient is tagged with the
// ingredient class and the steps are list items of the instructions container.
type LabeledStrategy struct{}

// NewLabeledStrategy creates a new LabeledStrategy.
func NewLabeledStrategy() *LabeledStrategy {
	return &LabeledStrategy{}
}

// Name returns the strategy's identifier.
func (s *LabeledStrategy) Name() string {
	return string(LayoutLabeled)
}

// Extract collects ingredient elements and the list items of the first
// instructions container. Missing containers yield empty sequences.
func (s *LabeledStrategy) Extract(doc *goquery.Document) cookalong.RecipeDetails {
	details := cookalong.RecipeDetails{
		Ingredients:  []string{},
		Instructions: []string{},
	}

	doc.Find(ingredientSelector).Each(func(_ int, sel *goquery.Selection) {
		details.Ingredients = append(details.Ingredients, strings.TrimSpace(sel.Text()))
	})

	// Items nested inside another item belong to their parent step.
	container := doc.Find(instructionsSelector).First()
	container.Find("li").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.ParentsUntilSelection(container).Filter("li").Length() == 0
	}).Each(func(_ int, sel *goquery.Selection) {
		details.Instructions = append(details.Instructions, instructionText(sel))
	})

	return details
}

// UnlabeledStrategy reads older pages. Every list item of the post body is an
// ingredient, and instructions are the paragraphs between the "Directions:"
// paragraph and the newsletter subscription prompt.
type UnlabeledStrategy struct{}

// NewUnlabeledStrategy creates a new UnlabeledStrategy.
func NewUnlabeledStrategy() *UnlabeledStrategy {
	return &UnlabeledStrategy{}
}

// Name returns the strategy's identifier.
func (s *UnlabeledStrategy) Name() string {
	return string(LayoutUnlabeled)
}

// Extract scans the main content block. The capture window opens after the
// paragraph containing the directions marker and closes at the paragraph
// containing the subscription marker, which is itself never captured.
func (s *UnlabeledStrategy) Extract(doc *goquery.Document) cookalong.RecipeDetails {
	details := cookalong.RecipeDetails{
		Ingredients:  []string{},
		Instructions: []string{},
	}

	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	content.Find("li").Each(func(_ int, sel *goquery.Selection) {
		details.Ingredients = append(details.Ingredients, strings.TrimSpace(sel.Text()))
	})

	capturing := false
	content.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if strings.Contains(text, subscriptionMarker) {
			capturing = false
		}
		if capturing {
			if instruction := instructionText(sel); instruction != "" {
				details.Instructions = append(details.Instructions, instruction)
			}
		}
		if strings.Contains(text, directionsMarker) {
			capturing = true
		}
	})

	return details
}

// instructionText returns the element's text without the embedded hyperlink
// nodes. The site inlines promotional links inside steps and those must not
// be read aloud. Everything else is kept verbatim apart from surrounding
// whitespace.
func instructionText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Clone().Find("a").Remove().End().Text())
}
