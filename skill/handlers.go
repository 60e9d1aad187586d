package skill

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/cookalong"
)

func (r *Router) welcome() *cookalong.SpeechResponse {
	return &cookalong.SpeechResponse{
		SpeechText: welcomeSpeech,
		Card: &cookalong.Card{
			Title: welcomeTitle,
			Text:  `You can use this skill to search for and cook along with recipes on the Skinny Taste website. Try asking something like "search for broccoli".`,
		},
		RepromptText: repromptSearch,
		Attributes:   cookalong.SessionAttributes{NewSession: true},
	}
}

func (r *Router) search(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	attrs := req.Attributes
	attrs.NewSession = false

	query, ok := req.Intent.Slot(cookalong.SlotRecipeSearchString)
	if !ok {
		return reprompt(missingQuerySpeech, repromptPick, attrs), nil
	}

	results, err := r.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if len(results) == 0 {
		attrs.Results = nil
		speech := fmt.Sprintf(`<p>Sorry, I couldn't find any recipes for "%s". Try searching for something else.</p>`, plain(query))
		return reprompt(speech, repromptSearch, attrs), nil
	}

	top := results[:min(len(results), MaxResults)]
	attrs.Results = top

	var speech, card strings.Builder
	fmt.Fprintf(&speech, `<p>Here are the top search results for "%s": </p>`, plain(query))
	for i, c := range top {
		fmt.Fprintf(&speech, "Recipe %d: %s. ", i+1, plain(c.Title))
		fmt.Fprintf(&card, "Recipe %d: %s.\n", i+1, c.Title)
	}
	speech.WriteString(`<p>Which recipe number would you like? Say "recipe" and then the number of the result.</p>`)
	card.WriteString("\n" + `Which recipe number would you like? Say "recipe" and then the number of the result.`)

	return &cookalong.SpeechResponse{
		SpeechText: speech.String(),
		Card: &cookalong.Card{
			Title: fmt.Sprintf(`Search results for "%s":`, query),
			Text:  card.String(),
		},
		RepromptText: repromptPick,
		Attributes:   attrs,
	}, nil
}

func (r *Router) pick(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	attrs := req.Attributes

	number, ok := recipeNumber(req.Intent)
	if !ok {
		return reprompt(pickNumberSpeech(MaxResults), repromptRepeat, attrs), nil
	}
	if len(attrs.Results) == 0 {
		return reprompt(searchFirstSpeech, repromptSearch, attrs), nil
	}
	if number > len(attrs.Results) {
		return reprompt(pickNumberSpeech(len(attrs.Results)), repromptRepeat, attrs), nil
	}

	candidate := attrs.Results[number-1]
	html, err := r.fetcher.Fetch(ctx, candidate.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch recipe %s: %w", candidate.URL, err)
	}
	details, err := r.extractor.Extract(html, candidate.URL)
	if err != nil {
		return nil, fmt.Errorf("extract recipe %s: %w", candidate.URL, err)
	}

	if details.Empty() {
		speech := fmt.Sprintf("<p>Sorry, I couldn't read the instructions for %s. Try picking another recipe.</p>", plain(candidate.Title))
		return reprompt(speech, repromptPick, attrs), nil
	}

	state, err := r.navigator.Pick(ctx, req.UserID, *details)
	if err != nil {
		return nil, err
	}
	attrs.Results = nil
	attrs.Recipe = details
	attrs.RecipeTitle = candidate.Title

	var card strings.Builder
	for i, instruction := range details.Instructions {
		fmt.Fprintf(&card, "Step %d: %s\n", i+1, instruction)
	}

	return &cookalong.SpeechResponse{
		SpeechText: fmt.Sprintf("Here are the instructions for %s. ", plain(candidate.Title)) +
			FormatStep(state.CurrentStep, state.Recipe.Instructions),
		Card: &cookalong.Card{
			Title: "Recipe Instructions for " + candidate.Title,
			Text:  card.String(),
		},
		RepromptText:     repromptRepeat,
		ShouldEndSession: true,
		Attributes:       attrs,
	}, nil
}

func (r *Router) next(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	tr, err := r.navigator.Next(ctx, req.UserID)
	if err != nil {
		return r.navigationError(req, err)
	}

	speech := FormatStep(tr.State.CurrentStep, tr.State.Recipe.Instructions)
	if tr.AtEnd {
		speech += lastStepNotice
	}
	return stepResponse(speech, req.Attributes), nil
}

func (r *Router) previous(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	tr, err := r.navigator.Previous(ctx, req.UserID)
	if err != nil {
		return r.navigationError(req, err)
	}

	speech := FormatStep(tr.State.CurrentStep, tr.State.Recipe.Instructions)
	if tr.AtStart {
		speech = firstStepNotice + speech
	}
	return stepResponse(speech, req.Attributes), nil
}

func (r *Router) repeat(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	state, err := r.navigator.Repeat(ctx, req.UserID)
	if err != nil {
		return r.navigationError(req, err)
	}
	return stepResponse(FormatStep(state.CurrentStep, state.Recipe.Instructions), req.Attributes), nil
}

// navigationError turns a missing record into guidance and passes every
// other error through.
func (r *Router) navigationError(req *cookalong.Request, err error) (*cookalong.SpeechResponse, error) {
	if cookalong.ErrorCode(err) == cookalong.ENOTFOUND {
		return reprompt(noRecipeSpeech, repromptSearch, req.Attributes), nil
	}
	return nil, err
}

func (r *Router) help(_ context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	return reprompt(helpSpeech, repromptRepeat, req.Attributes), nil
}

func (r *Router) invalid(req *cookalong.Request) *cookalong.SpeechResponse {
	return reprompt(invalidHelpSpeech, repromptRepeat, req.Attributes)
}

func (r *Router) end(_ context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	return &cookalong.SpeechResponse{
		SpeechText:       goodbyeSpeech,
		RepromptText:     repromptRepeat,
		ShouldEndSession: true,
		Attributes:       req.Attributes,
	}, nil
}

// recipeNumber parses the recipe number slot. Only 1..MaxResults is valid.
func recipeNumber(intent *cookalong.Intent) (int, bool) {
	raw, ok := intent.Slot(cookalong.SlotRecipeNumber)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxResults {
		return 0, false
	}
	return n, true
}

// reprompt keeps the session open and asks again.
func reprompt(speech, repromptText string, attrs cookalong.SessionAttributes) *cookalong.SpeechResponse {
	return &cookalong.SpeechResponse{
		SpeechText:   speech,
		RepromptText: repromptText,
		Attributes:   attrs,
	}
}

func stepResponse(speech string, attrs cookalong.SessionAttributes) *cookalong.SpeechResponse {
	return &cookalong.SpeechResponse{
		SpeechText:       speech,
		RepromptText:     repromptRepeat,
		ShouldEndSession: true,
		Attributes:       attrs,
	}
}
