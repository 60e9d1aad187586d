package cookalong

import (
	"context"
	"strings"
)

// RequestType identifies the kind of inbound turn.
type RequestType string

// RequestType constants.
const (
	RequestLaunch       RequestType = "LaunchRequest"
	RequestIntent       RequestType = "IntentRequest"
	RequestSessionEnded RequestType = "SessionEndedRequest"
)

// Intent names recognized by the skill.
const (
	IntentSearchForRecipe  = "SearchForRecipe"
	IntentPickRecipeNumber = "PickRecipeNumber"
	IntentNextStep         = "NextStep"
	IntentPreviousStep     = "PreviousStep"
	IntentRepeatStep       = "RepeatStep"
	IntentHelp             = "AMAZON.HelpIntent"
	IntentStop             = "AMAZON.StopIntent"
	IntentCancel           = "AMAZON.CancelIntent"
)

// Slot names.
const (
	SlotRecipeSearchString = "RecipeSearchString"
	SlotRecipeNumber       = "RecipeNumber"
)

// Intent is a caller-classified user goal with optional slot values.
type Intent struct {
	Name  string
	Slots map[string]string
}

// Slot returns the trimmed value of the named slot. A slot that is missing
// or has an empty value is reported as absent.
func (i *Intent) Slot(name string) (string, bool) {
	if i == nil {
		return "", false
	}
	v := strings.TrimSpace(i.Slots[name])
	return v, v != ""
}

// SessionAttributes are the short-lived values carried by the caller between
// turns of one conversational session.
type SessionAttributes struct {
	NewSession  bool              `json:"new_session,omitempty"`
	Results     []RecipeCandidate `json:"recipe_results,omitempty"`
	RecipeTitle string            `json:"recipe_title,omitempty"`
	Recipe      *RecipeDetails    `json:"recipe_details,omitempty"`
}

// Request is one inbound turn.
type Request struct {
	Type          RequestType
	RequestID     string
	SessionID     string
	ApplicationID string
	UserID        string
	NewSession    bool
	Intent        *Intent
	Attributes    SessionAttributes
}

// IntentName returns the intent name or an empty string for non-intent requests.
func (r *Request) IntentName() string {
	if r.Intent == nil {
		return ""
	}
	return r.Intent.Name
}

// TurnHandler answers one turn. A non-nil error means a collaborator failed
// and the turn has no meaningful answer.
type TurnHandler interface {
	Handle(ctx context.Context, req *Request) (*SpeechResponse, error)
}
