package skill

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// MaxResults is the number of search results read to the user and the upper
// bound of a valid recipe number.
const MaxResults = 3

const (
	repromptRepeat = "Sorry, I didn't catch that. Please repeat."
	repromptPick   = `Sorry, I didn't catch that. Please say "recipe" and then the number of the result.`
	repromptSearch = `Sorry, I didn't catch that. Please ask something like "search for broccoli" to find broccoli recipes.`

	welcomeTitle  = "Welcome to the Skinnytaste Alexa Skill!"
	welcomeSpeech = `<p>Welcome to the Skinny Taste Alexa skill! You can use this skill to search for and cook along with recipes on the Skinny Taste website. ` +
		`Try asking something like "search for broccoli" to find broccoli recipes.</p>`

	missingQuerySpeech = `<p>Sorry, it seems that you forgot to say what you want to search for. ` +
		`Try saying "search for" and then a recipe or ingredient.</p>`
	pickNumberPrompt  = `Say "Recipe" and then the number of the recipe.`
	searchFirstSpeech = `<p>Search for a recipe first. Try saying "search for broccoli" to find broccoli recipes.</p>`
	noRecipeSpeech    = `<p>You haven't picked a recipe yet. Search for a recipe and pick one first, ` +
		`for example by saying "search for broccoli".</p>`

	nextStepPrompt  = `<p>Say "Alexa, ask Skinnytaste what's the next step?" to continue.</p>`
	finalStepSpeech = "<p>This was the final step! Happy cooking!</p>"
	lastStepNotice  = "<p>This was the last step. If you're done cooking, just say 'End'! Enjoy your meal!</p>"
	firstStepNotice = "<p>You're already at the first step.</p>"

	helpSpeech = `<p>Start using the Skinny Taste Alexa skill by searching for a recipe. ` +
		`Try something like "search for broccoli" to find broccoli recipes.</p>`
	invalidHelpSpeech = `<p>Hmm.. sorry, but that wasn't a valid command. ` +
		`Try saying something like "search for broccoli" to find broccoli recipes. ` +
		`If you're in the middle of a recipe, you can say "Next Step", "Previous Step" or "Repeat Step" ` +
		`to navigate the recipe instructions.</p>`
	goodbyeSpeech = "<p>Thanks for using the Skinny Taste Alexa skill! Happy cooking!</p>"
	failureSpeech = "<p>Sorry, I'm having trouble reaching Skinnytaste right now. Please try again later.</p>"
)

// strict strips all markup; scraped text must never inject SSML elements.
var strict = bluemonday.StrictPolicy()

// plain makes text safe to embed between speech markup. Tags are removed and
// XML special characters are escaped.
func plain(text string) string {
	return html.EscapeString(html.UnescapeString(strict.Sanitize(text)))
}

// normalizeInstruction collapses the " . " runs left behind by the site's
// markup so the text reads fluently.
func normalizeInstruction(text string) string {
	for strings.Contains(text, " . ") {
		text = strings.ReplaceAll(text, " . ", " ")
	}
	return strings.TrimSpace(text)
}

// FormatStep renders the speech for one step: its position, the instruction
// and either the prompt to continue or, on the last step, the completion
// message. Steps outside 1..N are clamped.
func FormatStep(step int, instructions []string) string {
	n := len(instructions)
	if n == 0 {
		return "<p>This recipe has no instructions.</p>"
	}
	step = min(max(step, 1), n)

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Step %d of %d: %s </p>", step, n, plain(normalizeInstruction(instructions[step-1])))
	if step < n {
		b.WriteString(nextStepPrompt)
	} else {
		b.WriteString(finalStepSpeech)
	}
	return b.String()
}

// numberWords spells out valid recipe numbers.
var numberWords = []string{"zero", "one", "two", "three"}

func pickNumberSpeech(count int) string {
	count = min(max(count, 1), MaxResults)
	if count == 1 {
		return "<p>Please pick recipe number one. " + pickNumberPrompt + "</p>"
	}
	return fmt.Sprintf("<p>Please pick a recipe number from one to %s. %s</p>", numberWords[count], pickNumberPrompt)
}
