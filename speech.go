package cookalong

// Card is the visual companion of a spoken response.
type Card struct {
	Title string
	Text  string
}

// SpeechResponse is the outcome of one turn, built fresh each time.
type SpeechResponse struct {
	// SpeechText may embed lightweight markup such as <p> elements.
	SpeechText string

	// Card is nil when the response has no card.
	Card *Card

	RepromptText     string
	ShouldEndSession bool
	Attributes       SessionAttributes
}
