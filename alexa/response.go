package alexa

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/cookalong"
)

// NewResponseEnvelope builds the outbound envelope for a response. Speech is
// rendered as SSML, the reprompt as plain text. A response without speech
// carries no outputSpeech.
func NewResponseEnvelope(resp *cookalong.SpeechResponse) *ResponseEnvelope {
	env := &ResponseEnvelope{
		Version:           Version,
		SessionAttributes: resp.Attributes,
		Response:          ResponseBody{ShouldEndSession: resp.ShouldEndSession},
	}

	if resp.SpeechText != "" {
		env.Response.OutputSpeech = &OutputSpeech{Type: SpeechSSML, SSML: RenderSSML(resp.SpeechText)}
	}
	if resp.RepromptText != "" {
		env.Response.Reprompt = &Reprompt{
			OutputSpeech: OutputSpeech{Type: SpeechPlainText, Text: resp.RepromptText},
		}
	}
	if resp.Card != nil {
		env.Response.Card = &Card{Type: CardStandard, Title: resp.Card.Title, Text: resp.Card.Text}
	}

	return env
}

// EncodeResponse writes the envelope for a response as JSON.
func EncodeResponse(w io.Writer, resp *cookalong.SpeechResponse) error {
	return json.NewEncoder(w).Encode(NewResponseEnvelope(resp))
}
