// Package alexa implements the voice platform's JSON request and response
// envelopes and renders speech as SSML.
package alexa

import "github.com/fwojciec/cookalong"

// Version is the response envelope version.
const Version = "1.0"

// Output speech and card types.
const (
	SpeechSSML      = "SSML"
	SpeechPlainText = "PlainText"
	CardStandard    = "Standard"
)

// RequestEnvelope is the inbound JSON document of one turn.
type RequestEnvelope struct {
	Version string      `json:"version,omitempty"`
	Session Session     `json:"session"`
	Request RequestBody `json:"request"`
}

// Session carries the caller-managed session data.
type Session struct {
	New         bool                        `json:"new"`
	SessionID   string                      `json:"sessionId"`
	Application Application                 `json:"application"`
	User        User                        `json:"user"`
	Attributes  cookalong.SessionAttributes `json:"attributes"`
}

// Application identifies the skill the request was sent to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the account speaking to the skill.
type User struct {
	UserID string `json:"userId"`
}

// RequestBody describes what happened on this turn.
type RequestBody struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Intent is the recognized intent with its slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one slot value. Value is empty when the user did not fill it.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ResponseEnvelope is the outbound JSON document of one turn.
type ResponseEnvelope struct {
	Version           string                      `json:"version"`
	SessionAttributes cookalong.SessionAttributes `json:"sessionAttributes"`
	Response          ResponseBody                `json:"response"`
}

// ResponseBody is the spoken and displayed answer.
type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is either SSML or plain text.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml,omitempty"`
	Text string `json:"text,omitempty"`
}

// Reprompt is spoken when the user does not answer.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Card is shown in the companion app.
type Card struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
