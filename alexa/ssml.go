package alexa

import (
	"github.com/beevik/etree"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// RenderSSML wraps a speech fragment in a speak element. A fragment that is
// not well-formed XML is reduced to its escaped text.
func RenderSSML(fragment string) string {
	if fragment == "" {
		return "<speak></speak>"
	}

	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	if err := doc.ReadFromString("<speak>" + fragment + "</speak>"); err != nil || doc.Root() == nil {
		return "<speak>" + strict.Sanitize(fragment) + "</speak>"
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "<speak>" + strict.Sanitize(fragment) + "</speak>"
	}
	return out
}
