package alexa

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/cookalong"
)

// DecodeRequest reads a request envelope and converts it to a turn.
// Returns EINVALID if the body is not a well-formed envelope.
func DecodeRequest(r io.Reader) (*cookalong.Request, error) {
	var env RequestEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, cookalong.Errorf(cookalong.EINVALID, "invalid request envelope: %v", err)
	}
	return env.Turn()
}

// Turn converts the envelope to a turn.
// Returns EINVALID if the request type or the user is missing.
func (e *RequestEnvelope) Turn() (*cookalong.Request, error) {
	if e.Request.Type == "" {
		return nil, cookalong.Errorf(cookalong.EINVALID, "request type required")
	}
	if e.Session.User.UserID == "" {
		return nil, cookalong.Errorf(cookalong.EINVALID, "user id required")
	}

	req := &cookalong.Request{
		Type:          cookalong.RequestType(e.Request.Type),
		RequestID:     e.Request.RequestID,
		SessionID:     e.Session.SessionID,
		ApplicationID: e.Session.Application.ApplicationID,
		UserID:        e.Session.User.UserID,
		NewSession:    e.Session.New,
		Attributes:    e.Session.Attributes,
	}

	if in := e.Request.Intent; in != nil {
		intent := &cookalong.Intent{Name: in.Name}
		if len(in.Slots) > 0 {
			intent.Slots = make(map[string]string, len(in.Slots))
			for key, slot := range in.Slots {
				name := slot.Name
				if name == "" {
					name = key
				}
				intent.Slots[name] = slot.Value
			}
		}
		req.Intent = intent
	}

	return req, nil
}
