package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/alexa"
	"github.com/fwojciec/cookalong/fs"
	"github.com/fwojciec/cookalong/skill"
)

// Run executes the invoke command. Session attributes are read from and
// written back to the attributes file, so consecutive invocations behave
// like turns of one session.
func (c *InvokeCmd) Run(deps *Dependencies) error {
	req, err := c.request(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cookalong.ErrorMessage(err))
		return err
	}

	resp, turnErr := deps.Router.Handle(deps.Ctx, req)
	if turnErr != nil {
		resp = skill.FailureResponse()
		resp.Attributes = req.Attributes
	}

	if c.Attributes != "" {
		if err := c.saveAttributes(req, resp); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(alexa.NewResponseEnvelope(resp)); err != nil {
		return err
	}

	if turnErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", turnErr)
		return turnErr
	}
	return nil
}

func (c *InvokeCmd) request(deps *Dependencies) (*cookalong.Request, error) {
	req := &cookalong.Request{
		RequestID: deps.NewID(),
		SessionID: deps.NewID(),
		UserID:    c.User,
	}

	req.NewSession = true
	if c.Attributes != "" {
		attrs, found, err := fs.NewAttributesFile(c.Attributes).Load()
		if err != nil {
			return nil, err
		}
		req.Attributes = attrs
		req.NewSession = !found
	}

	switch strings.ToLower(c.Intent) {
	case "launch":
		req.Type = cookalong.RequestLaunch
		if len(c.Slots) > 0 {
			return nil, cookalong.Errorf(cookalong.EINVALID, "launch takes no slots")
		}
		return req, nil
	case "end":
		req.Type = cookalong.RequestSessionEnded
		return req, nil
	}

	req.Type = cookalong.RequestIntent
	req.Intent = &cookalong.Intent{Name: c.Intent}
	if len(c.Slots) > 0 {
		req.Intent.Slots = make(map[string]string, len(c.Slots))
	}
	for _, kv := range c.Slots {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, cookalong.Errorf(cookalong.EINVALID, "slot %q must be NAME=VALUE", kv)
		}
		req.Intent.Slots[name] = value
	}
	return req, nil
}

// saveAttributes keeps the attributes for the next invocation. A session end
// discards them.
func (c *InvokeCmd) saveAttributes(req *cookalong.Request, resp *cookalong.SpeechResponse) error {
	f := fs.NewAttributesFile(c.Attributes)
	if req.Type == cookalong.RequestSessionEnded {
		return f.Remove()
	}
	return f.Save(resp.Attributes)
}
