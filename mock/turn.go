package mock

import (
	"context"

	"github.com/fwojciec/cookalong"
)

var _ cookalong.TurnHandler = (*TurnHandler)(nil)

// TurnHandler is a mock implementation of cookalong.TurnHandler.
type TurnHandler struct {
	HandleFn func(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error)
}

func (h *TurnHandler) Handle(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	return h.HandleFn(ctx, req)
}
