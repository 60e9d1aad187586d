package skill

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/cookalong"
)

var _ cookalong.TurnHandler = (*Router)(nil)

// HandlerFunc answers one intent.
type HandlerFunc func(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error)

// Router dispatches each turn to the handler registered for its intent.
//
// Turns of the same user are serialized, so a duplicate or retried request
// handled by this process cannot interleave with the first delivery. Turns served
// by different processes still race in the store (last writer wins).
type Router struct {
	searcher  cookalong.RecipeSearcher
	fetcher   cookalong.Fetcher
	extractor cookalong.RecipeExtractor
	navigator *Navigator
	logger    *slog.Logger

	handlers map[string]HandlerFunc
	locks    *userLocks
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger for turn dispatch. Defaults to discarding logs.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// NewRouter creates a Router with the skill's dispatch table.
func NewRouter(
	searcher cookalong.RecipeSearcher,
	fetcher cookalong.Fetcher,
	extractor cookalong.RecipeExtractor,
	navigator *Navigator,
	opts ...Option,
) *Router {
	r := &Router{
		searcher:  searcher,
		fetcher:   fetcher,
		extractor: extractor,
		navigator: navigator,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		locks:     newUserLocks(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.handlers = map[string]HandlerFunc{
		cookalong.IntentSearchForRecipe:  r.search,
		cookalong.IntentPickRecipeNumber: r.pick,
		cookalong.IntentNextStep:         r.next,
		cookalong.IntentPreviousStep:     r.previous,
		cookalong.IntentRepeatStep:       r.repeat,
		cookalong.IntentHelp:             r.help,
		cookalong.IntentStop:             r.end,
		cookalong.IntentCancel:           r.end,
	}

	return r
}

// Handle answers one turn. A non-nil error means the turn failed on a
// collaborator (fetch, store); callers answer it with FailureResponse.
func (r *Router) Handle(ctx context.Context, req *cookalong.Request) (resp *cookalong.SpeechResponse, err error) {
	if req.UserID != "" {
		unlock := r.locks.lock(req.UserID)
		defer unlock()
	}

	defer func(begin time.Time) {
		r.logger.Info("turn",
			"type", string(req.Type),
			"intent", req.IntentName(),
			"user", req.UserID,
			"session", req.SessionID,
			"request", req.RequestID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	switch req.Type {
	case cookalong.RequestLaunch:
		return r.welcome(), nil
	case cookalong.RequestSessionEnded:
		return &cookalong.SpeechResponse{ShouldEndSession: true, Attributes: req.Attributes}, nil
	case cookalong.RequestIntent:
		return r.dispatch(ctx, req)
	default:
		return r.invalid(req), nil
	}
}

func (r *Router) dispatch(ctx context.Context, req *cookalong.Request) (*cookalong.SpeechResponse, error) {
	name := req.IntentName()

	// The first search of a fresh session consumes the session-start flag.
	if req.NewSession && req.Attributes.NewSession && name == cookalong.IntentSearchForRecipe {
		req.Attributes.NewSession = false
	}

	h, ok := r.handlers[name]
	if !ok {
		return r.invalid(req), nil
	}
	return h(ctx, req)
}

// FailureResponse is the answer to a turn whose collaborators failed. It is
// always a valid response and ends the session.
func FailureResponse() *cookalong.SpeechResponse {
	return &cookalong.SpeechResponse{
		SpeechText:       failureSpeech,
		RepromptText:     repromptRepeat,
		ShouldEndSession: true,
	}
}
