package assist

import (
	"context"

	"codeberg.org/branchadmin/server/internal/generation"
	"codeberg.org/branchadmin/server/internal/logger"
)

const (
	replyResultKey = "reply"

	// rating assumed when the page does not carry one
	DefaultReviewRating = 5
)

// the review a reply is being written for
type ReviewContext struct {
	Text   string
	Rating int
}

type ContextReader interface {
	ReviewContext() ReviewContext
}

type ReplyView struct {
	Trigger   Trigger
	Indicator Indicator
	Field     Field
	Errors    TextDisplay
	Context   ContextReader
}

// generates a reply to a guest review into the reply draft field
type Reply struct {
	endpoint string
	view     ReplyView
	deps     Deps
	life     *lifecycle
}

func NewReply(endpoint string, view ReplyView, deps Deps) *Reply {
	log := logger.With("controller", "reply")

	return &Reply{
		endpoint: endpoint,
		view:     view,
		deps:     deps,
		life:     newLifecycle(view.Trigger, view.Indicator, deps.RejectStale, log),
	}
}

func (r *Reply) State() State {
	return r.life.state
}

// starts a reply generation; must be called on the UI loop
func (r *Reply) Activate(ctx context.Context) error {
	if r.life.state == Requesting {
		return ErrBusy
	}

	review := r.view.Context.ReviewContext()
	draft := r.view.Field.Value()
	token, tokenErr := r.deps.Tokens.Token()

	id, err := r.life.begin()
	if err != nil {
		return err
	}

	r.view.Errors.SetText("")

	req := generation.Request{
		Endpoint:  r.endpoint,
		AuthToken: token,
		Payload: map[string]any{
			"review_text":   review.Text,
			"review_rating": review.Rating,
			"draft_text":    draft,
		},
	}

	call := func() generation.Result {
		return r.deps.Generator.Generate(detached(ctx), req, replyResultKey)
	}

	if tokenErr != nil {
		r.life.log.Warn("cannot read auth token", "error", tokenErr)
		call = func() generation.Result {
			return generation.Failure(r.deps.fallback())
		}
	}

	r.life.dispatch(r.deps, id, call, r.apply)

	return nil
}

// writes the result into the page; the field changes only on success
func (r *Reply) apply(result generation.Result) {
	if result.OK() {
		r.view.Field.SetValue(result.Text())
		return
	}

	r.view.Errors.SetText(result.Message())
}
