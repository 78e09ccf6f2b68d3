// Package assist implements the generation controllers of the admin editing
// surface: Reply assists with answers to guest reviews, Mailing with the body
// of a mailing. Both run on a single UI loop; the network call is their only
// suspension point and its completion is posted back onto the loop.
package assist

import (
	"context"
	"errors"

	"codeberg.org/branchadmin/server/internal/eventloop"
	"codeberg.org/branchadmin/server/internal/generation"
)

var (
	// returned when a controller is activated while its request is outstanding
	ErrBusy = errors.New("generation request already in progress")

	// returned when the mailing topic is empty
	ErrTopicRequired = errors.New("mailing topic is required")

	// returned by the Mount functions when the page lacks the controller's field
	ErrNotOnPage = errors.New("target field not found on page")
)

// performs one generation request
type Generator interface {
	Generate(ctx context.Context, req generation.Request, resultKey string) generation.Result
}

// provides the anti-forgery token; called once per request, never cached
type TokenSource interface {
	Token() (string, error)
}

type Field interface {
	Value() string
	SetValue(v string)
}

type Trigger interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

type Indicator interface {
	Visible() bool
	SetVisible(visible bool)
}

type TextDisplay interface {
	SetText(s string)
}

// shows a message the operator has to acknowledge
type Notifier interface {
	Notify(message string)
}

// collaborators shared by both controllers
type Deps struct {
	Generator       Generator
	Loop            eventloop.Poster
	Tokens          TokenSource
	FallbackMessage string

	// drop completions of requests that are no longer the latest issued one
	RejectStale bool
}

func (d Deps) fallback() string {
	if d.FallbackMessage != "" {
		return d.FallbackMessage
	}

	return generation.DefaultFallbackMessage
}
