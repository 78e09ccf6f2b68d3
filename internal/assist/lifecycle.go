package assist

import (
	"context"
	"fmt"
	"log/slog"

	"codeberg.org/branchadmin/server/internal/generation"
)

type State int

const (
	Idle State = iota
	Requesting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Requesting:
		return "requesting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Idle -> Requesting -> Idle, plus the trigger/indicator affordances that follow it.
// Only touched from the UI loop.
type lifecycle struct {
	state       State
	trigger     Trigger
	indicator   Indicator
	issued      uint64
	active      uint64
	rejectStale bool
	log         *slog.Logger
}

func newLifecycle(trigger Trigger, indicator Indicator, rejectStale bool, log *slog.Logger) *lifecycle {
	return &lifecycle{
		trigger:     trigger,
		indicator:   indicator,
		rejectStale: rejectStale,
		log:         log,
	}
}

// moves to Requesting and returns the token of the new request
func (l *lifecycle) begin() (uint64, error) {
	if l.state == Requesting {
		return 0, ErrBusy
	}

	l.issued++
	l.active = l.issued
	l.state = Requesting

	l.trigger.SetEnabled(false)
	l.indicator.SetVisible(true)

	return l.active, nil
}

// reports whether the completion of request token may touch the page.
// Every completion is accepted unless stale rejection is on.
func (l *lifecycle) accepts(token uint64) bool {
	return !l.rejectStale || token == l.active
}

func (l *lifecycle) finish() {
	l.state = Idle
	l.trigger.SetEnabled(true)
	l.indicator.SetVisible(false)
}

// runs call off the loop and applies its result back on the loop, then returns to Idle
func (l *lifecycle) dispatch(deps Deps, token uint64, call func() generation.Result, apply func(generation.Result)) {
	go func() {
		result := l.safeCall(deps, call)

		deps.Loop.Post(func() {
			l.complete(token, result, apply)
		})
	}()
}

// applies a completion on the loop. Only the active request returns the
// controller to Idle; an older completion never touches the affordances.
func (l *lifecycle) complete(token uint64, result generation.Result, apply func(generation.Result)) {
	if token == l.active {
		defer l.finish()
	}

	if !l.accepts(token) {
		l.log.Debug("dropping stale generation result", "token", token, "active", l.active)
		return
	}

	apply(result)
}

func (l *lifecycle) safeCall(deps Deps, call func() generation.Result) (result generation.Result) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("generation call panicked", "panic", r)
			result = generation.Failure(deps.fallback())
		}
	}()

	return call()
}

// requests outlive the action that started them; nothing cancels them
func detached(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return context.WithoutCancel(ctx)
}
