package assist

import (
	"context"
	"strings"

	"codeberg.org/branchadmin/server/internal/generation"
	"codeberg.org/branchadmin/server/internal/logger"
)

const (
	mailingResultKey = "text"

	TopicRequiredMessage = "Please enter a topic for the mailing first."
	mailingErrorPrefix   = "Error: "
)

type MailingView struct {
	Trigger   Trigger
	Indicator Indicator
	Field     Field
	Notifier  Notifier
}

// turns the topic typed into the mailing text field into a full mailing text
type Mailing struct {
	endpoint string
	view     MailingView
	deps     Deps
	life     *lifecycle
}

func NewMailing(endpoint string, view MailingView, deps Deps) *Mailing {
	log := logger.With("controller", "mailing")

	return &Mailing{
		endpoint: endpoint,
		view:     view,
		deps:     deps,
		life:     newLifecycle(view.Trigger, view.Indicator, deps.RejectStale, log),
	}
}

func (m *Mailing) State() State {
	return m.life.state
}

// starts a mailing generation; must be called on the UI loop
func (m *Mailing) Activate(ctx context.Context) error {
	if m.life.state == Requesting {
		return ErrBusy
	}

	topic := m.view.Field.Value()
	if strings.TrimSpace(topic) == "" {
		m.view.Notifier.Notify(TopicRequiredMessage)
		return ErrTopicRequired
	}

	token, tokenErr := m.deps.Tokens.Token()

	id, err := m.life.begin()
	if err != nil {
		return err
	}

	req := generation.Request{
		Endpoint:  m.endpoint,
		AuthToken: token,
		Payload:   map[string]any{"topic": topic},
	}

	call := func() generation.Result {
		return m.deps.Generator.Generate(detached(ctx), req, mailingResultKey)
	}

	if tokenErr != nil {
		m.life.log.Warn("cannot read auth token", "error", tokenErr)
		call = func() generation.Result {
			return generation.Failure(m.deps.fallback())
		}
	}

	m.life.dispatch(m.deps, id, call, m.apply)

	return nil
}

func (m *Mailing) apply(result generation.Result) {
	if result.OK() {
		m.view.Field.SetValue(result.Text())
		return
	}

	m.view.Notifier.Notify(mailingErrorPrefix + result.Message())
}
