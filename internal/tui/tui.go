package tui

import (
	"errors"
	"fmt"

	"codeberg.org/branchadmin/server/internal/assist"
	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/page"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// what a session needs to mount its controller
type Options struct {
	Mode        Mode
	Document    *page.Document
	Selectors   config.Selectors
	Endpoint    string // absolute URL of the generation endpoint
	Generator   assist.Generator
	RejectStale bool
}

// mounts the controller for opts.Mode on the page and builds the editor around it
func NewModel(opts Options) (*Model, error) {
	if opts.Document == nil {
		return nil, errors.New("document is required")
	}

	sel := opts.Selectors
	loop := &programLoop{}

	m := &Model{
		mode:    opts.Mode,
		doc:     opts.Document,
		loop:    loop,
		editor:  newEditor(),
		spinner: newSpinner(),
	}

	deps := assist.Deps{
		Generator:       opts.Generator,
		Loop:            loop,
		Tokens:          page.FieldToken{Doc: opts.Document, Selector: sel.AuthTokenField},
		FallbackMessage: sel.FallbackMessage,
		RejectStale:     opts.RejectStale,
	}

	var fieldSel, triggerSel, indicatorSel string

	switch opts.Mode {
	case ModeReply:
		reply, err := assist.MountReply(opts.Document, sel.Reply, opts.Endpoint, deps)
		if err != nil {
			return nil, fmt.Errorf("failed to mount reply assistant: %w", err)
		}

		m.title = "Reply to review"
		m.state = reply.State
		fieldSel, triggerSel, indicatorSel = sel.Reply.Field, sel.Reply.Trigger, sel.Reply.Indicator

		if m.errors, err = opts.Document.Query(sel.Reply.ErrorDisplay); err != nil {
			return nil, err
		}

		// MountReply creates the error display when the page has none
		if m.errors == nil {
			m.errors, _ = opts.Document.Query("#" + assist.ReplyErrorID)
		}

	case ModeMailing:
		mailing, err := assist.MountMailing(opts.Document, sel.Mailing, opts.Endpoint, m, deps)
		if err != nil {
			return nil, fmt.Errorf("failed to mount mailing assistant: %w", err)
		}

		m.title = "New mailing"
		m.state = mailing.State
		fieldSel = sel.Mailing.Field
		triggerSel = "#" + assist.MailingTriggerID
		indicatorSel = "#" + assist.MailingIndicatorID

	default:
		return nil, fmt.Errorf("unsupported mode: %d", opts.Mode)
	}

	var err error
	if m.field, err = mustFind(opts.Document, fieldSel); err != nil {
		return nil, err
	}

	if m.trigger, err = mustFind(opts.Document, triggerSel); err != nil {
		return nil, err
	}

	// a reply page may lack its indicator; MountReply then adds one after the trigger
	if m.indicator, err = opts.Document.Query(indicatorSel); err != nil {
		return nil, err
	}

	if m.indicator == nil && opts.Mode == ModeReply {
		m.indicator, _ = opts.Document.Query("#" + assist.ReplyIndicatorID)
	}

	m.editor.SetValue(m.field.Value())

	return m, nil
}

// shows a blocking notice; called on the UI goroutine
func (m *Model) Notify(message string) {
	m.notices = append(m.notices, message)
}

// the field content, as it would be submitted with the form
func (m *Model) Value() string {
	return m.field.Value()
}

// runs the TUI until the operator quits
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.loop.attach(p.Send)

	_, err := p.Run()
	return err
}

func mustFind(doc *page.Document, selector string) (*page.Element, error) {
	el, err := doc.Query(selector)
	if err != nil {
		return nil, err
	}

	if el == nil {
		return nil, fmt.Errorf("element %q not found on page", selector)
	}

	return el, nil
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "type a topic or a draft here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(10)
	ta.Focus()

	return ta
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return s
}
