package assist

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/logger"
	"codeberg.org/branchadmin/server/internal/page"
	"golang.org/x/net/html"
)

// ids of the elements the mounts create when the page does not provide them
const (
	MailingTriggerID   = "ai-generate-mailing-btn"
	MailingIndicatorID = "ai-mailing-spinner"
	ReplyIndicatorID   = "ai-reply-spinner"
	ReplyErrorID       = "ai-reply-error"
)

// binds a Reply controller to the page-provided trigger next to the reply field
func MountReply(doc *page.Document, sel config.ReplySelectors, endpoint string, deps Deps) (*Reply, error) {
	field, err := doc.Query(sel.Field)
	if err != nil {
		return nil, err
	}

	trigger, err := doc.Query(sel.Trigger)
	if err != nil {
		return nil, err
	}

	if field == nil || trigger == nil {
		return nil, ErrNotOnPage
	}

	indicator, err := doc.Query(sel.Indicator)
	if err != nil {
		return nil, err
	}

	if indicator == nil {
		indicator = doc.CreateElement("span", "Generating...",
			html.Attribute{Key: "id", Val: ReplyIndicatorID},
			html.Attribute{Key: "hidden"},
		)
		trigger.InsertAfter(indicator)
	}

	errorDisplay, err := doc.Query(sel.ErrorDisplay)
	if err != nil {
		return nil, err
	}

	if errorDisplay == nil {
		errorDisplay = doc.CreateElement("div", "",
			html.Attribute{Key: "id", Val: ReplyErrorID},
			html.Attribute{Key: "class", Val: "errornote"},
		)
		indicator.InsertAfter(errorDisplay)
	}

	indicator.SetVisible(false)

	reply := NewReply(endpoint, ReplyView{
		Trigger:   trigger,
		Indicator: indicator,
		Field:     field,
		Errors:    errorDisplay,
		Context:   reviewContextReader{doc: doc, selector: sel.Context},
	}, deps)

	trigger.OnClick(func() {
		if err := reply.Activate(context.Background()); err != nil {
			logger.Debug("reply activation rejected", "error", err)
		}
	})

	return reply, nil
}

// builds the mailing trigger and indicator next to the mailing field; a page without the
// field is left untouched
func MountMailing(doc *page.Document, sel config.MailingSelector, endpoint string, notifier Notifier, deps Deps) (*Mailing, error) {
	field, err := doc.Query(sel.Field)
	if err != nil {
		return nil, err
	}

	if field == nil {
		return nil, ErrNotOnPage
	}

	controls, err := buildMailingControls(doc, field)
	if err != nil {
		return nil, err
	}

	mailing := NewMailing(endpoint, MailingView{
		Trigger:   controls.trigger,
		Indicator: controls.indicator,
		Field:     field,
		Notifier:  notifier,
	}, deps)

	controls.trigger.OnClick(func() {
		if err := mailing.Activate(context.Background()); err != nil && !errors.Is(err, ErrTopicRequired) {
			logger.Debug("mailing activation rejected", "error", err)
		}
	})

	return mailing, nil
}

type mailingControls struct {
	trigger   *page.Element
	indicator *page.Element
}

// creates the trigger and a hidden indicator right after the field's label,
// or after the field itself when it has no label
func buildMailingControls(doc *page.Document, field *page.Element) (mailingControls, error) {
	anchor := field

	if id := field.ID(); id != "" {
		label, err := doc.Query(fmt.Sprintf("label[for=%q]", id))
		if err != nil {
			return mailingControls{}, err
		}

		if label != nil {
			anchor = label
		}
	}

	trigger := doc.CreateElement("button", "✨ Generate with AI",
		html.Attribute{Key: "type", Val: "button"},
		html.Attribute{Key: "id", Val: MailingTriggerID},
		html.Attribute{Key: "class", Val: "button ai-generate-btn"},
	)

	indicator := doc.CreateElement("span", "Generating...",
		html.Attribute{Key: "id", Val: MailingIndicatorID},
		html.Attribute{Key: "class", Val: "ai-spinner"},
		html.Attribute{Key: "hidden"},
	)

	anchor.InsertAfter(trigger)
	trigger.InsertAfter(indicator)

	return mailingControls{trigger: trigger, indicator: indicator}, nil
}

// reads review context from data attributes of the first element matching selector
type reviewContextReader struct {
	doc      *page.Document
	selector string
}

func (r reviewContextReader) ReviewContext() ReviewContext {
	review := ReviewContext{Rating: DefaultReviewRating}

	el, err := r.doc.Query(r.selector)
	if err != nil || el == nil {
		return review
	}

	if text, ok := el.Attr("data-review-text"); ok {
		review.Text = text
	}

	if raw, ok := el.Attr("data-review-rating"); ok {
		if rating, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			review.Rating = rating
		}
	}

	return review
}
