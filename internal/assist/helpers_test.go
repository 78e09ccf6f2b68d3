package assist

import (
	"context"
	"sync"
	"testing"
	"time"

	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/eventloop"
	"codeberg.org/branchadmin/server/internal/generation"
	"codeberg.org/branchadmin/server/internal/page"
	"github.com/stretchr/testify/require"
)

const replyPage = `<!DOCTYPE html>
<html><body>
<form method="post" id="branchtestimonials_form">
  <input type="hidden" name="csrfmiddlewaretoken" value="tok-1">
  <div class="review-context" data-review-text="Great stay" data-review-rating="4"></div>
  <div class="form-row field-reply_text">
    <label for="id_reply_text">Reply</label>
    <textarea id="id_reply_text" name="reply_text"></textarea>
    <button type="button" id="ai-generate-reply-btn" class="button">Generate reply</button>
    <span id="ai-reply-spinner" style="display:none">Generating...</span>
    <div id="ai-reply-error" class="errornote"></div>
  </div>
</form>
</body></html>`

const mailingPage = `<!DOCTYPE html>
<html><body>
<form method="post" id="mailing_form">
  <input type="hidden" name="csrfmiddlewaretoken" value="tok-m">
  <div class="form-row field-text">
    <label for="id_text">Text</label>
    <textarea id="id_text" name="text">spring sale</textarea>
  </div>
</form>
</body></html>`

// implements Generator for testing
type mockGenerator struct {
	mu           sync.Mutex
	requests     []generation.Request
	keys         []string
	generateFunc func(ctx context.Context, req generation.Request, resultKey string) generation.Result
}

func (m *mockGenerator) Generate(ctx context.Context, req generation.Request, resultKey string) generation.Result {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.keys = append(m.keys, resultKey)
	fn := m.generateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req, resultKey)
	}

	return generation.Success("generated")
}

func (m *mockGenerator) calls() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]generation.Request(nil), m.requests...)
}

func (m *mockGenerator) resultKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.keys...)
}

func succeedWith(text string) func(context.Context, generation.Request, string) generation.Result {
	return func(context.Context, generation.Request, string) generation.Result {
		return generation.Success(text)
	}
}

func failWith(msg string) func(context.Context, generation.Request, string) generation.Result {
	return func(context.Context, generation.Request, string) generation.Result {
		return generation.Failure(msg)
	}
}

// records blocking notices
type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func parsePage(t *testing.T, src string) *page.Document {
	t.Helper()

	doc, err := page.ParseString(src)
	require.NoError(t, err)

	return doc
}

func element(t *testing.T, doc *page.Document, selector string) *page.Element {
	t.Helper()

	el, err := doc.Query(selector)
	require.NoError(t, err)
	require.NotNil(t, el, "expected %s on page", selector)

	return el
}

func newDeps(doc *page.Document, gen Generator, loop *eventloop.Loop) Deps {
	return Deps{
		Generator: gen,
		Loop:      loop,
		Tokens:    page.FieldToken{Doc: doc, Selector: config.DefaultSelectors().AuthTokenField},
	}
}

// runs the next posted completion on the calling goroutine, which plays the UI loop
func completeNext(t *testing.T, loop *eventloop.Loop) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, loop.RunOnce(ctx), "expected a completion to be posted")
}
