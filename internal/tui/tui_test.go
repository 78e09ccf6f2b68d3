package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/branchadmin/server/internal/assist"
	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/generation"
	"codeberg.org/branchadmin/server/internal/page"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const replyPage = `<html><body><form>
<input type="hidden" name="csrfmiddlewaretoken" value="tok">
<div class="review-context" data-review-text="Lovely terrace" data-review-rating="5"></div>
<textarea id="id_reply_text"></textarea>
<button type="button" id="ai-generate-reply-btn">Generate reply</button>
</form></body></html>`

const mailingPage = `<html><body><form>
<input type="hidden" name="csrfmiddlewaretoken" value="tok">
<label for="id_text">Text</label>
<textarea id="id_text">%s</textarea>
</form></body></html>`

type generatorFunc func(ctx context.Context, req generation.Request, resultKey string) generation.Result

func (f generatorFunc) Generate(ctx context.Context, req generation.Request, resultKey string) generation.Result {
	return f(ctx, req, resultKey)
}

func newTestModel(t *testing.T, mode Mode, html string, gen assist.Generator) (*Model, chan tea.Msg) {
	t.Helper()

	doc, err := page.ParseString(html)
	require.NoError(t, err)

	m, err := NewModel(Options{
		Mode:      mode,
		Document:  doc,
		Selectors: config.DefaultSelectors(),
		Endpoint:  "http://admin.test/branch/generate/",
		Generator: gen,
	})
	require.NoError(t, err)

	msgs := make(chan tea.Msg, 4)
	m.loop.attach(func(msg tea.Msg) { msgs <- msg })

	return m, msgs
}

func nextTask(t *testing.T, msgs chan tea.Msg) tea.Msg {
	t.Helper()

	select {
	case msg := <-msgs:
		require.IsType(t, taskMsg{}, msg)
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for controller task")
		return nil
	}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestReplySession_GeneratesIntoEditor(t *testing.T) {
	var got generation.Request

	m, msgs := newTestModel(t, ModeReply, replyPage, generatorFunc(func(_ context.Context, req generation.Request, resultKey string) generation.Result {
		got = req
		assert.Equal(t, "reply", resultKey)
		return generation.Success("Thank you, see you on the terrace!")
	}))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("thx")})
	assert.Equal(t, "thx", m.Value())

	m.Update(key(tea.KeyCtrlG))
	assert.True(t, m.busy())
	assert.Contains(t, m.View(), "Generating...")

	m.Update(nextTask(t, msgs))

	assert.False(t, m.busy())
	assert.Equal(t, "Thank you, see you on the terrace!", m.Value())
	assert.Equal(t, m.Value(), m.editor.Value())
	assert.Equal(t, "tok", got.AuthToken)
	assert.Equal(t, "thx", got.Payload["draft_text"])
	assert.Equal(t, "Lovely terrace", got.Payload["review_text"])
}

func TestReplySession_ShowsErrorText(t *testing.T) {
	m, msgs := newTestModel(t, ModeReply, replyPage, generatorFunc(func(context.Context, generation.Request, string) generation.Result {
		return generation.Failure("Company context not found")
	}))

	m.Update(key(tea.KeyCtrlG))
	m.Update(nextTask(t, msgs))

	assert.Empty(t, m.Value())
	assert.Contains(t, m.View(), "Company context not found")
}

func TestMailingSession_EmptyTopicNotice(t *testing.T) {
	m, _ := newTestModel(t, ModeMailing, strings.Replace(mailingPage, "%s", "", 1), generatorFunc(func(context.Context, generation.Request, string) generation.Result {
		t.Error("no request expected for an empty topic")
		return generation.Result{}
	}))

	m.Update(key(tea.KeyCtrlG))

	require.Len(t, m.notices, 1)
	assert.Equal(t, assist.TopicRequiredMessage, m.notices[0])
	assert.Contains(t, m.View(), assist.TopicRequiredMessage)

	// modal swallows editing keys
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, m.Value())

	m.Update(key(tea.KeyEnter))
	assert.Empty(t, m.notices)
	assert.False(t, m.busy())
}

func TestMailingSession_FailureNotice(t *testing.T) {
	m, msgs := newTestModel(t, ModeMailing, strings.Replace(mailingPage, "%s", "spring sale", 1), generatorFunc(func(_ context.Context, req generation.Request, resultKey string) generation.Result {
		assert.Equal(t, "text", resultKey)
		assert.Equal(t, "spring sale", req.Payload["topic"])
		return generation.Failure("Quota exceeded")
	}))

	m.Update(key(tea.KeyCtrlG))
	assert.True(t, m.busy())

	m.Update(nextTask(t, msgs))

	require.Len(t, m.notices, 1)
	assert.Equal(t, "Error: Quota exceeded", m.notices[0])
	assert.Equal(t, "spring sale", m.Value())
	assert.False(t, m.busy())
}

func TestPreviewToggle(t *testing.T) {
	m, _ := newTestModel(t, ModeMailing, strings.Replace(mailingPage, "%s", "Spring **menu** is here", 1), generatorFunc(func(context.Context, generation.Request, string) generation.Result {
		return generation.Success("")
	}))

	m.Update(key(tea.KeyCtrlP))
	assert.True(t, m.preview)
	assert.Contains(t, m.View(), "menu")

	// editing is paused while previewing
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	assert.Equal(t, "Spring **menu** is here", m.Value())

	m.Update(key(tea.KeyCtrlP))
	assert.False(t, m.preview)
}

func TestNewModel_MissingField(t *testing.T) {
	doc, err := page.ParseString(`<html><body><p>nothing here</p></body></html>`)
	require.NoError(t, err)

	_, err = NewModel(Options{Mode: ModeMailing, Document: doc, Selectors: config.DefaultSelectors()})
	assert.ErrorIs(t, err, assist.ErrNotOnPage)

	_, err = NewModel(Options{Mode: ModeReply, Document: doc, Selectors: config.DefaultSelectors()})
	assert.ErrorIs(t, err, assist.ErrNotOnPage)
}

func TestPageClient_LoadKeepsSession(t *testing.T) {
	var sawCookie bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/mailings/new":
			http.SetCookie(w, &http.Cookie{Name: "branchadmin_session", Value: "s1", Path: "/"})
			_, _ = w.Write([]byte(strings.Replace(mailingPage, "%s", "", 1)))
		case "/branch/generate-mailing/":
			c, err := r.Cookie("branchadmin_session")
			sawCookie = err == nil && c.Value == "s1"
			_, _ = w.Write([]byte(`{"text":"ok"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewPageClient(server.URL + "/")
	require.NoError(t, err)

	doc, err := client.Load(context.Background(), "admin/mailings/new")
	require.NoError(t, err)

	field, err := doc.Query("#id_text")
	require.NoError(t, err)
	require.NotNil(t, field)

	gen := generation.NewClient(generation.WithHTTPClient(client.HTTPClient()))
	result := gen.Generate(context.Background(), generation.Request{
		Endpoint: client.URL("/branch/generate-mailing/"),
		Payload:  map[string]any{"topic": "x"},
	}, "text")

	assert.True(t, result.OK())
	assert.True(t, sawCookie)

	_, err = client.Load(context.Background(), "/missing")
	assert.Error(t, err)
}

func TestPageClient_URL(t *testing.T) {
	client, err := NewPageClient("http://admin.test/")
	require.NoError(t, err)

	assert.Equal(t, "http://admin.test/admin/reviews/reply", client.URL("admin/reviews/reply"))
	assert.Equal(t, "http://admin.test/branch/generate-reply/", client.URL("/branch/generate-reply/"))
	assert.Equal(t, "https://other.test/x", client.URL("https://other.test/x"))
}
