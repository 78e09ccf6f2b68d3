package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const changeForm = `<!DOCTYPE html>
<html><body>
<form method="post">
  <input type="hidden" name="csrfmiddlewaretoken" value="tok-1">
  <div class="review-context" data-review-text="Great stay" data-review-rating="4"></div>
  <div class="form-row">
    <label for="id_reply_text">Reply</label>
    <textarea id="id_reply_text" name="reply_text">draft</textarea>
  </div>
  <button type="button" id="ai-generate-reply-btn">Generate</button>
  <span id="ai-reply-spinner" style="display: none;">Generating...</span>
  <select id="id_tone"><option value="formal">Formal</option><option value="warm" selected>Warm</option></select>
</form>
</body></html>`

func parseForm(t *testing.T) *Document {
	t.Helper()

	doc, err := ParseString(changeForm)
	require.NoError(t, err)

	return doc
}

func mustQuery(t *testing.T, doc *Document, selector string) *Element {
	t.Helper()

	el, err := doc.Query(selector)
	require.NoError(t, err)
	require.NotNil(t, el, "expected %s to match", selector)

	return el
}

func TestQuery_MissingElementReturnsNil(t *testing.T) {
	doc := parseForm(t)

	el, err := doc.Query("#id_text")

	assert.NoError(t, err)
	assert.Nil(t, el)
}

func TestQuery_InvalidSelector(t *testing.T) {
	doc := parseForm(t)

	_, err := doc.Query("[[nope")

	assert.Error(t, err)
}

func TestQueryAll_DocumentOrder(t *testing.T) {
	doc := parseForm(t)

	options, err := doc.QueryAll("#id_tone option")
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, "formal", options[0].Value())
	assert.Equal(t, "warm", options[1].Value())
}

func TestValue_FormControls(t *testing.T) {
	doc := parseForm(t)

	assert.Equal(t, "draft", mustQuery(t, doc, "#id_reply_text").Value())
	assert.Equal(t, "tok-1", mustQuery(t, doc, "input[name=csrfmiddlewaretoken]").Value())
	assert.Equal(t, "warm", mustQuery(t, doc, "#id_tone").Value())
}

func TestSetValue_TextareaAndInput(t *testing.T) {
	doc := parseForm(t)

	field := mustQuery(t, doc, "#id_reply_text")
	field.SetValue("Thank you for staying with us!")
	assert.Equal(t, "Thank you for staying with us!", mustQuery(t, doc, "#id_reply_text").Value())

	token := mustQuery(t, doc, "input[name=csrfmiddlewaretoken]")
	token.SetValue("tok-2")
	assert.Equal(t, "tok-2", token.Value())

	field.SetValue("")
	assert.Equal(t, "", field.Value())
}

func TestSetValue_OptionKeepsLabel(t *testing.T) {
	doc := parseForm(t)

	option := mustQuery(t, doc, "#id_tone option[value=formal]")
	option.SetValue("formal-2")

	assert.Equal(t, "formal-2", option.Value())
	assert.Equal(t, "Formal", option.Text())
}

func TestValue_OptionWithoutValueAttribute(t *testing.T) {
	doc, err := ParseString(`<select><option>Casual</option></select>`)
	require.NoError(t, err)

	assert.Equal(t, "Casual", mustQuery(t, doc, "option").Value())
}

func TestEnabledAndVisible(t *testing.T) {
	doc := parseForm(t)

	button := mustQuery(t, doc, "#ai-generate-reply-btn")
	assert.True(t, button.Enabled())

	button.SetEnabled(false)
	assert.False(t, button.Enabled())
	assert.Contains(t, doc.String(), "disabled")

	button.SetEnabled(true)
	assert.True(t, button.Enabled())

	spinner := mustQuery(t, doc, "#ai-reply-spinner")
	assert.False(t, spinner.Visible(), "inline display:none hides the spinner")

	spinner.SetVisible(true)
	assert.True(t, spinner.Visible())
	_, hasStyle := spinner.Attr("style")
	assert.False(t, hasStyle, "empty style attribute is dropped")

	spinner.SetVisible(false)
	assert.False(t, spinner.Visible())
}

func TestClick_RunsListenersUnlessDisabled(t *testing.T) {
	doc := parseForm(t)
	button := mustQuery(t, doc, "#ai-generate-reply-btn")

	clicks := 0
	button.OnClick(func() { clicks++ })
	assert.Equal(t, 1, doc.ListenerCount())

	assert.True(t, button.Click())
	assert.Equal(t, 1, clicks)

	button.SetEnabled(false)
	assert.False(t, button.Click())
	assert.Equal(t, 1, clicks)

	// listeners are tracked per node, not per handle
	again := mustQuery(t, doc, "#ai-generate-reply-btn")
	again.SetEnabled(true)
	again.Click()
	assert.Equal(t, 2, clicks)
}

func TestInsertAfter_PlacesElementNextToLabel(t *testing.T) {
	doc := parseForm(t)
	label := mustQuery(t, doc, "label[for=id_reply_text]")

	button := doc.CreateElement("button", "Generate", html.Attribute{Key: "id", Val: "new-btn"})
	label.InsertAfter(button)

	found := mustQuery(t, doc, "label[for=id_reply_text] + button")
	assert.True(t, found.Same(button))
	assert.Equal(t, "form-row", attrOf(t, found.Parent(), "class"))

	rendered := doc.String()
	assert.True(t, strings.Index(rendered, "Reply</label>") < strings.Index(rendered, "new-btn"))
}

func TestFieldToken_ReadsAtCallTime(t *testing.T) {
	doc := parseForm(t)
	tokens := FieldToken{Doc: doc, Selector: "input[name=csrfmiddlewaretoken]"}

	tok, err := tokens.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	mustQuery(t, doc, "input[name=csrfmiddlewaretoken]").SetValue("tok-rotated")

	tok, err = tokens.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-rotated", tok)
}

func TestFieldToken_MissingField(t *testing.T) {
	doc, err := ParseString(`<html><body><p>no form</p></body></html>`)
	require.NoError(t, err)

	_, err = FieldToken{Doc: doc, Selector: "input[name=csrfmiddlewaretoken]"}.Token()

	assert.ErrorIs(t, err, ErrNoTokenField)
}

func attrOf(t *testing.T, el *Element, key string) string {
	t.Helper()
	require.NotNil(t, el)

	v, _ := el.Attr(key)

	return v
}
