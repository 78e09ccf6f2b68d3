package assist

import (
	"testing"

	"codeberg.org/branchadmin/server/internal/generation"
	"codeberg.org/branchadmin/server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToggle struct {
	enabled bool
	visible bool
}

func (f *fakeToggle) Enabled() bool     { return f.enabled }
func (f *fakeToggle) SetEnabled(e bool) { f.enabled = e }
func (f *fakeToggle) Visible() bool     { return f.visible }
func (f *fakeToggle) SetVisible(v bool) { f.visible = v }

func TestLifecycle_BeginAndFinish(t *testing.T) {
	trigger := &fakeToggle{enabled: true}
	indicator := &fakeToggle{}
	l := newLifecycle(trigger, indicator, false, logger.Default())

	token, err := l.begin()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), token)
	assert.Equal(t, Requesting, l.state)
	assert.False(t, trigger.enabled)
	assert.True(t, indicator.visible)

	_, err = l.begin()
	assert.ErrorIs(t, err, ErrBusy)

	l.finish()
	assert.Equal(t, Idle, l.state)
	assert.True(t, trigger.enabled)
	assert.False(t, indicator.visible)

	token, err = l.begin()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), token)
}

func TestLifecycle_AcceptsEveryCompletionByDefault(t *testing.T) {
	l := newLifecycle(&fakeToggle{}, &fakeToggle{}, false, logger.Default())
	l.active = 3

	assert.True(t, l.accepts(3))
	assert.True(t, l.accepts(1), "late results still win")
}

func TestLifecycle_RejectStale(t *testing.T) {
	l := newLifecycle(&fakeToggle{}, &fakeToggle{}, true, logger.Default())
	l.active = 3

	assert.True(t, l.accepts(3))
	assert.False(t, l.accepts(2))
}

// two requests in flight at once, as a superseding activation would leave them
func supersede(t *testing.T, l *lifecycle) (older, newer uint64) {
	t.Helper()

	older, err := l.begin()
	require.NoError(t, err)

	l.state = Idle
	newer, err = l.begin()
	require.NoError(t, err)

	return older, newer
}

func TestLifecycle_StaleCompletionKeepsAffordances(t *testing.T) {
	trigger := &fakeToggle{enabled: true}
	indicator := &fakeToggle{}
	l := newLifecycle(trigger, indicator, true, logger.Default())
	older, newer := supersede(t, l)

	var applied []string
	apply := func(r generation.Result) { applied = append(applied, r.Text()) }

	l.complete(newer, generation.Success("new"), apply)
	assert.Equal(t, Idle, l.state)
	assert.True(t, trigger.enabled)
	assert.False(t, indicator.visible)

	l.complete(older, generation.Success("old"), apply)
	assert.Equal(t, []string{"new"}, applied)
	assert.Equal(t, Idle, l.state)
	assert.True(t, trigger.enabled)
	assert.False(t, indicator.visible)
}

func TestLifecycle_OlderCompletionDoesNotEndActiveRequest(t *testing.T) {
	trigger := &fakeToggle{enabled: true}
	indicator := &fakeToggle{}
	l := newLifecycle(trigger, indicator, false, logger.Default())
	older, newer := supersede(t, l)

	var applied []string
	apply := func(r generation.Result) { applied = append(applied, r.Text()) }

	l.complete(older, generation.Success("old"), apply)
	assert.Equal(t, []string{"old"}, applied, "completions are accepted by default")
	assert.Equal(t, Requesting, l.state)
	assert.False(t, trigger.enabled)
	assert.True(t, indicator.visible)

	l.complete(newer, generation.Success("new"), apply)
	assert.Equal(t, []string{"old", "new"}, applied)
	assert.Equal(t, Idle, l.state)
	assert.True(t, trigger.enabled)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "requesting", Requesting.String())
	assert.Equal(t, "state(7)", State(7).String())
}
