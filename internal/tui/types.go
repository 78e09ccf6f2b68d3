package tui

import (
	"codeberg.org/branchadmin/server/internal/assist"
	"codeberg.org/branchadmin/server/internal/page"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/glamour"
)

// which admin page the session edits
type Mode int

const (
	ModeReply Mode = iota
	ModeMailing
)

func (m Mode) String() string {
	switch m {
	case ModeReply:
		return "reply"
	case ModeMailing:
		return "mailing"
	default:
		return "unknown"
	}
}

// main TUI model: one mounted controller and the page elements it drives
type Model struct {
	mode   Mode
	title  string
	width  int
	height int

	doc       *page.Document
	field     *page.Element
	trigger   *page.Element
	indicator *page.Element
	errors    *page.Element // reply only

	state func() assist.State
	loop  *programLoop

	editor   textarea.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	preview  bool
	notices  []string
	status   string
	quitting bool
}

// runs a controller task on the UI goroutine
type taskMsg struct {
	task func()
}
