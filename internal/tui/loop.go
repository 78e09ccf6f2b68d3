package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// implements eventloop.Poster on top of a running tea.Program; tasks arrive as
// taskMsg and run inside Update
type programLoop struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (l *programLoop) attach(send func(tea.Msg)) {
	l.mu.Lock()
	l.send = send
	l.mu.Unlock()
}

// must not be called from Update; tea.Program.Send blocks until the message is read
func (l *programLoop) Post(task func()) {
	l.mu.Lock()
	send := l.send
	l.mu.Unlock()

	if send == nil {
		return
	}

	send(taskMsg{task: task})
}
