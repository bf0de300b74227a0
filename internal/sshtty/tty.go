// Package sshtty lets tcell draw to, and read keys from, an SSH session.
package sshtty

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Session is the part of an SSH session the tty needs.
type Session interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Tty implements tcell.Tty on top of an SSH session. Every connection gets
// its own Tty and screen.
type Tty struct {
	session Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// New wraps an SSH session. window is the size from the pty request and
// winCh delivers later window changes.
func New(s Session, window gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		window:  window,
		winCh:   winCh,
	}
}

// Read reads keyboard input from the session.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the session.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the session channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start is a no-op; the channel is already open.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the server handler owns the channel.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op; writes go straight to the channel.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run after every window change. The first
// call starts draining the window-change channel for the life of the
// session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if !start {
		return
	}
	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			fn := t.onResize
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}()
}
