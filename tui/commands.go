package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/form"
)

// submitResultMsg reports the outcome of a submission attempt.
type submitResultMsg struct {
	err error
}

// bannerExpiredMsg fires when a banner's TTL elapses. seq identifies
// which showing armed the timer.
type bannerExpiredMsg struct {
	seq int
}

// resizeAppliedMsg fires when the resize debounce window closes.
type resizeAppliedMsg struct {
	seq int
}

// scrollFrameMsg drives one frame of the smooth-scroll animation.
type scrollFrameMsg time.Time

// deliverCmd runs the submitter off the UI loop and reports back. The
// controller tolerates arbitrary latency here; the UI stays live while
// the command is pending.
func deliverCmd(ctrl *form.Controller, sub form.Submission) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{err: ctrl.Deliver(context.Background(), sub)}
	}
}
