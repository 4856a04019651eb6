package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const scrollFPS = 60

// scrollFrameCmd schedules the next smooth-scroll frame.
func scrollFrameCmd() tea.Cmd {
	return tea.Tick(time.Second/scrollFPS, func(t time.Time) tea.Msg {
		return scrollFrameMsg(t)
	})
}

// bannerExpireCmd arms the banner's TTL timer for one showing.
func bannerExpireCmd(seq int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

// resizeDebounceCmd waits out the debounce window after a size change.
func resizeDebounceCmd(seq int, wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return resizeAppliedMsg{seq: seq}
	})
}
