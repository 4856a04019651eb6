package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case resizeAppliedMsg:
		return m.handleResizeApplied(msg)
	case scrollFrameMsg:
		return m.handleScrollFrame()
	case bannerExpiredMsg:
		return m.handleBannerExpired(msg)
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case spinner.TickMsg:
		if m.ctrl.Busy() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	}

	// Remaining messages (cursor blinks and the like) belong to the
	// focused form widget.
	if m.state == StateForm {
		return m.updateFormComponents(msg)
	}
	return m, nil
}

// handleWindowSize stages a resize. The first size is applied
// immediately so the initial paint isn't blank; later changes wait out
// the debounce window so a drag-resize doesn't rewrap the page on
// every intermediate size.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	if !m.sized {
		m.sized = true
		return m.applySize(msg.Width, msg.Height), nil
	}

	m.pendingWidth = msg.Width
	m.pendingHeight = msg.Height
	m.resizeSeq++
	return m, resizeDebounceCmd(m.resizeSeq, m.cfg.ResizeDebounce)
}

// handleResizeApplied commits the staged size once no further resize
// arrived during the debounce window. Stale timers are ignored.
func (m Model) handleResizeApplied(msg resizeAppliedMsg) (Model, tea.Cmd) {
	if msg.seq != m.resizeSeq {
		return m, nil
	}
	return m.applySize(m.pendingWidth, m.pendingHeight), nil
}

// handleBannerExpired clears the banner when its TTL elapses, unless a
// newer banner has replaced it since the timer was armed.
func (m Model) handleBannerExpired(msg bannerExpiredMsg) (Model, tea.Cmd) {
	if msg.seq != m.bannerSeq {
		return m, nil
	}
	m.banner = bannerNone
	return m, nil
}

// handleKeyMessage handles keyboard input based on current state
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.state {
	case StateMenu:
		return m.updateMenu(msg)
	case StateForm:
		return m.updateForm(msg)
	default:
		return m.updateBrowse(msg)
	}
}

// handleMouseMessage handles mouse input
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.state != StateBrowse {
		return m, nil
	}

	switch msg.Type {
	case tea.MouseWheelUp:
		return m.scrollBy(-2), nil
	case tea.MouseWheelDown:
		return m.scrollBy(2), nil
	}
	return m, nil
}
