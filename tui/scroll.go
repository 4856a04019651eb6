package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/site"
)

const (
	headerHeight = 3
	footerHeight = 2
	marginH      = 2

	// A section counts as "current" while the offset sits within this
	// many lines below its anchor.
	anchorSlack = 2
)

// applySize commits a window size: recomputes the view height, rewraps
// the page, resizes the form widgets, and re-clamps the scroll offset.
func (m Model) applySize(width, height int) Model {
	m.width = width
	m.height = height

	m.viewHeight = height - headerHeight - footerHeight
	if m.viewHeight < 5 {
		m.viewHeight = 5
	}

	fieldWidth := m.contentWidth()
	if fieldWidth > 60 {
		fieldWidth = 60
	}
	m.nameInput.Width = fieldWidth
	m.emailInput.Width = fieldWidth
	m.messageInput.SetWidth(fieldWidth)

	m.scrollGauge.Width = m.contentWidth() - 8
	if m.scrollGauge.Width < 10 {
		m.scrollGauge.Width = 10
	}

	m = m.relayout()
	m.offset = m.clampOffset(m.offset)
	m.target = m.clampOffset(m.target)
	return m.updateReveals()
}

func (m Model) contentWidth() int {
	w := m.width - marginH*2
	if w < 20 {
		w = 20
	}
	return w
}

// relayout renders every section into page lines at the current width
// and records each section's anchor line.
func (m Model) relayout() Model {
	width := m.contentWidth()

	var lines []pageLine
	m.sectionLines = make([]int, len(m.page.Sections))

	for i, sec := range m.page.Sections {
		m.sectionLines[i] = len(lines)
		lines = append(lines, pageLine{text: sec.Heading, section: i, heading: true})
		lines = append(lines, pageLine{section: i})

		if sec.ID == site.ContactSectionID {
			for _, l := range wrapText(m.page.Contact.Intro, width) {
				lines = append(lines, pageLine{text: l, section: i})
			}
			lines = append(lines, pageLine{section: i})
			lines = append(lines, pageLine{text: "Press enter to open the contact form.", section: i})
		}

		for _, para := range sec.Body {
			for _, l := range wrapText(para, width) {
				lines = append(lines, pageLine{text: l, section: i})
			}
			lines = append(lines, pageLine{section: i})
		}
		lines = append(lines, pageLine{section: i})
	}

	m.lines = lines
	return m
}

func (m Model) maxOffset() float64 {
	max := len(m.lines) - m.viewHeight
	if max < 0 {
		max = 0
	}
	return float64(max)
}

func (m Model) clampOffset(off float64) float64 {
	if off < 0 {
		return 0
	}
	if max := m.maxOffset(); off > max {
		return max
	}
	return off
}

// updateReveals latches any section whose heading has entered the
// visible window. Revealed state never un-latches.
func (m Model) updateReveals() Model {
	top := int(m.offset)
	bottom := top + m.viewHeight
	for i, anchor := range m.sectionLines {
		if anchor < bottom && anchor >= 0 {
			m.revealed[i] = true
		}
	}
	return m
}

// currentSection returns the index of the section the viewport top is
// resting in. At the bottom of the page the last section counts as
// current even when its anchor can't reach the top of the window.
func (m Model) currentSection() int {
	if max := m.maxOffset(); max > 0 && m.offset >= max-0.5 {
		return len(m.sectionLines) - 1
	}

	pos := int(m.offset) + anchorSlack
	current := 0
	for i, anchor := range m.sectionLines {
		if anchor <= pos {
			current = i
		}
	}
	return current
}

// scrollTo starts a smooth scroll toward a section's anchor line.
func (m Model) scrollTo(section int) (Model, tea.Cmd) {
	if section < 0 || section >= len(m.sectionLines) {
		return m, nil
	}
	m.target = m.clampOffset(float64(m.sectionLines[section]))
	if m.scrolling {
		// Frame loop already running; it picks up the new target.
		return m, nil
	}
	m.scrolling = true
	return m, scrollFrameCmd()
}

// scrollBy moves the viewport directly, cancelling any running
// animation.
func (m Model) scrollBy(delta int) Model {
	m.scrolling = false
	m.velocity = 0
	m.offset = m.clampOffset(m.offset + float64(delta))
	return m.updateReveals()
}

// handleScrollFrame advances the spring one frame and stops it once
// settled on the target.
func (m Model) handleScrollFrame() (Model, tea.Cmd) {
	if !m.scrolling {
		return m, nil
	}

	m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, m.target)
	m.offset = m.clampOffset(m.offset)
	m = m.updateReveals()

	if math.Abs(m.offset-m.target) < 0.5 && math.Abs(m.velocity) < 0.1 {
		m.offset = m.target
		m.velocity = 0
		m.scrolling = false
		return m, nil
	}
	return m, scrollFrameCmd()
}

// scrollPercent reports how far down the page the viewport sits.
func (m Model) scrollPercent() float64 {
	max := m.maxOffset()
	if max == 0 {
		return 1
	}
	return m.offset / max
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() > 0 && currentLine.Len()+len(word)+1 > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// sectionProgressLabel is the "2/4" marker next to the scroll gauge.
func (m Model) sectionProgressLabel() string {
	return fmt.Sprintf("%d/%d", m.currentSection()+1, len(m.page.Sections))
}
