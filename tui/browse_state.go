package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/site"
)

// Browse state handlers
func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Menu):
		m.state = StateMenu
		m.menuCursor = m.currentSection()
		return m, nil
	case key.Matches(msg, keys.Up):
		return m.scrollBy(-1), nil
	case key.Matches(msg, keys.Down):
		return m.scrollBy(1), nil
	case key.Matches(msg, keys.PageUp):
		return m.scrollBy(-m.viewHeight / 2), nil
	case key.Matches(msg, keys.PageDown):
		return m.scrollBy(m.viewHeight / 2), nil
	case key.Matches(msg, keys.Top):
		return m.scrollTo(0)
	case key.Matches(msg, keys.Bottom):
		return m.scrollTo(len(m.page.Sections) - 1)
	case key.Matches(msg, keys.Next):
		return m.scrollTo(m.currentSection() + 1)
	case key.Matches(msg, keys.Prev):
		return m.scrollTo(m.currentSection() - 1)
	case key.Matches(msg, keys.Select):
		if m.page.Sections[m.currentSection()].ID == site.ContactSectionID {
			return m.enterForm()
		}
		return m, nil
	}

	// Number keys jump straight to a section.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return m.scrollTo(int(s[0] - '1'))
	}

	return m, nil
}

func (m Model) viewPage() string {
	top := int(m.offset)
	if max := len(m.lines) - m.viewHeight; top > max {
		top = max
	}
	if top < 0 {
		top = 0
	}

	rows := make([]string, 0, m.viewHeight)
	for i := top; i < top+m.viewHeight && i < len(m.lines); i++ {
		line := m.lines[i]
		styled := line.text
		switch {
		case line.heading && m.revealed[line.section]:
			styled = sectionHeadingStyle.Render(line.text)
		case line.heading:
			styled = dimmedHeadingStyle.Render(line.text)
		case m.revealed[line.section]:
			styled = bodyTextStyle.Render(line.text)
		default:
			styled = dimmedTextStyle.Render(line.text)
		}
		rows = append(rows, strings.Repeat(" ", marginH)+styled)
	}

	return fitLines(rows, m.viewHeight)
}

// fitLines pads or truncates rows to exactly height lines so the
// header and footer never drift.
func fitLines(rows []string, height int) string {
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}
