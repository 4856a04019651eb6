package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/site"
)

// Menu state handlers. While the menu is open every key lands here, so
// focus can't wander back to the page until the menu closes.
func (m Model) updateMenu(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Menu):
		m.state = StateBrowse
		return m, nil
	case key.Matches(msg, keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.menuCursor < len(m.page.Nav)-1 {
			m.menuCursor++
		}
		return m, nil
	case key.Matches(msg, keys.Select):
		if m.menuCursor >= len(m.page.Nav) {
			return m, nil
		}
		target := m.page.Nav[m.menuCursor].Target
		m.state = StateBrowse
		if target == site.ContactSectionID {
			// Jump to the section and open the form directly.
			var scrollCmd tea.Cmd
			m, scrollCmd = m.scrollTo(m.page.SectionIndex(target))
			var formCmd tea.Cmd
			m, formCmd = m.enterForm()
			return m, tea.Batch(scrollCmd, formCmd)
		}
		return m.scrollTo(m.page.SectionIndex(target))
	}

	return m, nil
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Navigate") + "\n\n")

	current := m.currentSection()
	for i, item := range m.page.Nav {
		label := item.Label
		if m.page.SectionIndex(item.Target) == current {
			label += " •"
		}
		if m.menuCursor == i {
			s.WriteString(selectedStyle.Render("> "+label) + "\n")
		} else {
			s.WriteString(choiceStyle.Render("  "+label) + "\n")
		}
	}

	s.WriteString("\n" + helpStyle.Render("Use ↑/↓ to navigate, Enter to jump, Esc to close"))

	rows := strings.Split(s.String(), "\n")
	for i, r := range rows {
		rows[i] = strings.Repeat(" ", marginH) + r
	}
	return fitLines(rows, m.viewHeight)
}
