package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"northlight-site/form"
)

// View implements tea.Model
func (m Model) View() string {
	if !m.sized {
		return ""
	}

	var body string
	switch m.state {
	case StateMenu:
		body = m.viewMenu()
	case StateForm:
		body = m.viewForm()
	default:
		body = m.viewPage()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewFooter())
}

// viewHeader renders the fixed top bar: title, nav labels with the
// current section highlighted, and the tagline.
func (m Model) viewHeader() string {
	var nav strings.Builder
	current := m.currentSection()
	for i, item := range m.page.Nav {
		if i > 0 {
			nav.WriteString("  ")
		}
		if m.page.SectionIndex(item.Target) == current {
			nav.WriteString(navActiveStyle.Render(item.Label))
		} else {
			nav.WriteString(navStyle.Render(item.Label))
		}
	}

	title := titleStyle.Render(m.page.Title)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(nav.String()) - marginH*2
	if gap < 1 {
		gap = 1
	}

	pad := strings.Repeat(" ", marginH)
	top := pad + title + strings.Repeat(" ", gap) + nav.String()
	tagline := pad + taglineStyle.Render(m.page.Tagline)
	rule := pad + ruleStyle.Render(strings.Repeat("─", m.contentWidth()))

	return top + "\n" + tagline + "\n" + rule
}

// viewFooter renders the scroll gauge and the status line. The banner
// takes the status line over until its TTL clears it.
func (m Model) viewFooter() string {
	pad := strings.Repeat(" ", marginH)

	gauge := pad + m.scrollGauge.ViewAs(m.scrollPercent()) + " " + gaugeTextStyle.Render(m.sectionProgressLabel())

	status := pad
	switch m.banner.Kind {
	case form.BannerError:
		status += bannerErrorStyle.Render(m.banner.Text)
	case form.BannerSuccess:
		status += bannerSuccessStyle.Render(m.banner.Text)
	default:
		status += helpStyle.Render(m.statusHelp())
	}

	return gauge + "\n" + status
}

func (m Model) statusHelp() string {
	switch m.state {
	case StateMenu:
		return "Enter to jump, Esc to close"
	case StateForm:
		return "Tab to move, Ctrl+S to send, Esc to go back"
	default:
		return "↑/↓ scroll, n/p sections, m menu, enter open contact, q quit"
	}
}
