package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/form"
)

var bannerNone = form.Banner{}

// showBanner displays an aggregate status banner and arms its TTL.
// Each showing bumps the sequence number so an expiry armed for an
// earlier banner can never clear this one.
func (m Model) showBanner(b form.Banner) (Model, tea.Cmd) {
	m.banner = b
	m.bannerSeq++
	return m, bannerExpireCmd(m.bannerSeq, m.cfg.BannerTTL)
}
