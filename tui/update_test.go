package tui

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northlight-site/form"
	"northlight-site/models"
	"northlight-site/site"
)

type stubSubmitter struct {
	err error
}

func (s *stubSubmitter) Submit(context.Context, form.Submission) error {
	return s.err
}

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()

	cfg := models.DefaultConfig
	page, err := site.Load("")
	require.NoError(t, err)

	ctrl := form.NewController(form.DefaultRules(), &stubSubmitter{}, log.New(io.Discard))
	m := NewModel(&cfg, page, ctrl)

	nm, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return nm.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFirstWindowSizeAppliesImmediately(t *testing.T) {
	m := newTestModel(t, 80, 24)

	assert.True(t, m.sized)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24-headerHeight-footerHeight, m.viewHeight)
	assert.NotEmpty(t, m.lines)
	assert.Len(t, m.sectionLines, len(m.page.Sections))
}

func TestResizeIsDebounced(t *testing.T) {
	m := newTestModel(t, 80, 24)

	nm, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = nm.(Model)
	require.NotNil(t, cmd)

	// Nothing applied until the debounce timer fires.
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 100, m.pendingWidth)

	nm, _ = m.Update(resizeAppliedMsg{seq: m.resizeSeq})
	m = nm.(Model)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestStaleResizeTimerIsIgnored(t *testing.T) {
	m := newTestModel(t, 80, 24)

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 24})
	m = nm.(Model)
	firstSeq := m.resizeSeq

	nm, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = nm.(Model)

	// The timer armed for the first resize fires after the second
	// arrived; it must not apply the outdated size.
	nm, _ = m.Update(resizeAppliedMsg{seq: firstSeq})
	m = nm.(Model)
	assert.Equal(t, 80, m.width)

	nm, _ = m.Update(resizeAppliedMsg{seq: m.resizeSeq})
	m = nm.(Model)
	assert.Equal(t, 120, m.width)
}

func TestBannerExpiryIsSequenceGuarded(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m, _ = m.showBanner(form.RejectionBanner())
	staleSeq := m.bannerSeq

	m, _ = m.showBanner(form.Banner{Kind: form.BannerSuccess, Text: "ok"})

	// The first banner's TTL elapses after it was replaced; the newer
	// banner must survive.
	nm, _ := m.Update(bannerExpiredMsg{seq: staleSeq})
	m = nm.(Model)
	assert.Equal(t, form.BannerSuccess, m.banner.Kind)

	nm, _ = m.Update(bannerExpiredMsg{seq: m.bannerSeq})
	m = nm.(Model)
	assert.Equal(t, form.BannerNone, m.banner.Kind)
}

func TestMenuConfinesInput(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = pressKey(t, m, keyRune('m'))
	require.Equal(t, StateMenu, m.state)

	// Page keys do nothing while the menu is open.
	before := m.offset
	m = pressKey(t, m, keyRune('n'))
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, before, m.offset)
	assert.False(t, m.scrolling)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateBrowse, m.state)
}

func TestMenuJumpStartsSmoothScroll(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = pressKey(t, m, keyRune('m'))
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, StateBrowse, m.state)
	assert.True(t, m.scrolling)

	idx := m.page.SectionIndex(m.page.Nav[1].Target)
	assert.Equal(t, m.clampOffset(float64(m.sectionLines[idx])), m.target)
}

func TestNumberKeyJumpsToSection(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = pressKey(t, m, keyRune('3'))
	assert.True(t, m.scrolling)
	assert.Equal(t, m.clampOffset(float64(m.sectionLines[2])), m.target)
}

func TestManualScrollCancelsAnimation(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = pressKey(t, m, keyRune('3'))
	require.True(t, m.scrolling)

	m = pressKey(t, m, keyRune('j'))
	assert.False(t, m.scrolling)
}

func TestScrollFrameSettlesOnTarget(t *testing.T) {
	m := newTestModel(t, 80, 24)

	var cmd tea.Cmd
	m, cmd = m.scrollTo(1)
	require.NotNil(t, cmd)

	for i := 0; i < 600 && m.scrolling; i++ {
		m, _ = m.handleScrollFrame()
	}

	assert.False(t, m.scrolling)
	assert.Equal(t, m.clampOffset(float64(m.sectionLines[1])), m.offset)
}

func TestRevealLatches(t *testing.T) {
	m := newTestModel(t, 80, 14)

	contact := m.page.SectionIndex(site.ContactSectionID)
	assert.True(t, m.revealed[0])
	require.False(t, m.revealed[contact])

	m = m.scrollBy(len(m.lines))
	assert.True(t, m.revealed[contact])

	// Scrolling back up never un-reveals.
	m = m.scrollBy(-len(m.lines))
	assert.True(t, m.revealed[contact])
}

func TestEnterOnContactSectionOpensForm(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = m.scrollBy(len(m.lines))
	contact := m.page.SectionIndex(site.ContactSectionID)
	require.Equal(t, contact, m.currentSection())

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateForm, m.state)
	assert.Equal(t, focusName, m.focus)
}

func TestBlurValidatesFieldOnFocusChange(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, _ = m.enterForm()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusEmail, m.focus)
	assert.Equal(t, "Name is required.", m.ctrl.FieldError(form.FieldName))
}

func TestTypingClearsFieldError(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, _ = m.enterForm()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotEmpty(t, m.ctrl.FieldError(form.FieldName))

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusName, m.focus)

	m = pressKey(t, m, keyRune('J'))
	assert.Empty(t, m.ctrl.FieldError(form.FieldName))
	assert.Equal(t, "J", m.ctrl.Value(form.FieldName))
}

func TestSubmitInvalidFormShowsRejectionBanner(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, _ = m.enterForm()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, form.RejectionBanner(), m.banner)
	assert.False(t, m.ctrl.Busy())
	for _, r := range m.ctrl.Rules() {
		assert.NotEmpty(t, m.ctrl.FieldError(r.Name), "field %s", r.Name)
	}
}

func fillForm(m Model) Model {
	m.ctrl.SetValue(form.FieldName, "Alice")
	m.ctrl.SetValue(form.FieldEmail, "alice@example.com")
	m.ctrl.SetValue(form.FieldMessage, "A long enough message about a project.")
	m.nameInput.SetValue("Alice")
	m.emailInput.SetValue("alice@example.com")
	m.messageInput.SetValue("A long enough message about a project.")
	return m
}

func TestSubmitSuccessClearsFormOnce(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, _ = m.enterForm()
	m = fillForm(m)

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = nm.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.ctrl.Busy())

	// A second submit while busy is a no-op.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.ctrl.Busy())

	nm, _ = m.Update(submitResultMsg{err: nil})
	m = nm.(Model)

	assert.False(t, m.ctrl.Busy())
	assert.Equal(t, form.BannerSuccess, m.banner.Kind)
	assert.Empty(t, m.ctrl.Value(form.FieldName))
	assert.Empty(t, m.nameInput.Value())
	assert.Empty(t, m.messageInput.Value())
}

func TestSubmitFailureKeepsFieldValues(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, _ = m.enterForm()
	m = fillForm(m)

	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = nm.(Model)
	require.True(t, m.ctrl.Busy())

	nm, _ = m.Update(submitResultMsg{err: assert.AnError})
	m = nm.(Model)

	assert.False(t, m.ctrl.Busy())
	assert.Equal(t, form.BannerError, m.banner.Kind)
	assert.NotContains(t, m.banner.Text, assert.AnError.Error())
	assert.Equal(t, "Alice", m.ctrl.Value(form.FieldName))
	assert.Equal(t, "Alice", m.nameInput.Value())
}

func TestViewRendersWithoutPanicInEveryState(t *testing.T) {
	m := newTestModel(t, 80, 24)
	assert.NotEmpty(t, m.View())

	menu := pressKey(t, m, keyRune('m'))
	assert.NotEmpty(t, menu.View())

	formModel, _ := m.enterForm()
	assert.NotEmpty(t, formModel.View())
}
