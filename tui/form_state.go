package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/form"
)

// focusField maps a focus position to its field name. The submit
// button has no field.
func focusField(f formFocus) string {
	switch f {
	case focusName:
		return form.FieldName
	case focusEmail:
		return form.FieldEmail
	case focusMessage:
		return form.FieldMessage
	}
	return ""
}

// enterForm moves focus into the contact form.
func (m Model) enterForm() (Model, tea.Cmd) {
	m.state = StateForm
	m.focus = focusName
	return m.applyFocus()
}

// leaveForm returns focus to the page.
func (m Model) leaveForm() Model {
	m.state = StateBrowse
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.messageInput.Blur()
	return m
}

// applyFocus focuses the widget at m.focus and blurs the rest.
func (m Model) applyFocus() (Model, tea.Cmd) {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.messageInput.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		cmd = m.nameInput.Focus()
	case focusEmail:
		cmd = m.emailInput.Focus()
	case focusMessage:
		cmd = m.messageInput.Focus()
	}
	return m, cmd
}

// Form state handlers
func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		return m.leaveForm(), nil
	case key.Matches(msg, keys.FocusPrev):
		m = m.blurCurrentField()
		m.focus = (m.focus - 1 + focusCount) % focusCount
		return m.applyFocus()
	case key.Matches(msg, keys.FocusNext):
		m = m.blurCurrentField()
		m.focus = (m.focus + 1) % focusCount
		return m.applyFocus()
	case key.Matches(msg, keys.Submit):
		return m.beginSubmit()
	case msg.String() == "enter" && m.focus == focusSubmit:
		return m.beginSubmit()
	}

	// Everything else is typing for the focused widget.
	return m.updateFormComponents(msg)
}

// blurCurrentField validates the field focus is leaving.
func (m Model) blurCurrentField() Model {
	if name := focusField(m.focus); name != "" {
		m.ctrl.ValidateField(name)
	}
	return m
}

// updateFormComponents forwards a message to the focused widget and
// mirrors its value into the controller, which clears that field's
// recorded error whenever the value changes.
func (m Model) updateFormComponents(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.ctrl.SetValue(form.FieldName, m.nameInput.Value())
	case focusEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
		m.ctrl.SetValue(form.FieldEmail, m.emailInput.Value())
	case focusMessage:
		m.messageInput, cmd = m.messageInput.Update(msg)
		m.ctrl.SetValue(form.FieldMessage, m.messageInput.Value())
	}
	return m, cmd
}

// beginSubmit runs the controller's submit gate. Invalid fields show
// the rejection banner and nothing is sent; a valid form starts the
// delivery command and the pending spinner.
func (m Model) beginSubmit() (Model, tea.Cmd) {
	sub, err := m.ctrl.Begin()
	switch {
	case errors.Is(err, form.ErrBusy):
		// The control is disabled while busy; a second request is a
		// no-op.
		return m, nil
	case errors.Is(err, form.ErrInvalid):
		return m.showBanner(form.RejectionBanner())
	case err != nil:
		return m, nil
	}

	return m, tea.Batch(m.spin.Tick, deliverCmd(m.ctrl, sub))
}

// handleSubmitResult settles the attempt: the controller clears its
// busy flag on every path, and on success the widgets mirror the
// cleared field values.
func (m Model) handleSubmitResult(msg submitResultMsg) (Model, tea.Cmd) {
	banner := m.ctrl.Finish(msg.err)
	if msg.err == nil {
		m.nameInput.SetValue("")
		m.emailInput.SetValue("")
		m.messageInput.SetValue("")
	}
	return m.showBanner(banner)
}

func (m Model) viewForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.page.Contact.Heading) + "\n")
	s.WriteString(helpStyle.Render(m.page.Contact.Intro) + "\n\n")

	s.WriteString(m.renderField("Name", m.nameInput.View(), form.FieldName, m.focus == focusName))
	s.WriteString(m.renderField("Email", m.emailInput.View(), form.FieldEmail, m.focus == focusEmail))
	s.WriteString(m.renderField("Message", m.messageInput.View(), form.FieldMessage, m.focus == focusMessage))

	s.WriteString("\n" + m.renderSubmitButton() + "\n\n")
	s.WriteString(helpStyle.Render("Tab to move between fields, Ctrl+S to send, Esc to go back"))

	rows := strings.Split(s.String(), "\n")
	for i, r := range rows {
		rows[i] = strings.Repeat(" ", marginH) + r
	}
	return fitLines(rows, m.viewHeight)
}

// renderField draws a label, the widget, and the field's inline error
// slot beneath it.
func (m Model) renderField(label, widget, name string, focused bool) string {
	var s strings.Builder

	if focused {
		s.WriteString(fieldLabelFocusStyle.Render(label) + "\n")
	} else {
		s.WriteString(fieldLabelStyle.Render(label) + "\n")
	}
	s.WriteString(widget + "\n")

	if msg := m.ctrl.FieldError(name); msg != "" {
		s.WriteString(errorStyle.Render("⚠ "+msg) + "\n")
	}
	s.WriteString("\n")

	return s.String()
}

// renderSubmitButton reflects the busy state: disabled look, pending
// label, and spinner while a submission is in flight.
func (m Model) renderSubmitButton() string {
	if m.ctrl.Busy() {
		return buttonBusyStyle.Render("[ "+m.page.Contact.PendingLabel+" ]") + " " + m.spin.View()
	}
	if m.focus == focusSubmit {
		return buttonFocusStyle.Render("[ " + m.page.Contact.SubmitLabel + " ]")
	}
	return buttonStyle.Render("[ " + m.page.Contact.SubmitLabel + " ]")
}
