package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	dimColor       = lipgloss.Color("#4B5563") // Dark gray

	// Title and header
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	navActiveStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Underline(true)

	// Page body. Sections start dimmed and switch to the full styles
	// once scrolled into view.
	sectionHeadingStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	dimmedHeadingStyle = lipgloss.NewStyle().
				Foreground(dimColor).
				Bold(true)

	bodyTextStyle = lipgloss.NewStyle().
			Foreground(textColor)

	dimmedTextStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Menu
	choiceStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Form
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	fieldLabelFocusStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor)

	buttonFocusStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true).
				Reverse(true)

	buttonBusyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	pendingStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// Status
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	bannerErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	bannerSuccessStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	gaugeTextStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
