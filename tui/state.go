package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"northlight-site/form"
	"northlight-site/models"
	"northlight-site/site"
)

// AppState represents the current state of the application
type AppState int

const (
	// StateBrowse is the default state: scrolling the page.
	StateBrowse AppState = iota
	// StateMenu has the navigation menu open; input is confined to it.
	StateMenu
	// StateForm has focus inside the contact form.
	StateForm
)

// formFocus identifies the focused control inside the contact form.
type formFocus int

const (
	focusName formFocus = iota
	focusEmail
	focusMessage
	focusSubmit
	focusCount
)

// pageLine is one rendered line of the page, tagged with the section
// it belongs to so reveal styling can be applied at draw time.
type pageLine struct {
	text    string
	section int
	heading bool
}

// Model represents the main TUI model
type Model struct {
	state AppState

	cfg  *models.Config
	page *site.Site
	ctrl *form.Controller

	width  int
	height int
	sized  bool

	// Window size staged during the resize debounce window
	pendingWidth  int
	pendingHeight int
	resizeSeq     int

	// Rendered page
	lines        []pageLine
	sectionLines []int
	viewHeight   int

	// Scroll position, in page lines. target drives the spring while
	// an anchor jump is animating.
	offset    float64
	velocity  float64
	target    float64
	scrolling bool
	spring    harmonica.Spring

	// Latched per section once its heading has entered the window
	revealed []bool

	// Menu
	menuCursor int

	// Contact form
	nameInput    textinput.Model
	emailInput   textinput.Model
	messageInput textarea.Model
	focus        formFocus
	spin         spinner.Model

	// Aggregate status banner. bannerSeq guards against a stale expiry
	// timer clearing a newer banner.
	banner    form.Banner
	bannerSeq int

	scrollGauge progress.Model

	err error
}

// NewModel creates a new TUI model
func NewModel(cfg *models.Config, page *site.Site, ctrl *form.Controller) Model {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Your name"
	name.CharLimit = 100
	name.PlaceholderStyle = placeholderStyle

	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.PlaceholderStyle = placeholderStyle

	message := textarea.New()
	message.Placeholder = "What are you building?"
	message.CharLimit = 2000
	message.SetHeight(5)
	message.ShowLineNumbers = false

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(pendingStyle),
	)

	return Model{
		state:        StateBrowse,
		cfg:          cfg,
		page:         page,
		ctrl:         ctrl,
		nameInput:    name,
		emailInput:   email,
		messageInput: message,
		spin:         sp,
		spring:       harmonica.NewSpring(harmonica.FPS(scrollFPS), 7.0, 1.0),
		revealed:     make([]bool, len(page.Sections)),
		scrollGauge:  progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}
