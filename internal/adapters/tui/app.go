package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wordnet/internal/adapters/tui/views"
	"wordnet/internal/domain"
)

// ViewState represents the current view
type ViewState int

const (
	ViewQuery ViewState = iota
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state  ViewState
	query  *views.QueryModel
	search *views.SearchModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over a loaded taxonomy
func NewApp(wn *domain.WordNet) *App {
	return &App{
		state:  ViewQuery,
		query:  views.NewQueryModel(wn),
		search: views.NewSearchModel(wn),
		help:   views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.query.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.query.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToQueryMsg:
		a.state = ViewQuery
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewQuery
		a.query.SetNoun(msg.Noun)
		if msg.CopyErr != nil {
			a.query.SetMessage("Clipboard unavailable: "+msg.CopyErr.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewQuery:
		_, cmd = a.query.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.query.View()
	}
}
