package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordnet/internal/adapters/tui/styles"
	"wordnet/internal/application/commands"
	"wordnet/internal/domain"
)

const resultsPerPage = 10

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "previous page"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "use noun"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// SearchModel is the model for the noun search view
type SearchModel struct {
	ViewState
	wn      *domain.WordNet
	input   textinput.Model
	results []commands.SearchResult
	pager   *Paginator
}

// NewSearchModel creates a new search view model
func NewSearchModel(wn *domain.WordNet) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search nouns..."
	input.Focus()

	return &SearchModel{
		wn:    wn,
		input: input,
		pager: NewPaginator(resultsPerPage),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.setResults(nil)
	m.ClearMessage()
	m.input.Focus()
}

// Results returns the current matches
func (m *SearchModel) Results() []commands.SearchResult {
	return m.results
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		// Drop answers to queries the user has already typed past
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.setResults(msg.results)
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToQueryMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			m.pager.Up()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.Down()
			return m, nil

		case key.Matches(msg, SearchKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, SearchKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if cursor := m.pager.Cursor(); cursor < len(m.results) {
				noun := m.results[cursor].Noun
				copyErr := copyToClipboard(noun)
				if copyErr != nil {
					m.SetMessage("Clipboard unavailable: "+copyErr.Error(), true)
				}
				return m, func() tea.Msg {
					return SearchSelectMsg{Noun: noun, CopyErr: copyErr}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if len(query) >= 2 {
		return m, tea.Batch(cmd, m.search(query))
	} else if len(query) == 0 {
		m.setResults(nil)
	}

	return m, cmd
}

func (m *SearchModel) search(query string) tea.Cmd {
	wn := m.wn
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(wn, query, 50).Execute(context.Background())
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

type searchResultsMsg struct {
	query   string
	results []commands.SearchResult
	err     error
}

// SearchSelectMsg is sent when a noun is picked from the results.
// CopyErr is set when the noun could not be put on the clipboard.
type SearchSelectMsg struct {
	Noun    string
	CopyErr error
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search Nouns"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(m.input.Value()) >= 2 {
			b.WriteString(styles.MutedText.Render("No nouns found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.pager.Cursor()))
			b.WriteString("\n")
		}

		if cur, pages := m.pager.Page(); pages > 1 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d of %d", cur, pages)))
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("pgup/pgdn"),
		styles.HelpDesc.Render("page"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("use noun"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) setResults(results []commands.SearchResult) {
	m.results = results
	m.pager.SetTotal(len(results))
}

func (m *SearchModel) renderResult(result commands.SearchResult, selected bool) string {
	senses := fmt.Sprintf("%d senses", len(result.Synsets))
	if selected {
		return styles.Selected.Render("> " + result.Noun + " " + senses)
	}
	return "  " + styles.SearchMatch.Render(result.Noun) + " " + styles.MutedText.Render(senses)
}
