package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordnet/internal/adapters/tui/styles"
	"wordnet/internal/application"
	"wordnet/internal/application/commands"
	"wordnet/internal/domain"
)

// QueryKeyMap defines key bindings for the query view
type QueryKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Run       key.Binding
	Copy      key.Binding
	Search    key.Binding
	Clear     key.Binding
	Help      key.Binding
}

var QueryKeys = QueryKeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "find ancestor"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy ancestor"),
	),
	Search: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "search nouns"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// queryResult is a resolved pair of nouns, ready for display
type queryResult struct {
	noun1, noun2 string
	path         *domain.NounPath
	gloss        string
	fromLabel    string
	toLabel      string
}

type queryResultMsg struct {
	result *queryResult
	err    error
}

// QueryModel is the model for the two-noun query view
type QueryModel struct {
	ViewState
	wn          *domain.WordNet
	inputs      [2]textinput.Model
	focus       int
	result      *queryResult
	unrelated   bool
	suggestions []string
}

// NewQueryModel creates a new query view model
func NewQueryModel(wn *domain.WordNet) *QueryModel {
	m := &QueryModel{wn: wn}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = fmt.Sprintf("noun %d", i+1)
		input.CharLimit = 128
		input.Width = 40
		m.inputs[i] = input
	}
	m.inputs[0].Focus()
	return m
}

// Init initializes the query view
func (m *QueryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Values returns the current contents of both inputs
func (m *QueryModel) Values() (string, string) {
	return strings.TrimSpace(m.inputs[0].Value()), strings.TrimSpace(m.inputs[1].Value())
}

// SetNoun fills the focused input
func (m *QueryModel) SetNoun(noun string) {
	m.inputs[m.focus].SetValue(noun)
	m.inputs[m.focus].CursorEnd()
}

// Update handles messages for the query view
func (m *QueryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case queryResultMsg:
		m.handleResult(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, QueryKeys.NextField):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))

		case key.Matches(msg, QueryKeys.PrevField):
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))

		case key.Matches(msg, QueryKeys.Run):
			return m, m.run()

		case key.Matches(msg, QueryKeys.Copy):
			m.copyAncestor()
			return m, nil

		case key.Matches(msg, QueryKeys.Search):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }

		case key.Matches(msg, QueryKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, QueryKeys.Clear):
			m.reset()
			return m, m.setFocus(0)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *QueryModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *QueryModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.result = nil
	m.unrelated = false
	m.suggestions = nil
	m.ClearMessage()
}

// run resolves the two nouns off the update loop
func (m *QueryModel) run() tea.Cmd {
	noun1, noun2 := m.Values()
	wn := m.wn

	return func() tea.Msg {
		p, err := commands.NewPathCommand(wn, noun1, noun2).Execute(context.Background())
		if err != nil {
			return queryResultMsg{err: err}
		}
		r := &queryResult{noun1: noun1, noun2: noun2, path: p}
		r.gloss, _ = wn.Gloss(p.Ancestor)
		r.fromLabel, _ = wn.Label(p.From)
		r.toLabel, _ = wn.Label(p.To)
		return queryResultMsg{result: r}
	}
}

func (m *QueryModel) handleResult(msg queryResultMsg) {
	m.result = nil
	m.unrelated = false
	m.suggestions = nil
	m.ClearMessage()

	var sugErr *application.SuggestionError
	var valErr *application.ValidationError
	switch {
	case msg.err == nil:
		m.result = msg.result
	case errors.Is(msg.err, application.ErrNoCommonAncestor):
		m.unrelated = true
		m.SetMessage(application.NoAncestor, false)
	case errors.As(msg.err, &sugErr):
		m.suggestions = sugErr.Suggestions
		m.SetMessage(fmt.Sprintf("%q is not a noun", sugErr.Noun), true)
	case errors.As(msg.err, &valErr):
		m.SetMessage(valErr.Message, true)
	default:
		m.SetMessage(msg.err.Error(), true)
	}
}

func (m *QueryModel) copyAncestor() {
	if m.result == nil {
		m.SetMessage("Nothing to copy yet", true)
		return
	}
	if err := copyToClipboard(m.result.path.AncestorLabel); err != nil {
		m.SetMessage("Clipboard unavailable: "+err.Error(), true)
		return
	}
	m.SetMessage("Copied "+m.result.path.AncestorLabel, false)
}

// View renders the query view
func (m *QueryModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("WordNet Explorer"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d nouns in %d synsets", m.wn.NounCount(), m.wn.SynsetCount())))
	b.WriteString("\n\n")

	for i := range m.inputs {
		style := styles.InputField
		if i == m.focus {
			style = styles.InputFocused
		}
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Noun %d", i+1)))
		b.WriteString("\n")
		b.WriteString(style.Render(m.inputs[i].View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString(m.renderResult())
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}
	if len(m.suggestions) > 0 {
		b.WriteString(styles.MutedText.Render("Did you mean: "))
		b.WriteString(strings.Join(m.suggestions, ", "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("switch"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("query"),
		styles.HelpKey.Render("ctrl+y"),
		styles.HelpDesc.Render("copy"),
		styles.HelpKey.Render("ctrl+f"),
		styles.HelpDesc.Render("search"),
		styles.HelpKey.Render("?"),
		styles.HelpDesc.Render("help"),
	))

	return styles.App.Render(b.String())
}

func (m *QueryModel) renderResult() string {
	r := m.result
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styles.InputLabel.Render("Ancestor:"), styles.Ancestor.Render(r.path.AncestorLabel))
	if r.gloss != "" {
		b.WriteString(styles.Gloss.Render("  " + r.gloss))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %s\n", styles.InputLabel.Render("Distance:"), styles.Distance.Render(fmt.Sprint(r.path.Length)))
	fmt.Fprintf(&b, "%s %s %s\n", styles.InputLabel.Render("From:"), r.noun1, styles.MutedText.Render("as "+r.fromLabel))
	fmt.Fprintf(&b, "%s %s %s", styles.InputLabel.Render("To:"), r.noun2, styles.MutedText.Render("as "+r.toLabel))

	return styles.ResultBox.Render(b.String())
}
