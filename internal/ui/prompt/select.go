// Package prompt provides interactive terminal prompts. Prompts render
// to stderr so stdout stays clean for data output.
package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

type cancelled struct{}

func (cancelled) Error() string { return "selection cancelled" }

// ErrCancelled is returned by Select when the user aborts.
var ErrCancelled error = cancelled{}

type item struct {
	label string
	index int
}

func (i item) Title() string       { return i.label }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.label }

type pickModel struct {
	list     list.Model
	choice   int
	quitting bool
}

func newPickModel(title string, options []string) pickModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = item{label: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	l := list.New(items, delegate, 60, min(len(options)+6, 18))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return pickModel{list: l, choice: -1}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Let the list handle keys while the filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.index
			}
			m.quitting = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// Select shows a filterable list prompt and returns the index of the
// chosen option. Aborting the prompt returns ErrCancelled.
func Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, ErrCancelled
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newPickModel(title, options),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if err != nil {
		return -1, err
	}

	m := final.(pickModel)
	if m.choice < 0 || m.choice >= len(options) {
		return -1, ErrCancelled
	}
	return m.choice, nil
}
