// Package progress renders a live terminal progress bar for the
// long-running fetch and clean operations.
package progress

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase"
)

type eventMsg usecase.Progress

type doneMsg struct{ err error }

type model struct {
	theme Theme
	title string

	bar    progress.Model
	width  int
	done   int
	total  int
	failed int
	last   string

	finished bool
	err      error
}

func newModel(title string) model {
	return model{
		theme: DefaultTheme(),
		title: title,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// The operation keeps its own context; the bar just detaches.
			return m, tea.Quit
		}
		return m, nil

	case eventMsg:
		m.done = msg.Done
		m.total = msg.Total
		m.last = msg.Path
		if msg.Err != nil {
			m.failed++
		}
		if m.total > 0 {
			return m, m.bar.SetPercent(float64(m.done) / float64(m.total))
		}
		return m, nil

	case doneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Sequence(m.bar.SetPercent(1), tea.Quit)

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	header := m.theme.Title.Render(m.title)

	counter := fmt.Sprintf("%d/%d", m.done, m.total)
	if m.failed > 0 {
		counter += " " + m.theme.Fail.Render(fmt.Sprintf("(%d failed)", m.failed))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.bar.View()+"  "+counter,
		m.theme.Path.Render(m.last),
	)

	if !m.finished {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.theme.Help.Render("ctrl+c detach"))
	}

	return m.theme.Card.Render(body)
}

// Run drives the progress UI while start executes in the background.
// start receives a callback to feed per-file events and must return the
// operation's final error. Run returns that error.
func Run(title string, start func(onEvent func(usecase.Progress)) error) error {
	p := tea.NewProgram(newModel(title))

	errc := make(chan error, 1)
	go func() {
		err := start(func(ev usecase.Progress) {
			p.Send(eventMsg(ev))
		})
		p.Send(doneMsg{err: err})
		errc <- err
	}()

	if _, uiErr := p.Run(); uiErr != nil {
		return uiErr
	}
	return <-errc
}
