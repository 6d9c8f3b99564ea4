package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/scramblesearch/internal/edges"
	"github.com/seamusw/scramblesearch/internal/search"
)

// Styles for the live progress view.
var (
	progressTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	progressStatStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	progressHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// Messages
type progressTickMsg time.Time
type searchDoneMsg struct{}

// progressModel is the live search progress view. The search itself runs in
// a separate goroutine and signals completion through the program.
type progressModel struct {
	searcher *edges.Searcher
	sink     *search.Sink
	started  time.Time
	done     bool
	quitting bool
}

func newProgressModel(searcher *edges.Searcher, sink *search.Sink) *progressModel {
	return &progressModel{
		searcher: searcher,
		sink:     sink,
		started:  time.Now(),
	}
}

func (m *progressModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *progressModel) tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// The search keeps running; only the view goes away.
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case progressTickMsg:
		if m.done {
			return m, tea.Quit
		}
		return m, m.tickCmd()

	case searchDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *progressModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(progressTitleStyle.Render("Searching edge arrangements"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("  %s %d\n",
		progressStatStyle.Render("complete edge placements:"),
		m.searcher.Counters.EdgeArrangements.Load()))
	b.WriteString(fmt.Sprintf("  %s %d even / %d odd\n",
		progressStatStyle.Render("parity split:            "),
		m.searcher.Counters.EvenParity.Load(),
		m.searcher.Counters.OddParity.Load()))
	b.WriteString(fmt.Sprintf("  %s %d\n",
		progressStatStyle.Render("solutions:               "),
		m.sink.Total()))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		progressStatStyle.Render("elapsed:                 "),
		time.Since(m.started).Round(time.Second)))
	b.WriteString(progressHelpStyle.Render("  q to detach (search continues)"))
	b.WriteByte('\n')
	return b.String()
}

// runSearchTUI runs the search with a live progress view. Detaching from
// the view leaves the search running to completion.
func runSearchTUI(searcher *edges.Searcher, sink *search.Sink, workers int) error {
	model := newProgressModel(searcher, sink)
	program := tea.NewProgram(model)

	searchDone := make(chan struct{})
	go func() {
		edges.Run(searcher, workers)
		close(searchDone)
		program.Send(searchDoneMsg{})
	}()

	_, err := program.Run()

	// Wait for the search even if the user detached early or the view
	// failed; the sink is closed by the caller once the search drains.
	<-searchDone

	if err != nil {
		return fmt.Errorf("progress view failed: %w", err)
	}
	return nil
}
