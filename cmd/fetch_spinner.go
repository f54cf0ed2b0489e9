package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type presentationsFetchedMsg struct {
	presentations []domain.Presentation
	err           error
}

type fetchSpinnerModel struct {
	spinner   spinner.Model
	owner     domain.OwnerID
	fetch     tea.Cmd
	doneStyle lipgloss.Style

	presentations []domain.Presentation
	err           error
	done          bool
}

func newFetchSpinnerModel(owner domain.OwnerID, fetch tea.Cmd) fetchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return fetchSpinnerModel{
		spinner:   s,
		owner:     owner,
		fetch:     fetch,
		doneStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case presentationsFetchedMsg:
		m.done = true
		m.presentations = msg.presentations
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Fetching presentations of %s...", m.spinner.View(), m.owner)
	}
	if m.err != nil {
		return ""
	}

	return m.doneStyle.Render(fmt.Sprintf("Fetched %d %s of %s.", len(m.presentations), pluralize(len(m.presentations), "presentation"), m.owner))
}

// fetchPresentations lists the owner's presentations while a spinner runs on output.
func fetchPresentations(ctx context.Context, output io.Writer, api apiClient, owner domain.OwnerID) ([]domain.Presentation, error) {
	fetchCmd := func() tea.Msg {
		presentations, err := api.List(ctx, owner)
		return presentationsFetchedMsg{presentations: presentations, err: err}
	}

	p := tea.NewProgram(
		newFetchSpinnerModel(owner, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(fetchSpinnerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.presentations, result.err
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}
