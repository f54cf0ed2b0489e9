package listing

import (
	"errors"
	"io"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	presentations []domain.Presentation
	opts          RenderOptions
	styles        styles
	output        string
}

func newModel(presentations []domain.Presentation, opts RenderOptions) model {
	return model{
		presentations: presentations,
		opts:          opts,
		styles:        newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.presentations, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out an owner's presentations for the terminal.
func Render(presentations []domain.Presentation, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(presentations, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
