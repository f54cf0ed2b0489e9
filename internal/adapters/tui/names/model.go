// Package names is the interactive editor for presentation names. Typing edits a
// local draft; leaving a field commits it through the list reconciler.
package names

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Cenagaurav77/Present-App/internal/application"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type refreshedMsg struct {
	err error
}

type committedMsg struct {
	id      domain.PresentationID
	renamed bool
	err     error
}

type createdMsg struct {
	presentation domain.Presentation
	err          error
}

type removedMsg struct {
	id  domain.PresentationID
	err error
}

type Model struct {
	ctx        context.Context
	reconciler *application.ListReconciler
	styles     styles

	ids    []domain.PresentationID
	inputs map[domain.PresentationID]textinput.Model
	focus  int

	busy     string
	status   string
	err      error
	quitting bool
}

func New(ctx context.Context, reconciler *application.ListReconciler) Model {
	return Model{
		ctx:        ctx,
		reconciler: reconciler,
		styles:     newStyles(),
		inputs:     map[domain.PresentationID]textinput.Model{},
		busy:       "Loading presentations...",
	}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case refreshedMsg:
		m.busy = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.syncInputs()
		return m, m.finishIfQuitting()
	case committedMsg:
		m.busy = ""
		if msg.err != nil {
			m.err = msg.err
			if errors.Is(msg.err, domain.ErrNotFound) {
				m.status = "Presentation no longer exists; reloading."
				return m, m.refreshCmd()
			}
			return m, m.finishIfQuitting()
		}
		m.err = nil
		if msg.renamed {
			m.status = "Saved."
			m.syncInputs()
		}
		return m, m.finishIfQuitting()
	case createdMsg:
		m.busy = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Created %q.", msg.presentation.Name)
		m.syncInputs()
		m.focusID(msg.presentation.ID)
		return m, nil
	case removedMsg:
		m.busy = ""
		m.syncInputs()
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Removed."
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.quitting = true
		cmd := m.commitFocusedCmd()
		if cmd == nil {
			return m, tea.Quit
		}
		return m, cmd
	}

	if m.busy != "" {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		return m, m.commitFocusedCmd()
	case "ctrl+r":
		m.busy = "Refreshing..."
		return m, m.refreshCmd()
	case "ctrl+n":
		m.busy = "Creating..."
		return m, m.createCmd()
	case "ctrl+d":
		id, ok := m.focusedID()
		if !ok {
			return m, nil
		}
		m.busy = "Removing..."
		return m, m.removeCmd(id)
	}

	id, ok := m.focusedID()
	if !ok {
		return m, nil
	}
	input := m.inputs[id]
	before := input.Value()
	var cmd tea.Cmd
	input, cmd = input.Update(msg)
	m.inputs[id] = input
	if input.Value() != before {
		if err := m.reconciler.Edit(id, input.Value()); err != nil {
			m.err = err
		}
	}

	return m, cmd
}

// moveFocus blurs the focused field, which commits it, and focuses its neighbour.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if len(m.ids) == 0 {
		return m, nil
	}

	commit := m.commitFocusedCmd()
	next := (m.focus + delta + len(m.ids)) % len(m.ids)
	m.setFocus(next)

	return m, commit
}

func (m *Model) commitFocusedCmd() tea.Cmd {
	id, ok := m.focusedID()
	if !ok {
		return nil
	}
	if !m.isDirty(id) {
		return nil
	}

	m.busy = "Saving..."
	ctx := m.ctx
	reconciler := m.reconciler
	return func() tea.Msg {
		renamed, err := reconciler.Commit(ctx, id)
		return committedMsg{id: id, renamed: renamed, err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx := m.ctx
	reconciler := m.reconciler
	return func() tea.Msg {
		return refreshedMsg{err: reconciler.Refresh(ctx)}
	}
}

func (m Model) createCmd() tea.Cmd {
	ctx := m.ctx
	reconciler := m.reconciler
	return func() tea.Msg {
		created, err := reconciler.Create(ctx, "")
		return createdMsg{presentation: created, err: err}
	}
}

func (m Model) removeCmd(id domain.PresentationID) tea.Cmd {
	ctx := m.ctx
	reconciler := m.reconciler
	return func() tea.Msg {
		return removedMsg{id: id, err: reconciler.Remove(ctx, id)}
	}
}

func (m Model) finishIfQuitting() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	return nil
}

func (m Model) isDirty(id domain.PresentationID) bool {
	for _, entry := range m.reconciler.Entries() {
		if entry.ID == id {
			return entry.Dirty
		}
	}
	return false
}

// syncInputs rebuilds the fields from the reconciler, keeping focus on the same
// presentation when it still exists.
func (m *Model) syncInputs() {
	focused, hadFocus := m.focusedID()

	entries := m.reconciler.Entries()
	ids := make([]domain.PresentationID, 0, len(entries))
	inputs := make(map[domain.PresentationID]textinput.Model, len(entries))
	for _, entry := range entries {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = domain.MaxNameLength
		_ = input.Cursor.SetMode(cursor.CursorStatic)
		input.SetValue(entry.Name)
		ids = append(ids, entry.ID)
		inputs[entry.ID] = input
	}

	m.ids = ids
	m.inputs = inputs
	m.focus = 0
	if hadFocus {
		for i, id := range ids {
			if id == focused {
				m.focus = i
				break
			}
		}
	}
	if m.focus >= len(m.ids) {
		m.focus = 0
	}
	m.setFocus(m.focus)
}

func (m *Model) setFocus(index int) {
	for i, id := range m.ids {
		input := m.inputs[id]
		if i == index {
			_ = input.Focus()
		} else {
			input.Blur()
		}
		m.inputs[id] = input
	}
	m.focus = index
}

func (m *Model) focusID(id domain.PresentationID) {
	for i, candidate := range m.ids {
		if candidate == id {
			m.setFocus(i)
			return
		}
	}
}

func (m Model) focusedID() (domain.PresentationID, bool) {
	if m.focus < 0 || m.focus >= len(m.ids) {
		return "", false
	}
	return m.ids[m.focus], true
}

// Run starts the editor on the given terminal streams.
func Run(ctx context.Context, reconciler *application.ListReconciler, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, reconciler),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(Model); !ok {
		return ErrUnexpectedModel
	}
	return nil
}
