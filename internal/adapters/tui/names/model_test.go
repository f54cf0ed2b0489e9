package names

import (
	"context"
	"errors"
	"testing"

	"github.com/Cenagaurav77/Present-App/internal/application"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports/mocks"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func presentation(id, name string) domain.Presentation {
	return domain.Presentation{ID: domain.PresentationID(id), OwnerID: "u-1", Name: name, Pages: []domain.Page{}}
}

// send delivers msg and then runs every command the model returns until it goes
// quiet, reporting whether the model asked to quit.
func send(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()

	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		out := cmd()
		if _, ok := out.(tea.QuitMsg); ok {
			return m, true
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m, false
}

func start(t *testing.T, api *mocks.MockPresentationAPI) Model {
	t.Helper()

	m := New(context.Background(), application.NewListReconciler(api, "u-1"))
	m, quit := send(t, m, m.Init()())
	require.False(t, quit)
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNamesLoadsListAndFocusesFirstEntry(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Q1 Deck"), presentation("p-2", "Roadmap")}, nil).Once()

	m := start(t, api)

	view := m.View()
	assert.Contains(t, view, "My presentations")
	assert.Contains(t, view, "Q1 Deck")
	assert.Contains(t, view, "Roadmap")
	assert.Contains(t, view, "0 pages")
	id, ok := m.focusedID()
	require.True(t, ok)
	assert.Equal(t, domain.PresentationID("p-1"), id)
}

func TestNamesTypingDoesNotRenameUntilFocusLeaves(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Q1 Deck"), presentation("p-2", "Roadmap")}, nil).Once()

	m := start(t, api)
	m = typeText(t, m, " Final")
	api.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, m.View(), "*")

	api.EXPECT().Rename(mock.Anything, domain.PresentationID("p-1"), domain.OwnerID("u-1"), "Q1 Deck Final").
		Return(presentation("p-1", "Q1 Deck Final"), nil).Once()
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Q1 Deck Final"), presentation("p-2", "Roadmap")}, nil).Once()

	m, quit := send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, quit)

	id, _ := m.focusedID()
	assert.Equal(t, domain.PresentationID("p-2"), id)
	assert.Contains(t, m.View(), "Q1 Deck Final")
	assert.Contains(t, m.View(), "Saved.")
}

func TestNamesLeavingCleanFieldDoesNotRename(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Q1 Deck"), presentation("p-2", "Roadmap")}, nil).Once()

	m := start(t, api)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	id, _ := m.focusedID()
	assert.Equal(t, domain.PresentationID("p-1"), id)
	api.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNamesFailedSaveKeepsDraftAndShowsError(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Deck")}, nil).Once()
	api.EXPECT().Rename(mock.Anything, domain.PresentationID("p-1"), domain.OwnerID("u-1"), "Deck 2").
		Return(domain.Presentation{}, &domain.ConnectionError{Err: errors.New("connection attempt timed out")}).Once()

	m := start(t, api)
	m = typeText(t, m, " 2")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "Error: ")
	assert.Contains(t, view, "connection attempt timed out")
	assert.Contains(t, view, "Deck 2")
	assert.True(t, m.reconciler.Entries()[0].Dirty)
}

func TestNamesRenameOfDeletedEntryReloads(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Gone"), presentation("p-2", "Kept")}, nil).Once()
	api.EXPECT().Rename(mock.Anything, domain.PresentationID("p-1"), domain.OwnerID("u-1"), "Gone!").
		Return(domain.Presentation{}, domain.ErrNotFound).Once()
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-2", "Kept")}, nil).Once()

	m := start(t, api)
	m = typeText(t, m, "!")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, m.ids, 1)
	assert.NotContains(t, m.View(), "Gone")
}

func TestNamesCreateAndRemove(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).Return([]domain.Presentation{}, nil).Once()

	m := start(t, api)
	assert.Contains(t, m.View(), "No presentations yet")

	created := presentation("p-9", "Untitled - Oct 18, 2026, 9:07 PM")
	api.EXPECT().Create(mock.Anything, domain.OwnerID("u-1"), "", []domain.Page(nil)).Return(created, nil).Once()
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).Return([]domain.Presentation{created}, nil).Once()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Contains(t, m.View(), "Untitled - Oct 18, 2026, 9:07 PM")
	id, ok := m.focusedID()
	require.True(t, ok)
	assert.Equal(t, created.ID, id)

	api.EXPECT().Remove(mock.Anything, created.ID).Return(nil).Once()
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).Return([]domain.Presentation{}, nil).Once()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Contains(t, m.View(), "Removed.")
	_, ok = m.focusedID()
	assert.False(t, ok)
}

func TestNamesEscCommitsFocusedDraftBeforeQuitting(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Deck")}, nil).Once()

	m := start(t, api)
	m = typeText(t, m, "s")

	api.EXPECT().Rename(mock.Anything, domain.PresentationID("p-1"), domain.OwnerID("u-1"), "Decks").
		Return(presentation("p-1", "Decks"), nil).Once()
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Decks")}, nil).Once()

	_, quit := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, quit)
}

func TestNamesLoadFailureCanBeRetried(t *testing.T) {
	api := mocks.NewMockPresentationAPI(t)
	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return(nil, &domain.ConnectionError{Err: errors.New("refused")}).Once()

	m := start(t, api)
	assert.Contains(t, m.View(), "document store unavailable")

	api.EXPECT().List(mock.Anything, domain.OwnerID("u-1")).
		Return([]domain.Presentation{presentation("p-1", "Deck")}, nil).Once()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Contains(t, m.View(), "Deck")
	assert.NotContains(t, m.View(), "Error:")
}
