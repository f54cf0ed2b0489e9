package application

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	sqliterepo "github.com/Cenagaurav77/Present-App/internal/adapters/repo/sqlite"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var untitledPattern = regexp.MustCompile(`^Untitled - [A-Z][a-z]{2} \d{1,2}, \d{4}, \d{1,2}:\d{2} (AM|PM)$`)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

func TestServiceCreateDefaultsEmptyNameToUntitledPlaceholder(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	now := time.Date(2026, 10, 18, 21, 7, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	repo.EXPECT().Insert(mockAnyContext(), domain.Presentation{
		OwnerID:   "u-1",
		Name:      "Untitled - Oct 18, 2026, 9:07 PM",
		Pages:     []domain.Page{},
		CreatedAt: now,
		UpdatedAt: now,
	}).RunAndReturn(func(_ context.Context, p domain.Presentation) (domain.Presentation, error) {
		p.ID = "p-1"
		return p, nil
	})

	created, err := service.Create(context.Background(), CreatePresentationCommand{OwnerID: "u-1", Name: ""})
	require.NoError(t, err)
	assert.Equal(t, domain.PresentationID("p-1"), created.ID)
	assert.Regexp(t, untitledPattern, created.Name)
}

func TestServiceCreateKeepsWhitespaceOnlyName(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	repo.EXPECT().Insert(mockAnyContext(), mock.MatchedBy(func(p domain.Presentation) bool {
		return p.Name == "   "
	})).RunAndReturn(func(_ context.Context, p domain.Presentation) (domain.Presentation, error) {
		p.ID = "p-1"
		return p, nil
	})

	created, err := service.Create(context.Background(), CreatePresentationCommand{OwnerID: "u-1", Name: "   "})
	require.NoError(t, err)
	assert.Equal(t, "   ", created.Name)
}

func TestServiceCreatePreservesGivenNameExactly(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	repo.EXPECT().Insert(mockAnyContext(), mock.MatchedBy(func(p domain.Presentation) bool {
		return p.Name == "  Q1 Deck " && p.OwnerID == "u-1" && len(p.Pages) == 1
	})).RunAndReturn(func(_ context.Context, p domain.Presentation) (domain.Presentation, error) {
		p.ID = "p-1"
		return p, nil
	})

	created, err := service.Create(context.Background(), CreatePresentationCommand{
		OwnerID: "u-1",
		Name:    "  Q1 Deck ",
		Pages:   []domain.Page{domain.Page(`{}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, "  Q1 Deck ", created.Name)
}

func TestServiceCreateRejectsMalformedInputBeforeTouchingStore(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	tests := []struct {
		name string
		cmd  CreatePresentationCommand
	}{
		{name: "missing owner", cmd: CreatePresentationCommand{Name: "Deck"}},
		{name: "name too long", cmd: CreatePresentationCommand{OwnerID: "u-1", Name: strings.Repeat("x", domain.MaxNameLength+1)}},
		{name: "page not an object", cmd: CreatePresentationCommand{OwnerID: "u-1", Pages: []domain.Page{domain.Page(`"text"`)}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tc.cmd)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestServiceRenameUpdatesNameAndTimestamp(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	existing := domain.Presentation{ID: "p-1", OwnerID: "u-1", Name: "Q1 Deck", Pages: []domain.Page{}, CreatedAt: created, UpdatedAt: created}

	repo.EXPECT().GetByID(mockAnyContext(), domain.PresentationID("p-1")).Return(existing, nil)
	clock.EXPECT().Now().Return(now)
	repo.EXPECT().Update(mockAnyContext(), domain.Presentation{
		ID:        "p-1",
		OwnerID:   "u-1",
		Name:      "Q1 Deck Final",
		Pages:     []domain.Page{},
		CreatedAt: created,
		UpdatedAt: now,
	}).Return(nil)

	renamed, err := service.Rename(context.Background(), RenamePresentationCommand{ID: "p-1", OwnerID: "u-1", Name: "Q1 Deck Final"})
	require.NoError(t, err)
	assert.Equal(t, "Q1 Deck Final", renamed.Name)
	assert.Equal(t, now, renamed.UpdatedAt)
}

func TestServiceRenameForeignOwnerIsNotFoundAndDoesNotWrite(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	repo.EXPECT().GetByID(mockAnyContext(), domain.PresentationID("p-1")).
		Return(domain.Presentation{ID: "p-1", OwnerID: "u-2", Name: "Theirs"}, nil)

	_, err := service.Rename(context.Background(), RenamePresentationCommand{ID: "p-1", OwnerID: "u-1", Name: "Mine now"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestServiceRenameAbsentIsNotFound(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	service := NewService(repo, mocks.NewMockClock(t))

	repo.EXPECT().GetByID(mockAnyContext(), domain.PresentationID("missing")).Return(domain.Presentation{}, domain.ErrNotFound)

	_, err := service.Rename(context.Background(), RenamePresentationCommand{ID: "missing", OwnerID: "u-1", Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceRenameRejectsBlankName(t *testing.T) {
	service := NewService(mocks.NewMockPresentationRepository(t), mocks.NewMockClock(t))

	_, err := service.Rename(context.Background(), RenamePresentationCommand{ID: "p-1", OwnerID: "u-1", Name: " "})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestServicePropagatesConnectionErrorWithoutRetrying(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	service := NewService(repo, mocks.NewMockClock(t))

	connErr := &domain.ConnectionError{Err: errors.New("connection attempt timed out")}
	repo.EXPECT().ListByOwner(mockAnyContext(), domain.OwnerID("u-1")).Return(nil, connErr).Once()

	_, err := service.ListByOwner(context.Background(), "u-1")
	require.ErrorIs(t, err, domain.ErrConnection)

	var got *domain.ConnectionError
	require.ErrorAs(t, err, &got)
	assert.Same(t, connErr, got)
}

func TestServiceRemoveMapsMissingToNotFound(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	service := NewService(repo, mocks.NewMockClock(t))

	repo.EXPECT().Delete(mockAnyContext(), domain.PresentationID("p-1")).Return(nil).Once()
	repo.EXPECT().Delete(mockAnyContext(), domain.PresentationID("p-1")).Return(domain.ErrNotFound).Once()

	require.NoError(t, service.Remove(context.Background(), "p-1"))
	require.ErrorIs(t, service.Remove(context.Background(), "p-1"), domain.ErrNotFound)
}

func TestServiceSavePagesChecksOwnership(t *testing.T) {
	repo := mocks.NewMockPresentationRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewService(repo, clock)

	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetByID(mockAnyContext(), domain.PresentationID("p-1")).
		Return(domain.Presentation{ID: "p-1", OwnerID: "u-1", Name: "Deck"}, nil)
	clock.EXPECT().Now().Return(now)
	repo.EXPECT().Update(mockAnyContext(), mock.MatchedBy(func(p domain.Presentation) bool {
		return len(p.Pages) == 2 && p.UpdatedAt.Equal(now)
	})).Return(nil)

	saved, err := service.SavePages(context.Background(), SavePagesCommand{
		ID:      "p-1",
		OwnerID: "u-1",
		Pages:   []domain.Page{domain.Page(`{"tools":["Cat"]}`), domain.Page(`{}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved.PageCount())

	_, err = service.SavePages(context.Background(), SavePagesCommand{ID: "p-1", OwnerID: "u-9"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceAgainstSQLiteStore(t *testing.T) {
	repo, err := sqliterepo.NewRepository(sqliterepo.Config{Path: filepath.Join(t.TempDir(), "present.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	service := NewService(repo, nil)
	ctx := context.Background()

	untitled, err := service.Create(ctx, CreatePresentationCommand{OwnerID: "u-1"})
	require.NoError(t, err)
	assert.Regexp(t, untitledPattern, untitled.Name)

	deck, err := service.Create(ctx, CreatePresentationCommand{OwnerID: "u-1", Name: "Q1 Deck"})
	require.NoError(t, err)

	_, err = service.Rename(ctx, RenamePresentationCommand{ID: deck.ID, OwnerID: "u-2", Name: "stolen"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Rename(ctx, RenamePresentationCommand{ID: deck.ID, OwnerID: "u-1", Name: "Q1 Deck Final"})
	require.NoError(t, err)

	list, err := service.ListByOwner(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Q1 Deck Final", list[1].Name)

	require.NoError(t, service.Remove(ctx, deck.ID))
	require.ErrorIs(t, service.Remove(ctx, deck.ID), domain.ErrNotFound)

	list, err = service.ListByOwner(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, untitled.ID, list[0].ID)
}
