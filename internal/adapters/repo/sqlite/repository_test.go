package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/adapters/store/conncache"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(Config{
		Path:   filepath.Join(t.TempDir(), "present.db"),
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepositoryConnectsLazily(t *testing.T) {
	repo := newTestRepository(t)
	assert.Equal(t, conncache.StateUnconnected, repo.ConnectionState())

	_, err := repo.ListByOwner(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, conncache.StateConnected, repo.ConnectionState())
}

func TestRepositoryInsertAssignsIDAndRoundTrips(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	created, err := repo.Insert(ctx, domain.Presentation{
		OwnerID:   "u-1",
		Name:      "Q1 Deck",
		Pages:     []domain.Page{domain.Page(`{"tools":[{"name":"Cat","x":12}]}`), domain.Page(`{}`)},
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.OwnerID("u-1"), got.OwnerID)
	assert.Equal(t, "Q1 Deck", got.Name)
	require.Len(t, got.Pages, 2)
	assert.JSONEq(t, `{"tools":[{"name":"Cat","x":12}]}`, string(got.Pages[0]))
	assert.True(t, now.Equal(got.CreatedAt))
	assert.True(t, now.Equal(got.UpdatedAt))
}

func TestRepositoryInsertDefaultsPagesToEmpty(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Insert(context.Background(), domain.Presentation{OwnerID: "u-1", Name: "Empty"})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Pages)
	assert.Empty(t, got.Pages)
}

func TestRepositoryListByOwnerKeepsInsertionOrderAndFiltersOwner(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var ids []domain.PresentationID
	for _, name := range []string{"first", "second", "third"} {
		created, err := repo.Insert(ctx, domain.Presentation{OwnerID: "u-1", Name: name})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := repo.Insert(ctx, domain.Presentation{OwnerID: "u-2", Name: "other"})
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, presentation := range list {
		assert.Equal(t, ids[i], presentation.ID)
	}

	empty, err := repo.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRepositoryUpdateRequiresMatchingOwner(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, domain.Presentation{OwnerID: "u-1", Name: "Deck"})
	require.NoError(t, err)

	foreign := created
	foreign.OwnerID = "u-2"
	foreign.Name = "Hijacked"
	require.ErrorIs(t, repo.Update(ctx, foreign), domain.ErrNotFound)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deck", got.Name)

	later := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	created.Name = "Deck v2"
	created.UpdatedAt = later
	require.NoError(t, repo.Update(ctx, created))

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deck v2", got.Name)
	assert.True(t, later.Equal(got.UpdatedAt))
}

func TestRepositoryDeleteTwiceReportsNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, domain.Presentation{OwnerID: "u-1", Name: "Deck"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositoryConcurrentColdStartSharesOneConnection(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ListByOwner(ctx, "u-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), repo.conns.Attempts())
}

func TestRepositoryUnreachableStoreReportsConnectionErrorAndRetries(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	repo, err := NewRepository(Config{Path: filepath.Join(blocker, "present.db"), Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	_, err = repo.ListByOwner(context.Background(), "u-1")
	require.ErrorIs(t, err, domain.ErrConnection)
	assert.Equal(t, conncache.StateUnconnected, repo.ConnectionState())

	_, err = repo.GetByID(context.Background(), "p-1")
	require.ErrorIs(t, err, domain.ErrConnection)
	assert.Equal(t, int64(2), repo.conns.Attempts())
}

func TestNewRepositoryRejectsEmptyPath(t *testing.T) {
	_, err := NewRepository(Config{Path: "  "})
	require.Error(t, err)
}
