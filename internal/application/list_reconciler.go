package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports"
)

type ReconcilerState int

const (
	ReconcilerIdle ReconcilerState = iota
	ReconcilerLoading
	ReconcilerReady
)

func (s ReconcilerState) String() string {
	switch s {
	case ReconcilerIdle:
		return "idle"
	case ReconcilerLoading:
		return "loading"
	case ReconcilerReady:
		return "ready"
	default:
		return fmt.Sprintf("ReconcilerState(%d)", int(s))
	}
}

// ShadowEntry is a snapshot of one row of the editable list.
type ShadowEntry struct {
	ID            domain.PresentationID
	Name          string
	CanonicalName string
	PageCount     int
	Dirty         bool
}

type shadowEntry struct {
	canonical domain.Presentation
	draft     string
}

// ListReconciler keeps an editable copy of an owner's presentation names next to
// the list last fetched from the service. Edits stay local until Commit, which
// renames only entries whose draft differs from the canonical name.
type ListReconciler struct {
	api   ports.PresentationAPI
	owner domain.OwnerID

	mu         sync.Mutex
	state      ReconcilerState
	lastErr    error
	generation uint64
	entries    map[domain.PresentationID]*shadowEntry
	order      []domain.PresentationID

	commitMu    sync.Mutex
	commitLocks map[domain.PresentationID]*sync.Mutex
}

func NewListReconciler(api ports.PresentationAPI, owner domain.OwnerID) *ListReconciler {
	return &ListReconciler{
		api:         api,
		owner:       owner,
		entries:     map[domain.PresentationID]*shadowEntry{},
		commitLocks: map[domain.PresentationID]*sync.Mutex{},
	}
}

func (r *ListReconciler) Owner() domain.OwnerID {
	return r.owner
}

func (r *ListReconciler) State() ReconcilerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the error of the most recent refresh, or nil if it succeeded.
func (r *ListReconciler) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Refresh fetches the canonical list and rebuilds every draft from it. On failure
// the reconciler stays Loading until the caller refreshes again.
func (r *ListReconciler) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.state = ReconcilerLoading
	r.generation++
	generation := r.generation
	r.mu.Unlock()

	presentations, err := r.api.List(ctx, r.owner)

	r.mu.Lock()
	defer r.mu.Unlock()

	if generation != r.generation {
		// A newer refresh started while this one was in flight; its result wins.
		return err
	}
	if err != nil {
		r.lastErr = err
		return fmt.Errorf("refresh presentations: %w", err)
	}

	entries := make(map[domain.PresentationID]*shadowEntry, len(presentations))
	order := make([]domain.PresentationID, 0, len(presentations))
	for _, presentation := range presentations {
		if _, dup := entries[presentation.ID]; dup {
			continue
		}
		entries[presentation.ID] = &shadowEntry{canonical: presentation, draft: presentation.Name}
		order = append(order, presentation.ID)
	}

	r.entries = entries
	r.order = order
	r.lastErr = nil
	r.state = ReconcilerReady

	return nil
}

// Edit replaces the draft name of one entry. It never contacts the service.
func (r *ListReconciler) Edit(id domain.PresentationID, draft string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != ReconcilerReady {
		return domain.ErrNotReady
	}
	entry, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	entry.draft = draft

	return nil
}

// Commit renames the entry when its draft differs from the canonical name and then
// refreshes the list. It reports whether a rename was accepted. A failed rename
// leaves the draft untouched so the caller can retry.
func (r *ListReconciler) Commit(ctx context.Context, id domain.PresentationID) (bool, error) {
	lock := r.commitLock(id)
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	if r.state != ReconcilerReady {
		r.mu.Unlock()
		return false, domain.ErrNotReady
	}
	entry, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return false, domain.ErrNotFound
	}
	draft := entry.draft
	unchanged := draft == entry.canonical.Name
	r.mu.Unlock()

	if unchanged {
		return false, nil
	}

	if _, err := r.api.Rename(ctx, id, r.owner, draft); err != nil {
		return false, fmt.Errorf("rename presentation %s: %w", id, err)
	}

	if err := r.Refresh(ctx); err != nil {
		return true, err
	}

	return true, nil
}

// Entries returns the drafts in canonical order.
func (r *ListReconciler) Entries() []ShadowEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ShadowEntry, 0, len(r.order))
	for _, id := range r.order {
		entry := r.entries[id]
		out = append(out, ShadowEntry{
			ID:            id,
			Name:          entry.draft,
			CanonicalName: entry.canonical.Name,
			PageCount:     entry.canonical.PageCount(),
			Dirty:         entry.draft != entry.canonical.Name,
		})
	}

	return out
}

// Create adds a presentation for the owner and reloads the list. An empty name
// lets the service pick its placeholder.
func (r *ListReconciler) Create(ctx context.Context, name string) (domain.Presentation, error) {
	created, err := r.api.Create(ctx, r.owner, name, nil)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("create presentation: %w", err)
	}

	if err := r.Refresh(ctx); err != nil {
		return created, err
	}

	return created, nil
}

// Remove deletes a presentation and reloads the list. A presentation that is
// already gone is still reported, after the list has been resynchronized.
func (r *ListReconciler) Remove(ctx context.Context, id domain.PresentationID) error {
	removeErr := r.api.Remove(ctx, id)
	if removeErr != nil && !errors.Is(removeErr, domain.ErrNotFound) {
		return fmt.Errorf("remove presentation %s: %w", id, removeErr)
	}

	r.dropCommitLock(id)

	if err := r.Refresh(ctx); err != nil {
		return err
	}
	if removeErr != nil {
		return fmt.Errorf("remove presentation %s: %w", id, removeErr)
	}

	return nil
}

func (r *ListReconciler) commitLock(id domain.PresentationID) *sync.Mutex {
	r.commitMu.Lock()
	defer r.commitMu.Unlock()

	if lock, ok := r.commitLocks[id]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	r.commitLocks[id] = lock
	return lock
}

func (r *ListReconciler) dropCommitLock(id domain.PresentationID) {
	r.commitMu.Lock()
	defer r.commitMu.Unlock()
	delete(r.commitLocks, id)
}
