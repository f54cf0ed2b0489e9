package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/adapters/store/conncache"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const (
	driverName              = "sqlite"
	defaultOperationTimeout = 10 * time.Second
	timeLayout              = time.RFC3339Nano
)

type Config struct {
	Path             string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
	Logger           *zap.Logger
}

// Repository stores presentations as JSON page documents in a SQLite database. The
// database handle is opened lazily through a connection cache on first use.
type Repository struct {
	conns            *conncache.Cache[*sql.DB]
	operationTimeout time.Duration
}

var _ ports.PresentationRepository = (*Repository)(nil)

func NewRepository(cfg Config) (*Repository, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("sqlite database path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite database path: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	operationTimeout := cfg.OperationTimeout
	if operationTimeout <= 0 {
		operationTimeout = defaultOperationTimeout
	}

	dial := func(ctx context.Context) (*sql.DB, error) {
		return openDatabase(ctx, filepath.Clean(absPath))
	}

	return &Repository{
		conns: conncache.New(dial, conncache.Config[*sql.DB]{
			Timeout: cfg.ConnectTimeout,
			Logger:  logger.Named("conncache").With(zap.String("store", "sqlite"), zap.String("path", absPath)),
			Discard: func(db *sql.DB) { _ = db.Close() },
		}),
		operationTimeout: operationTimeout,
	}, nil
}

// ConnectionState is the connection cache state, reported by the server health check.
func (r *Repository) ConnectionState() conncache.State {
	return r.conns.State()
}

func (r *Repository) Close() error {
	return r.conns.Close(func(db *sql.DB) error { return db.Close() })
}

func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS presentations (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		owner_id   TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		pages      TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_presentations_owner ON presentations(owner_id, seq);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) ListByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error) {
	ctx, cancel := r.operationContext(ctx)
	defer cancel()

	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, owner_id, name, pages, created_at, updated_at
		FROM presentations
		WHERE owner_id = ?
		ORDER BY seq`, string(owner))
	if err != nil {
		return nil, fmt.Errorf("query presentations: %w", err)
	}
	defer rows.Close()

	presentations := make([]domain.Presentation, 0)
	for rows.Next() {
		presentation, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		presentations = append(presentations, presentation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presentations: %w", err)
	}

	return presentations, nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.PresentationID) (domain.Presentation, error) {
	ctx, cancel := r.operationContext(ctx)
	defer cancel()

	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return domain.Presentation{}, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, pages, created_at, updated_at
		FROM presentations
		WHERE id = ?`, string(id))
	presentation, err := scanPresentation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Presentation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Presentation{}, err
	}

	return presentation, nil
}

func (r *Repository) Insert(ctx context.Context, presentation domain.Presentation) (domain.Presentation, error) {
	ctx, cancel := r.operationContext(ctx)
	defer cancel()

	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return domain.Presentation{}, err
	}

	presentation.ID = domain.PresentationID(uuid.NewString())
	if presentation.Pages == nil {
		presentation.Pages = []domain.Page{}
	}
	pages, err := encodePages(presentation.Pages)
	if err != nil {
		return domain.Presentation{}, err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO presentations (id, owner_id, name, pages, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(presentation.ID),
		string(presentation.OwnerID),
		presentation.Name,
		pages,
		formatTime(presentation.CreatedAt),
		formatTime(presentation.UpdatedAt),
	)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("insert presentation: %w", err)
	}

	return presentation, nil
}

// Update replaces name, pages and updated_at of the document matching both ID and owner.
func (r *Repository) Update(ctx context.Context, presentation domain.Presentation) error {
	ctx, cancel := r.operationContext(ctx)
	defer cancel()

	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return err
	}

	pages, err := encodePages(presentation.Pages)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE presentations
		SET name = ?, pages = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		presentation.Name,
		pages,
		formatTime(presentation.UpdatedAt),
		string(presentation.ID),
		string(presentation.OwnerID),
	)
	if err != nil {
		return fmt.Errorf("update presentation: %w", err)
	}

	return requireAffected(result)
}

func (r *Repository) Delete(ctx context.Context, id domain.PresentationID) error {
	ctx, cancel := r.operationContext(ctx)
	defer cancel()

	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM presentations WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}

	return requireAffected(result)
}

func (r *Repository) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, r.operationTimeout)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPresentation(row rowScanner) (domain.Presentation, error) {
	var (
		id, owner, name, pages string
		createdAt, updatedAt   string
	)
	if err := row.Scan(&id, &owner, &name, &pages, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Presentation{}, err
		}
		return domain.Presentation{}, fmt.Errorf("scan presentation: %w", err)
	}

	decoded, err := decodePages(pages)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("decode pages of %s: %w", id, err)
	}

	return domain.Presentation{
		ID:        domain.PresentationID(id),
		OwnerID:   domain.OwnerID(owner),
		Name:      name,
		Pages:     decoded,
		CreatedAt: parseTime(createdAt),
		UpdatedAt: parseTime(updatedAt),
	}, nil
}

func encodePages(pages []domain.Page) (string, error) {
	if pages == nil {
		pages = []domain.Page{}
	}
	data, err := json.Marshal(pages)
	if err != nil {
		return "", fmt.Errorf("encode pages: %w", err)
	}
	return string(data), nil
}

func decodePages(raw string) ([]domain.Page, error) {
	pages := []domain.Page{}
	if strings.TrimSpace(raw) == "" {
		return pages, nil
	}
	if err := json.Unmarshal([]byte(raw), &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(timeLayout)
}
