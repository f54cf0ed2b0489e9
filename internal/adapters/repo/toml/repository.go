package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/adapters/store/conncache"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

const (
	documentsFileMode = 0o600
	documentsDirMode  = 0o700
	tempFilePattern   = ".presentations-*.toml.tmp"

	defaultOperationTimeout = 10 * time.Second
)

type Config struct {
	Path             string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
	Logger           *zap.Logger
}

// Repository keeps every presentation in a single TOML document file. Writes go
// through a temp file and an atomic rename.
type Repository struct {
	conns            *conncache.Cache[*documentFile]
	operationTimeout time.Duration
}

// documentFile is the connection handle: a verified, writable location plus the
// lock shared by every repository pointing at the same path.
type documentFile struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PresentationRepository = (*Repository)(nil)

func NewRepository(cfg Config) (*Repository, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("presentations path is empty")
	}
	documentsPath, err := normalizeDocumentsPath(cfg.Path)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	operationTimeout := cfg.OperationTimeout
	if operationTimeout <= 0 {
		operationTimeout = defaultOperationTimeout
	}

	dial := func(ctx context.Context) (*documentFile, error) {
		return openDocumentFile(ctx, documentsPath)
	}

	return &Repository{
		conns: conncache.New(dial, conncache.Config[*documentFile]{
			Timeout: cfg.ConnectTimeout,
			Logger:  logger.Named("conncache").With(zap.String("store", "toml"), zap.String("path", documentsPath)),
		}),
		operationTimeout: operationTimeout,
	}, nil
}

// ConnectionState is the connection cache state, reported by the server health check.
func (r *Repository) ConnectionState() conncache.State {
	return r.conns.State()
}

func (r *Repository) Close() error {
	return r.conns.Close(nil)
}

func openDocumentFile(ctx context.Context, path string) (*documentFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), documentsDirMode); err != nil {
		return nil, fmt.Errorf("create presentations directory: %w", err)
	}

	file := &documentFile{path: path, mu: lockForPath(path)}

	file.mu.RLock()
	defer file.mu.RUnlock()
	if _, err := file.readSchema(); err != nil {
		return nil, err
	}

	return file, nil
}

func (r *Repository) ListByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error) {
	file, ctx, cancel, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	file.mu.RLock()
	defer file.mu.RUnlock()

	schema, err := file.readSchema()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	presentations := make([]domain.Presentation, 0, len(schema.Presentations))
	for _, entry := range schema.Presentations {
		if entry.OwnerID != string(owner) {
			continue
		}
		presentations = append(presentations, fromSchema(entry))
	}

	return presentations, nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.PresentationID) (domain.Presentation, error) {
	file, _, cancel, err := r.acquire(ctx)
	if err != nil {
		return domain.Presentation{}, err
	}
	defer cancel()

	file.mu.RLock()
	defer file.mu.RUnlock()

	schema, err := file.readSchema()
	if err != nil {
		return domain.Presentation{}, err
	}

	for _, entry := range schema.Presentations {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Presentation{}, domain.ErrNotFound
}

func (r *Repository) Insert(ctx context.Context, presentation domain.Presentation) (domain.Presentation, error) {
	file, ctx, cancel, err := r.acquire(ctx)
	if err != nil {
		return domain.Presentation{}, err
	}
	defer cancel()

	file.mu.Lock()
	defer file.mu.Unlock()

	schema, err := file.readSchema()
	if err != nil {
		return domain.Presentation{}, err
	}

	presentation.ID = domain.PresentationID(uuid.NewString())
	if presentation.Pages == nil {
		presentation.Pages = []domain.Page{}
	}
	schema.Presentations = append(schema.Presentations, toSchema(presentation))

	if err := ctx.Err(); err != nil {
		return domain.Presentation{}, err
	}
	if err := file.writeSchema(schema); err != nil {
		return domain.Presentation{}, err
	}

	return presentation, nil
}

func (r *Repository) Update(ctx context.Context, presentation domain.Presentation) error {
	file, ctx, cancel, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	file.mu.Lock()
	defer file.mu.Unlock()

	schema, err := file.readSchema()
	if err != nil {
		return err
	}

	updated := false
	for i := range schema.Presentations {
		entry := &schema.Presentations[i]
		if entry.ID != string(presentation.ID) || entry.OwnerID != string(presentation.OwnerID) {
			continue
		}
		encoded := toSchema(presentation)
		entry.Name = encoded.Name
		entry.Pages = encoded.Pages
		entry.UpdatedAt = encoded.UpdatedAt
		updated = true
		break
	}
	if !updated {
		return domain.ErrNotFound
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return file.writeSchema(schema)
}

func (r *Repository) Delete(ctx context.Context, id domain.PresentationID) error {
	file, ctx, cancel, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	file.mu.Lock()
	defer file.mu.Unlock()

	schema, err := file.readSchema()
	if err != nil {
		return err
	}

	kept := schema.Presentations[:0]
	removed := false
	for _, entry := range schema.Presentations {
		if entry.ID == string(id) {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		return domain.ErrNotFound
	}
	schema.Presentations = kept

	if err := ctx.Err(); err != nil {
		return err
	}

	return file.writeSchema(schema)
}

func (r *Repository) acquire(ctx context.Context) (*documentFile, context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}

	opCtx, cancel := ctx, context.CancelFunc(func() {})
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		opCtx, cancel = context.WithTimeout(ctx, r.operationTimeout)
	}

	file, err := r.conns.Acquire(opCtx)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return file, opCtx, cancel, nil
}

func (f *documentFile) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			schema := fileSchema{}
			schema.applyDefaults()
			return schema, nil
		}
		return fileSchema{}, fmt.Errorf("read presentations file: %w", err)
	}

	var schema fileSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return fileSchema{}, fmt.Errorf("decode presentations file: %w", err)
	}
	if err := schema.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	schema.applyDefaults()

	return schema, nil
}

func (f *documentFile) writeSchema(schema fileSchema) error {
	schema.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(f.path), documentsDirMode); err != nil {
		return fmt.Errorf("create presentations directory: %w", err)
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode presentations file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(f.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp presentations file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp presentations file: %w", err)
	}

	if err := tempFile.Chmod(documentsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp presentations file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp presentations file: %w", err)
	}

	if err := os.Rename(tempName, f.path); err != nil {
		return fmt.Errorf("replace presentations file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizeDocumentsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve presentations path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(presentation domain.Presentation) presentationSchema {
	pages := make([]string, 0, len(presentation.Pages))
	for _, page := range presentation.Pages {
		if len(page) == 0 {
			pages = append(pages, "{}")
			continue
		}
		pages = append(pages, string(page))
	}

	return presentationSchema{
		ID:        string(presentation.ID),
		OwnerID:   string(presentation.OwnerID),
		Name:      presentation.Name,
		Pages:     pages,
		CreatedAt: formatTime(presentation.CreatedAt),
		UpdatedAt: formatTime(presentation.UpdatedAt),
	}
}

func fromSchema(entry presentationSchema) domain.Presentation {
	pages := make([]domain.Page, 0, len(entry.Pages))
	for _, page := range entry.Pages {
		pages = append(pages, domain.Page(page))
	}

	return domain.Presentation{
		ID:        domain.PresentationID(entry.ID),
		OwnerID:   domain.OwnerID(entry.OwnerID),
		Name:      entry.Name,
		Pages:     pages,
		CreatedAt: parseTime(entry.CreatedAt),
		UpdatedAt: parseTime(entry.UpdatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
