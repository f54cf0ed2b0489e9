package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/adapters/httpapi"
	listingadapter "github.com/Cenagaurav77/Present-App/internal/adapters/render/listing"
	sqliterepo "github.com/Cenagaurav77/Present-App/internal/adapters/repo/sqlite"
	tomlrepo "github.com/Cenagaurav77/Present-App/internal/adapters/repo/toml"
	"github.com/Cenagaurav77/Present-App/internal/adapters/store/conncache"
	"github.com/Cenagaurav77/Present-App/internal/config"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/logging"
	"github.com/Cenagaurav77/Present-App/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errOwnerRequired = errors.New("owner is required (pass --owner or set user.id / PRESENT_USER_ID)")

type app struct {
	cfg          config.Config
	logger       *zap.Logger
	api          apiClient
	listRenderer func([]domain.Presentation, listingadapter.RenderOptions) (string, error)
	openStore    func() (storeRepository, error)
	now          func() time.Time
}

// apiClient is the server surface the client commands use.
type apiClient interface {
	ports.PresentationAPI
	SavePages(ctx context.Context, id domain.PresentationID, owner domain.OwnerID, pages []domain.Page) (domain.Presentation, error)
}

type storeRepository interface {
	ports.PresentationRepository
	ConnectionState() conncache.State
	Close() error
}

type wireOptions struct {
	configFile string
	logLevel   string
}

func wireApp(opts wireOptions) (*app, error) {
	v := viper.New()
	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}
	if cfg.File != "" {
		logger.Debug("config loaded", zap.String("file", cfg.File))
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		api: httpapi.Client{
			BaseURL:        cfg.API.URL,
			HTTPClient:     http.DefaultClient,
			RequestTimeout: cfg.API.Timeout,
		},
		listRenderer: listingadapter.Render,
		openStore: func() (storeRepository, error) {
			return openStore(cfg.Store, logger)
		},
		now: time.Now,
	}, nil
}

func openStore(cfg config.StoreConfig, logger *zap.Logger) (storeRepository, error) {
	kind, path, err := config.ParseStoreURI(cfg.URI)
	if err != nil {
		return nil, err
	}

	switch kind {
	case config.StoreSQLite:
		repo, err := sqliterepo.NewRepository(sqliterepo.Config{
			Path:             path,
			ConnectTimeout:   cfg.ConnectTimeout,
			OperationTimeout: cfg.OperationTimeout,
			Logger:           logger,
		})
		if err != nil {
			return nil, fmt.Errorf("wire sqlite repository: %w", err)
		}
		return repo, nil
	case config.StoreTOML:
		repo, err := tomlrepo.NewRepository(tomlrepo.Config{
			Path:             path,
			ConnectTimeout:   cfg.ConnectTimeout,
			OperationTimeout: cfg.OperationTimeout,
			Logger:           logger,
		})
		if err != nil {
			return nil, fmt.Errorf("wire toml repository: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported store kind %q", kind)
	}
}

func (a *app) owner(flagValue string) (domain.OwnerID, error) {
	owner := strings.TrimSpace(flagValue)
	if owner == "" {
		owner = a.cfg.UserID
	}
	if owner == "" {
		return "", errOwnerRequired
	}
	return domain.OwnerID(owner), nil
}
