package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/application"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"go.uber.org/zap"
)

const (
	allowedMethods = "GET,DELETE,PATCH,POST,PUT"
	allowedHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"

	shutdownTimeout = 5 * time.Second
)

// PresentationService is the store the server exposes.
type PresentationService interface {
	ListByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error)
	Get(ctx context.Context, id domain.PresentationID) (domain.Presentation, error)
	Create(ctx context.Context, cmd application.CreatePresentationCommand) (domain.Presentation, error)
	Rename(ctx context.Context, cmd application.RenamePresentationCommand) (domain.Presentation, error)
	SavePages(ctx context.Context, cmd application.SavePagesCommand) (domain.Presentation, error)
	Remove(ctx context.Context, id domain.PresentationID) error
}

type ServerConfig struct {
	AllowedOrigin    string
	AllowCredentials bool
	Logger           *zap.Logger
	// StoreState, when set, is reported by /healthz as the document store connection state.
	StoreState func() string
}

type Server struct {
	service PresentationService
	cfg     ServerConfig
	logger  *zap.Logger
}

func NewServer(service PresentationService, cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.AllowedOrigin) == "" {
		cfg.AllowedOrigin = "*"
	}

	return &Server{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/presentation/user/{ownerId}", s.handleList)
	api.HandleFunc("POST /api/presentation/create", s.handleCreate)
	api.HandleFunc("PATCH /api/presentation/update-name", s.handleRename)
	api.HandleFunc("PUT /api/presentation/update-pages", s.handleSavePages)
	api.HandleFunc("GET /api/presentation/{id}", s.handleGet)
	api.HandleFunc("DELETE /api/presentation/{id}", s.handleRemove)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("/api/", s.withCORS(api))

	return s.withRequestLog(mux)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
	if s.cfg.StoreState != nil {
		_, _ = w.Write([]byte("store: " + s.cfg.StoreState() + "\n"))
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	presentations, err := s.service.ListByOwner(r.Context(), domain.OwnerID(r.PathValue("ownerId")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := make([]PresentationJSON, 0, len(presentations))
	for _, presentation := range presentations {
		body = append(body, ToJSON(presentation))
	}
	s.writeJSON(w, http.StatusOK, listResponse{Body: body})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	presentation, err := s.service.Get(r.Context(), domain.PresentationID(r.PathValue("id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ToJSON(presentation))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.service.Create(r.Context(), application.CreatePresentationCommand{
		OwnerID: domain.OwnerID(req.OwnerID),
		Name:    req.Name,
		Pages:   req.Pages,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, ToJSON(created))
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	renamed, err := s.service.Rename(r.Context(), application.RenamePresentationCommand{
		ID:      domain.PresentationID(req.ID),
		OwnerID: domain.OwnerID(req.OwnerID),
		Name:    req.Name,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ToJSON(renamed))
}

func (s *Server) handleSavePages(w http.ResponseWriter, r *http.Request) {
	var req savePagesRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	saved, err := s.service.SavePages(r.Context(), application.SavePagesCommand{
		ID:      domain.PresentationID(req.ID),
		OwnerID: domain.OwnerID(req.OwnerID),
		Pages:   req.Pages,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ToJSON(saved))
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Remove(r.Context(), domain.PresentationID(r.PathValue("id"))); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &domain.ValidationError{Field: "body", Reason: err.Error()}
	}
	if dec.More() {
		return &domain.ValidationError{Field: "body", Reason: "unexpected data after JSON object"}
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classifyError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	s.writeJSON(w, status, errorResponse{Error: detail})
}

func classifyError(err error) (int, errorDetail) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, errorDetail{Code: codeValidation, Message: validationErr.Error(), Field: validationErr.Field}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorDetail{Code: codeValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorDetail{Code: codeNotFound, Message: domain.ErrNotFound.Error()}
	case errors.Is(err, domain.ErrConnection):
		return http.StatusServiceUnavailable, errorDetail{Code: codeConnection, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, errorDetail{Code: codeConnection, Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorDetail{Code: codeInternal, Message: "internal error"}
	}
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		origin := s.cfg.AllowedOrigin
		if s.cfg.AllowCredentials {
			// Browsers reject a wildcard origin on credentialed requests.
			if requestOrigin := r.Header.Get("Origin"); origin == "*" && requestOrigin != "" {
				origin = requestOrigin
				header.Add("Vary", "Origin")
			}
			header.Set("Access-Control-Allow-Credentials", "true")
		}
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Methods", allowedMethods)
		header.Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
