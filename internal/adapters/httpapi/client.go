package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to a presentation server over HTTP.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.PresentationAPI = Client{}

func (c Client) List(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error) {
	var payload listResponse
	if err := c.do(ctx, http.MethodGet, "api/presentation/user/"+url.PathEscape(string(owner)), nil, http.StatusOK, &payload); err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}

	presentations := make([]domain.Presentation, 0, len(payload.Body))
	for _, item := range payload.Body {
		presentations = append(presentations, FromJSON(item))
	}
	return presentations, nil
}

func (c Client) Get(ctx context.Context, id domain.PresentationID) (domain.Presentation, error) {
	var payload PresentationJSON
	if err := c.do(ctx, http.MethodGet, "api/presentation/"+url.PathEscape(string(id)), nil, http.StatusOK, &payload); err != nil {
		return domain.Presentation{}, fmt.Errorf("get presentation: %w", err)
	}
	return FromJSON(payload), nil
}

func (c Client) Create(ctx context.Context, owner domain.OwnerID, name string, pages []domain.Page) (domain.Presentation, error) {
	if pages == nil {
		pages = []domain.Page{}
	}

	var payload PresentationJSON
	req := createRequest{OwnerID: string(owner), Name: name, Pages: pages}
	if err := c.do(ctx, http.MethodPost, "api/presentation/create", req, http.StatusCreated, &payload); err != nil {
		return domain.Presentation{}, fmt.Errorf("create presentation: %w", err)
	}
	return FromJSON(payload), nil
}

func (c Client) Rename(ctx context.Context, id domain.PresentationID, owner domain.OwnerID, name string) (domain.Presentation, error) {
	var payload PresentationJSON
	req := renameRequest{ID: string(id), OwnerID: string(owner), Name: name}
	if err := c.do(ctx, http.MethodPatch, "api/presentation/update-name", req, http.StatusOK, &payload); err != nil {
		return domain.Presentation{}, fmt.Errorf("rename presentation: %w", err)
	}
	return FromJSON(payload), nil
}

func (c Client) SavePages(ctx context.Context, id domain.PresentationID, owner domain.OwnerID, pages []domain.Page) (domain.Presentation, error) {
	if pages == nil {
		pages = []domain.Page{}
	}

	var payload PresentationJSON
	req := savePagesRequest{ID: string(id), OwnerID: string(owner), Pages: pages}
	if err := c.do(ctx, http.MethodPut, "api/presentation/update-pages", req, http.StatusOK, &payload); err != nil {
		return domain.Presentation{}, fmt.Errorf("save presentation pages: %w", err)
	}
	return FromJSON(payload), nil
}

func (c Client) Remove(ctx context.Context, id domain.PresentationID) error {
	if err := c.do(ctx, http.MethodDelete, "api/presentation/"+url.PathEscape(string(id)), nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("remove presentation: %w", err)
	}
	return nil
}

func (c Client) do(ctx context.Context, method string, path string, body any, wantStatus int, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &domain.ConnectionError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeAPIError turns an error body back into the matching domain error.
func decodeAPIError(resp *http.Response) error {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil || payload.Error.Code == "" {
		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	detail := payload.Error
	switch detail.Code {
	case codeNotFound:
		return domain.ErrNotFound
	case codeValidation:
		return &domain.ValidationError{Field: detail.Field, Reason: validationReason(detail)}
	case codeConnection:
		return &domain.ConnectionError{Err: errors.New(detail.Message)}
	default:
		return fmt.Errorf("server error (status %d): %s", resp.StatusCode, detail.Message)
	}
}

func validationReason(detail errorDetail) string {
	prefix := "invalid " + detail.Field + ": "
	if detail.Field != "" && len(detail.Message) > len(prefix) && detail.Message[:len(prefix)] == prefix {
		return detail.Message[len(prefix):]
	}
	return detail.Message
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	if parsed.Path == "" {
		parsed.Path = "/"
	} else if parsed.Path[len(parsed.Path)-1] != '/' {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
