package httpapi

import (
	"time"

	"github.com/Cenagaurav77/Present-App/internal/domain"
)

const maxBodyBytes = 1 << 20

const (
	codeNotFound   = "not_found"
	codeValidation = "validation"
	codeConnection = "connection"
	codeInternal   = "internal"
)

type PresentationJSON struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"ownerId"`
	Name      string        `json:"name"`
	Pages     []domain.Page `json:"pages"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

type listResponse struct {
	Body []PresentationJSON `json:"body"`
}

type createRequest struct {
	OwnerID string        `json:"ownerId"`
	Name    string        `json:"name"`
	Pages   []domain.Page `json:"pages"`
}

type renameRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
}

type savePagesRequest struct {
	ID      string        `json:"id"`
	OwnerID string        `json:"ownerId"`
	Pages   []domain.Page `json:"pages"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ToJSON converts a presentation to its wire shape.
func ToJSON(presentation domain.Presentation) PresentationJSON {
	pages := presentation.Pages
	if pages == nil {
		pages = []domain.Page{}
	}

	out := PresentationJSON{
		ID:      string(presentation.ID),
		OwnerID: string(presentation.OwnerID),
		Name:    presentation.Name,
		Pages:   pages,
	}
	if !presentation.CreatedAt.IsZero() {
		createdAt := presentation.CreatedAt.UTC()
		out.CreatedAt = &createdAt
	}
	if !presentation.UpdatedAt.IsZero() {
		updatedAt := presentation.UpdatedAt.UTC()
		out.UpdatedAt = &updatedAt
	}

	return out
}

func FromJSON(payload PresentationJSON) domain.Presentation {
	presentation := domain.Presentation{
		ID:      domain.PresentationID(payload.ID),
		OwnerID: domain.OwnerID(payload.OwnerID),
		Name:    payload.Name,
		Pages:   payload.Pages,
	}
	if presentation.Pages == nil {
		presentation.Pages = []domain.Page{}
	}
	if payload.CreatedAt != nil {
		presentation.CreatedAt = *payload.CreatedAt
	}
	if payload.UpdatedAt != nil {
		presentation.UpdatedAt = *payload.UpdatedAt
	}

	return presentation
}
