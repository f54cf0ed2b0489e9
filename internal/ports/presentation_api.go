package ports

import (
	"context"

	"github.com/Cenagaurav77/Present-App/internal/domain"
)

// PresentationAPI is the client's view of the presentation service.
type PresentationAPI interface {
	List(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error)
	Get(ctx context.Context, id domain.PresentationID) (domain.Presentation, error)
	Create(ctx context.Context, owner domain.OwnerID, name string, pages []domain.Page) (domain.Presentation, error)
	Rename(ctx context.Context, id domain.PresentationID, owner domain.OwnerID, name string) (domain.Presentation, error)
	Remove(ctx context.Context, id domain.PresentationID) error
}
