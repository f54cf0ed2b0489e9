package ports

import (
	"context"

	"github.com/Cenagaurav77/Present-App/internal/domain"
)

// PresentationRepository is the document store. Insert assigns the ID; Update and
// Delete return domain.ErrNotFound when nothing matched.
type PresentationRepository interface {
	ListByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error)
	GetByID(ctx context.Context, id domain.PresentationID) (domain.Presentation, error)
	Insert(ctx context.Context, presentation domain.Presentation) (domain.Presentation, error)
	Update(ctx context.Context, presentation domain.Presentation) error
	Delete(ctx context.Context, id domain.PresentationID) error
}
