package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/Cenagaurav77/Present-App/internal/ports"
)

// Service is the presentation store. It validates input, fills defaults and enforces
// ownership; persistence is delegated to the repository. Errors from the repository,
// including connection failures, are returned wrapped but never retried.
type Service struct {
	repo  ports.PresentationRepository
	clock ports.Clock
}

func NewService(repo ports.PresentationRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:  repo,
		clock: clock,
	}
}

func (s *Service) ListByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Presentation, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	presentations, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}

	return presentations, nil
}

func (s *Service) Get(ctx context.Context, id domain.PresentationID) (domain.Presentation, error) {
	if err := id.Validate(); err != nil {
		return domain.Presentation{}, err
	}

	presentation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("get presentation by id: %w", err)
	}

	return presentation, nil
}

func (s *Service) Create(ctx context.Context, cmd CreatePresentationCommand) (domain.Presentation, error) {
	if err := cmd.OwnerID.Validate(); err != nil {
		return domain.Presentation{}, err
	}
	if err := domain.ValidateOptionalName(cmd.Name); err != nil {
		return domain.Presentation{}, err
	}
	if err := domain.ValidatePages(cmd.Pages); err != nil {
		return domain.Presentation{}, err
	}

	now := s.clock.Now()
	name := cmd.Name
	if name == "" {
		name = domain.UntitledName(now)
	}
	pages := cmd.Pages
	if pages == nil {
		pages = []domain.Page{}
	}

	created, err := s.repo.Insert(ctx, domain.Presentation{
		OwnerID:   cmd.OwnerID,
		Name:      name,
		Pages:     pages,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("create presentation: %w", err)
	}

	return created, nil
}

func (s *Service) Rename(ctx context.Context, cmd RenamePresentationCommand) (domain.Presentation, error) {
	if err := cmd.ID.Validate(); err != nil {
		return domain.Presentation{}, err
	}
	if err := cmd.OwnerID.Validate(); err != nil {
		return domain.Presentation{}, err
	}
	if err := domain.ValidateName(cmd.Name); err != nil {
		return domain.Presentation{}, err
	}

	presentation, err := s.ownedPresentation(ctx, cmd.ID, cmd.OwnerID)
	if err != nil {
		return domain.Presentation{}, err
	}

	presentation.Name = cmd.Name
	presentation.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, presentation); err != nil {
		return domain.Presentation{}, fmt.Errorf("save presentation name: %w", err)
	}

	return presentation, nil
}

func (s *Service) SavePages(ctx context.Context, cmd SavePagesCommand) (domain.Presentation, error) {
	if err := cmd.ID.Validate(); err != nil {
		return domain.Presentation{}, err
	}
	if err := cmd.OwnerID.Validate(); err != nil {
		return domain.Presentation{}, err
	}
	if err := domain.ValidatePages(cmd.Pages); err != nil {
		return domain.Presentation{}, err
	}

	presentation, err := s.ownedPresentation(ctx, cmd.ID, cmd.OwnerID)
	if err != nil {
		return domain.Presentation{}, err
	}

	presentation.Pages = cmd.Pages
	if presentation.Pages == nil {
		presentation.Pages = []domain.Page{}
	}
	presentation.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, presentation); err != nil {
		return domain.Presentation{}, fmt.Errorf("save presentation pages: %w", err)
	}

	return presentation, nil
}

func (s *Service) Remove(ctx context.Context, id domain.PresentationID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove presentation: %w", err)
	}

	return nil
}

// ownedPresentation treats a document owned by someone else exactly like a missing one.
func (s *Service) ownedPresentation(ctx context.Context, id domain.PresentationID, owner domain.OwnerID) (domain.Presentation, error) {
	presentation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Presentation{}, domain.ErrNotFound
		}
		return domain.Presentation{}, fmt.Errorf("get presentation by id: %w", err)
	}
	if presentation.OwnerID != owner {
		return domain.Presentation{}, domain.ErrNotFound
	}

	return presentation, nil
}
