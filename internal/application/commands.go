package application

import "github.com/Cenagaurav77/Present-App/internal/domain"

type CreatePresentationCommand struct {
	OwnerID domain.OwnerID
	// An empty Name gets a timestamped placeholder; any other value is kept as given.
	Name  string
	Pages []domain.Page
}

type RenamePresentationCommand struct {
	ID      domain.PresentationID
	OwnerID domain.OwnerID
	Name    string
}

type SavePagesCommand struct {
	ID      domain.PresentationID
	OwnerID domain.OwnerID
	Pages   []domain.Page
}
