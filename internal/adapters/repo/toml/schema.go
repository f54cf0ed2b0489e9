package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version       int                  `toml:"version"`
	Presentations []presentationSchema `toml:"presentations"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported presentations schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// presentationSchema keeps each page as its JSON text so canvas content survives
// the TOML round trip untouched.
type presentationSchema struct {
	ID        string   `toml:"id"`
	OwnerID   string   `toml:"owner_id"`
	Name      string   `toml:"name"`
	Pages     []string `toml:"pages"`
	CreatedAt string   `toml:"created_at"`
	UpdatedAt string   `toml:"updated_at"`
}
