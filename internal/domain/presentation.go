package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNameLength is the longest presentation name, in runes, the store accepts.
const MaxNameLength = 200

const untitledLayout = "Jan 2, 2006, 3:04 PM"

type PresentationID string
type OwnerID string

type Presentation struct {
	ID        PresentationID
	OwnerID   OwnerID
	Name      string
	Pages     []Page
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Page is a single slide. Its contents belong to the canvas and are kept as an
// undecoded JSON object.
type Page json.RawMessage

func (p Page) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("{}"), nil
	}
	return json.RawMessage(p).MarshalJSON()
}

func (p *Page) UnmarshalJSON(data []byte) error {
	if p == nil {
		return fmt.Errorf("page: UnmarshalJSON on nil pointer")
	}
	*p = append((*p)[:0], data...)
	return nil
}

// Validate reports whether the page holds a JSON object.
func (p Page) Validate() error {
	trimmed := strings.TrimSpace(string(p))
	if trimmed == "" {
		return nil
	}
	if !json.Valid([]byte(trimmed)) || !strings.HasPrefix(trimmed, "{") {
		return fmt.Errorf("page must be a JSON object")
	}
	return nil
}

func (p Presentation) PageCount() int {
	return len(p.Pages)
}

// UntitledName is the placeholder used when a presentation is created without a name.
func UntitledName(now time.Time) string {
	return "Untitled - " + now.Format(untitledLayout)
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	return validateNameLength(name)
}

func validateNameLength(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", MaxNameLength)}
	}
	return nil
}

// ValidateOptionalName accepts an empty name, which callers replace with a default.
func ValidateOptionalName(name string) error {
	return validateNameLength(name)
}

func ValidatePages(pages []Page) error {
	for i, page := range pages {
		if err := page.Validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("pages[%d]", i), Reason: err.Error()}
		}
	}
	return nil
}

func (id PresentationID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	return nil
}

func (id OwnerID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return &ValidationError{Field: "ownerId", Reason: "is required"}
	}
	return nil
}
