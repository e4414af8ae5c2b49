package category

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName = errors.New("category name is required")
	ErrInvalidSlug = errors.New("invalid category slug")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category is reference data seeded at deploy time; the API only reads it.
type Category struct {
	id        uuid.UUID
	name      string
	slug      string
	sortOrder int32
}

func NewCategory(id uuid.UUID, name, slug string, sortOrder int32) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	return &Category{id: id, name: name, slug: slug, sortOrder: sortOrder}, nil
}

func (c *Category) ID() uuid.UUID    { return c.id }
func (c *Category) Name() string     { return c.name }
func (c *Category) Slug() string     { return c.slug }
func (c *Category) SortOrder() int32 { return c.sortOrder }
