package listing

import (
	"errors"
	"strings"
)

var (
	ErrInvalidTitle       = errors.New("title must be between 1 and 120 characters")
	ErrInvalidDescription = errors.New("description must be between 1 and 5000 characters")
	ErrInvalidLocation    = errors.New("province and city are required")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrFreeWithPrice      = errors.New("free listing cannot carry a price")
)

const (
	maxTitleLen       = 120
	maxDescriptionLen = 5000
)

type Title struct {
	value string
}

func NewTitle(value string) (Title, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || len([]rune(trimmed)) > maxTitleLen {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: trimmed}, nil
}

func (t Title) Value() string { return t.value }

type Description struct {
	value string
}

func NewDescription(value string) (Description, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || len([]rune(trimmed)) > maxDescriptionLen {
		return Description{}, ErrInvalidDescription
	}
	return Description{value: trimmed}, nil
}

func (d Description) Value() string { return d.value }

type Location struct {
	province string
	city     string
}

func NewLocation(province, city string) (Location, error) {
	province = strings.TrimSpace(province)
	city = strings.TrimSpace(city)
	if province == "" || city == "" {
		return Location{}, ErrInvalidLocation
	}
	return Location{province: province, city: city}, nil
}

func (l Location) Province() string { return l.province }
func (l Location) City() string     { return l.city }

// Price is nil-able at the entity level: a free listing has no price at all.
type Price struct {
	cents int64
}

func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }
