package promotion

import "errors"

var ErrUnknownKind = errors.New("unknown promotion kind")

// Kind selects which visibility window a purchase extends. Each kind maps to
// exactly one listing column, so adding a third tier is a matter of adding a
// constant and its target field.
type Kind string

const (
	// KindFeatured pins the listing to the top of its category pages.
	KindFeatured Kind = "featured"
	// KindPremium shows the listing on the home page.
	KindPremium Kind = "premium"
)

func NewKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindFeatured, KindPremium:
		return Kind(value), nil
	default:
		return "", ErrUnknownKind
	}
}

func (k Kind) String() string {
	return string(k)
}
