package listing

import (
	"errors"
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"

	"github.com/google/uuid"
)

var (
	ErrAlreadyDeleted = errors.New("listing is already deleted")
	ErrNotPublished   = errors.New("listing is not published")
)

// Listing is a classified ad. Elevated visibility (featured, premium) is a
// pair of expiry timestamps mutated only by the promotion ledger; whether a
// listing currently enjoys it is derived by comparing against the clock, never
// stored.
type Listing struct {
	id            uuid.UUID
	userID        uuid.UUID
	categoryID    uuid.UUID
	title         Title
	description   Description
	price         *Price
	isFree        bool
	location      Location
	youtubeURL    *string
	status        Status
	featuredUntil *time.Time
	premiumUntil  *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewListing(
	userID, categoryID uuid.UUID,
	title Title,
	description Description,
	price *Price,
	isFree bool,
	location Location,
	youtubeURL *string,
) (*Listing, error) {
	if isFree && price != nil {
		return nil, ErrFreeWithPrice
	}

	return &Listing{
		id:          uuid.New(),
		userID:      userID,
		categoryID:  categoryID,
		title:       title,
		description: description,
		price:       price,
		isFree:      isFree,
		location:    location,
		youtubeURL:  youtubeURL,
		status:      StatusPublished,
	}, nil
}

func ReconstructListing(
	id, userID, categoryID uuid.UUID,
	title Title,
	description Description,
	price *Price,
	isFree bool,
	location Location,
	youtubeURL *string,
	status Status,
	featuredUntil, premiumUntil *time.Time,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:            id,
		userID:        userID,
		categoryID:    categoryID,
		title:         title,
		description:   description,
		price:         price,
		isFree:        isFree,
		location:      location,
		youtubeURL:    youtubeURL,
		status:        status,
		featuredUntil: featuredUntil,
		premiumUntil:  premiumUntil,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.userID == userID
}

func (l *Listing) IsFeatured(now time.Time) bool {
	return promotion.WindowActive(l.featuredUntil, now)
}

func (l *Listing) IsPremium(now time.Time) bool {
	return promotion.WindowActive(l.premiumUntil, now)
}

// WindowFor returns the expiry backing the given promotion kind.
func (l *Listing) WindowFor(kind promotion.Kind) *time.Time {
	if kind == promotion.KindPremium {
		return l.premiumUntil
	}
	return l.featuredUntil
}

func (l *Listing) Pause() error {
	if l.status == StatusDeleted {
		return ErrAlreadyDeleted
	}
	l.status = StatusPaused
	return nil
}

func (l *Listing) Publish() error {
	if l.status == StatusDeleted {
		return ErrAlreadyDeleted
	}
	l.status = StatusPublished
	return nil
}

// MarkDeleted soft-deletes. Promotion windows are left untouched; they expire
// naturally.
func (l *Listing) MarkDeleted() error {
	if l.status == StatusDeleted {
		return ErrAlreadyDeleted
	}
	l.status = StatusDeleted
	return nil
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) UserID() uuid.UUID        { return l.userID }
func (l *Listing) CategoryID() uuid.UUID    { return l.categoryID }
func (l *Listing) Title() Title             { return l.title }
func (l *Listing) Description() Description { return l.description }
func (l *Listing) Price() *Price            { return l.price }
func (l *Listing) IsFree() bool             { return l.isFree }
func (l *Listing) Location() Location       { return l.location }
func (l *Listing) YoutubeURL() *string      { return l.youtubeURL }
func (l *Listing) Status() Status           { return l.status }
func (l *Listing) FeaturedUntil() *time.Time { return l.featuredUntil }
func (l *Listing) PremiumUntil() *time.Time  { return l.premiumUntil }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time     { return l.updatedAt }
