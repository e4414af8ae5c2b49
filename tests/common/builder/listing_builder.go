//go:build unit || e2e

package builder

import (
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListingBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Title         string
	Description   string
	PriceCents    *int64
	IsFree        bool
	Province      string
	City          string
	YoutubeURL    *string
	Status        string
	FeaturedUntil *time.Time
	PremiumUntil  *time.Time
}

func NewListingBuilder() *ListingBuilder {
	price := int64(15000)
	return &ListingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CategoryID:  uuid.New(),
		Title:       "Bicicleta de montaña",
		Description: "Bicicleta en buen estado, poco uso.",
		PriceCents:  &price,
		IsFree:      false,
		Province:    "Madrid",
		City:        "Alcalá de Henares",
		Status:      "published",
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	title, err := listing.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}

	description, err := listing.NewDescription(b.Description)
	if err != nil {
		return nil, err
	}

	location, err := listing.NewLocation(b.Province, b.City)
	if err != nil {
		return nil, err
	}

	var price *listing.Price
	if b.PriceCents != nil {
		p, err := listing.NewPrice(*b.PriceCents)
		if err != nil {
			return nil, err
		}
		price = &p
	}

	return listing.NewListing(b.UserID, b.CategoryID, title, description, price, b.IsFree, location, b.YoutubeURL)
}

// BuildReconstructed skips invariant checks so tests can set up arbitrary
// persisted state (expired windows, deleted listings).
func (b *ListingBuilder) BuildReconstructed() *listing.Listing {
	title, _ := listing.NewTitle(b.Title)
	description, _ := listing.NewDescription(b.Description)
	location, _ := listing.NewLocation(b.Province, b.City)

	var price *listing.Price
	if b.PriceCents != nil {
		p, _ := listing.NewPrice(*b.PriceCents)
		price = &p
	}

	now := time.Now()
	return listing.ReconstructListing(
		b.ID, b.UserID, b.CategoryID,
		title, description, price, b.IsFree, location, b.YoutubeURL,
		listing.Status(b.Status),
		b.FeaturedUntil, b.PremiumUntil,
		now, now,
	)
}

func (b *ListingBuilder) BuildInfra() sqlc.Listings {
	now := time.Now()

	var price pgtype.Int8
	if b.PriceCents != nil {
		price = pgtype.Int8{Int64: *b.PriceCents, Valid: true}
	}
	var youtubeURL pgtype.Text
	if b.YoutubeURL != nil {
		youtubeURL = pgtype.Text{String: *b.YoutubeURL, Valid: true}
	}
	var featuredUntil, premiumUntil pgtype.Timestamptz
	if b.FeaturedUntil != nil {
		featuredUntil = pgtype.Timestamptz{Time: *b.FeaturedUntil, Valid: true}
	}
	if b.PremiumUntil != nil {
		premiumUntil = pgtype.Timestamptz{Time: *b.PremiumUntil, Valid: true}
	}

	return sqlc.Listings{
		ID:            b.ID,
		UserID:        b.UserID,
		CategoryID:    b.CategoryID,
		Title:         b.Title,
		Description:   b.Description,
		PriceCents:    price,
		IsFree:        b.IsFree,
		Province:      b.Province,
		City:          b.City,
		YoutubeUrl:    youtubeURL,
		Status:        b.Status,
		FeaturedUntil: featuredUntil,
		PremiumUntil:  premiumUntil,
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *ListingBuilder) BuildReadModel() *queries.ListingView {
	now := time.Now()
	return &queries.ListingView{
		ID:            b.ID,
		UserID:        b.UserID,
		CategoryID:    b.CategoryID,
		CategoryName:  "Deportes",
		CategorySlug:  "deportes",
		Title:         b.Title,
		Description:   b.Description,
		PriceCents:    b.PriceCents,
		IsFree:        b.IsFree,
		Province:      b.Province,
		City:          b.City,
		YoutubeURL:    b.YoutubeURL,
		Status:        b.Status,
		IsFeatured:    b.FeaturedUntil != nil && b.FeaturedUntil.After(now),
		IsPremium:     b.PremiumUntil != nil && b.PremiumUntil.After(now),
		FeaturedUntil: b.FeaturedUntil,
		PremiumUntil:  b.PremiumUntil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	b.ID = id
	return b
}

func (b *ListingBuilder) WithUserID(userID uuid.UUID) *ListingBuilder {
	b.UserID = userID
	return b
}

func (b *ListingBuilder) WithCategoryID(categoryID uuid.UUID) *ListingBuilder {
	b.CategoryID = categoryID
	return b
}

func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.Title = title
	return b
}

func (b *ListingBuilder) WithDescription(description string) *ListingBuilder {
	b.Description = description
	return b
}

func (b *ListingBuilder) WithPriceCents(cents int64) *ListingBuilder {
	b.PriceCents = &cents
	return b
}

func (b *ListingBuilder) AsFree() *ListingBuilder {
	b.IsFree = true
	b.PriceCents = nil
	return b
}

func (b *ListingBuilder) WithProvince(province string) *ListingBuilder {
	b.Province = province
	return b
}

func (b *ListingBuilder) WithCity(city string) *ListingBuilder {
	b.City = city
	return b
}

func (b *ListingBuilder) WithStatus(status string) *ListingBuilder {
	b.Status = status
	return b
}

func (b *ListingBuilder) WithFeaturedUntil(until *time.Time) *ListingBuilder {
	b.FeaturedUntil = until
	return b
}

func (b *ListingBuilder) WithPremiumUntil(until *time.Time) *ListingBuilder {
	b.PremiumUntil = until
	return b
}
