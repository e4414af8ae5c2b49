package queries

import (
	"time"

	"github.com/google/uuid"
)

// ListingView represents read-optimized listing data for detail pages
type ListingView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	CategoryID    uuid.UUID  `json:"category_id"`
	CategoryName  string     `json:"category_name"`
	CategorySlug  string     `json:"category_slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	PriceCents    *int64     `json:"price_cents,omitempty"`
	IsFree        bool       `json:"is_free"`
	Province      string     `json:"province"`
	City          string     `json:"city"`
	YoutubeURL    *string    `json:"youtube_url,omitempty"`
	Status        string     `json:"status"`
	IsFeatured    bool       `json:"is_featured"`
	IsPremium     bool       `json:"is_premium"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`
	PremiumUntil  *time.Time `json:"premium_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListingSummaryView represents one row of a search result page
type ListingSummaryView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	PriceCents   *int64    `json:"price_cents,omitempty"`
	IsFree       bool      `json:"is_free"`
	Province     string    `json:"province"`
	City         string    `json:"city"`
	CategoryName string    `json:"category_name"`
	CategorySlug string    `json:"category_slug"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryView represents read-optimized category data
type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int32     `json:"sort_order"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// PaymentView represents one recorded promotion purchase
type PaymentView struct {
	ID                uuid.UUID `json:"id"`
	CheckoutSessionID string    `json:"checkout_session_id"`
	ListingID         uuid.UUID `json:"listing_id"`
	PromotionType     string    `json:"promotion_type"`
	DurationDays      int32     `json:"duration_days"`
	AmountCents       int64     `json:"amount_cents"`
	CreatedAt         time.Time `json:"created_at"`
}

// ListingImageView represents one stored image reference
type ListingImageView struct {
	ID          uuid.UUID `json:"id"`
	StoragePath string    `json:"storage_path"`
	SortOrder   int32     `json:"sort_order"`
}
