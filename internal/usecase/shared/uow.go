package shared

import (
	"context"
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	PaymentLog() PaymentLogRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
}

// Minimal snapshots for command read operations
type ListingSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        string
	FeaturedUntil *time.Time
	PremiumUntil  *time.Time
}

type CategorySnapshot struct {
	ID   uuid.UUID
	Slug string
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status listing.Status) error
	// LockForPromotion takes a row lock so concurrent window extensions serialize.
	LockForPromotion(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ListingSnapshot, error)
	UpdatePromotionWindow(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, kind promotion.Kind, until time.Time) error
	AddImage(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, storagePath string, sortOrder int32) error
}

type PaymentLogRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, p *promotion.Purchase) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
