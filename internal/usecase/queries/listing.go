package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/errs"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/pgconv"
)

var ErrListingNotFound = errs.New("listing not found")

const (
	defaultPageSize = 20
	maxPageSize     = 100
	homePremiumSize = 12
)

// SearchFilter is the browse-side filter set. Nil fields mean "no filter";
// featured listings always sort ahead of the rest regardless of filters.
type SearchFilter struct {
	CategoryID    *uuid.UUID
	Province      *string
	City          *string
	Search        *string
	MinPriceCents *int64
	MaxPriceCents *int64
	Page          int
	PageSize      int
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	Search(ctx context.Context, arg sqlc.SearchListingsParams) ([]ListingSummaryView, error)
	HomePremium(ctx context.Context, limit int32) ([]ListingSummaryView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]ListingView, error)
	Images(ctx context.Context, listingID uuid.UUID) ([]ListingImageView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	Search(ctx context.Context, filter SearchFilter) ([]ListingSummaryView, error)
	HomePremium(ctx context.Context) ([]ListingSummaryView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ListingView, error)
	Images(ctx context.Context, listingID uuid.UUID) ([]ListingImageView, error)
}

type listingQueriesImpl struct {
	readStore ListingReadStore
}

func NewListingQueries(readStore ListingReadStore) ListingQueries {
	return &listingQueriesImpl{readStore: readStore}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *listingQueriesImpl) Search(ctx context.Context, filter SearchFilter) ([]ListingSummaryView, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	arg := sqlc.SearchListingsParams{
		CategoryID:    pgconv.UUIDPtrToPgtype(filter.CategoryID),
		Province:      pgconv.StringPtrToPgtype(filter.Province),
		City:          pgconv.StringPtrToPgtype(filter.City),
		Search:        pgconv.StringPtrToPgtype(filter.Search),
		MinPriceCents: pgconv.Int64PtrToPgtype(filter.MinPriceCents),
		MaxPriceCents: pgconv.Int64PtrToPgtype(filter.MaxPriceCents),
		Limit:         int32(pageSize),          // #nosec G115 -- bounded by maxPageSize
		Offset:        int32((page - 1) * pageSize), // #nosec G115
	}

	return q.readStore.Search(ctx, arg)
}

func (q *listingQueriesImpl) HomePremium(ctx context.Context) ([]ListingSummaryView, error) {
	return q.readStore.HomePremium(ctx, homePremiumSize)
}

func (q *listingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]ListingView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *listingQueriesImpl) Images(ctx context.Context, listingID uuid.UUID) ([]ListingImageView, error) {
	return q.readStore.Images(ctx, listingID)
}
