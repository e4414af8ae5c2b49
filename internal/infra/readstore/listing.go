package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/pgconv"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetListingByIDRow, error)
	SearchListings(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchListingsParams) ([]sqlc.SearchListingsRow, error)
	GetHomePremiumListings(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.GetHomePremiumListingsRow, error)
	GetListingsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetListingsByUserIDRow, error)
	GetListingImages(ctx context.Context, db sqlc.DBTX, listingID uuid.UUID) ([]sqlc.ListingImages, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	return toListingView(row, time.Now()), nil
}

func (r *ListingReadStore) Search(ctx context.Context, arg sqlc.SearchListingsParams) ([]queries.ListingSummaryView, error) {
	rows, err := r.queries.SearchListings(ctx, r.db, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search listings", err)
	}

	views := make([]queries.ListingSummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.ListingSummaryView{
			ID:           row.ID,
			Title:        row.Title,
			PriceCents:   pgconv.Int64PtrFromPgtype(row.PriceCents),
			IsFree:       row.IsFree,
			Province:     row.Province,
			City:         row.City,
			CategoryName: row.CategoryName,
			CategorySlug: row.CategorySlug,
			IsFeatured:   row.IsFeatured,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *ListingReadStore) HomePremium(ctx context.Context, limit int32) ([]queries.ListingSummaryView, error) {
	rows, err := r.queries.GetHomePremiumListings(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find premium listings", err)
	}

	views := make([]queries.ListingSummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.ListingSummaryView{
			ID:           row.ID,
			Title:        row.Title,
			PriceCents:   pgconv.Int64PtrFromPgtype(row.PriceCents),
			IsFree:       row.IsFree,
			Province:     row.Province,
			City:         row.City,
			CategoryName: row.CategoryName,
			CategorySlug: row.CategorySlug,
			IsFeatured:   true,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *ListingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]queries.ListingView, error) {
	rows, err := r.queries.GetListingsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listings by user ID", err)
	}

	now := time.Now()
	views := make([]queries.ListingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *toListingView(sqlc.GetListingByIDRow(row), now))
	}
	return views, nil
}

func (r *ListingReadStore) Images(ctx context.Context, listingID uuid.UUID) ([]queries.ListingImageView, error) {
	rows, err := r.queries.GetListingImages(ctx, r.db, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing images", err)
	}

	views := make([]queries.ListingImageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.ListingImageView{
			ID:          row.ID,
			StoragePath: row.StoragePath,
			SortOrder:   row.SortOrder,
		})
	}
	return views, nil
}

func toListingView(row sqlc.GetListingByIDRow, now time.Time) *queries.ListingView {
	featuredUntil := pgconv.TimePtrFromPgtype(row.FeaturedUntil)
	premiumUntil := pgconv.TimePtrFromPgtype(row.PremiumUntil)

	return &queries.ListingView{
		ID:            row.ID,
		UserID:        row.UserID,
		CategoryID:    row.CategoryID,
		CategoryName:  row.CategoryName,
		CategorySlug:  row.CategorySlug,
		Title:         row.Title,
		Description:   row.Description,
		PriceCents:    pgconv.Int64PtrFromPgtype(row.PriceCents),
		IsFree:        row.IsFree,
		Province:      row.Province,
		City:          row.City,
		YoutubeURL:    pgconv.StringPtrFromPgtype(row.YoutubeUrl),
		Status:        row.Status,
		IsFeatured:    featuredUntil != nil && featuredUntil.After(now),
		IsPremium:     premiumUntil != nil && premiumUntil.After(now),
		FeaturedUntil: featuredUntil,
		PremiumUntil:  premiumUntil,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
