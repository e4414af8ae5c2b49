package repository

import (
	"context"
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/repository/converter"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/pgconv"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error)
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) (int64, error)
	UpdateListingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingStatusParams) (int64, error)
	GetListingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetListingForUpdateRow, error)
	UpdateListingFeaturedUntil(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingFeaturedUntilParams) (int64, error)
	UpdateListingPremiumUntil(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingPremiumUntilParams) (int64, error)
	InsertListingImage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertListingImageParams) (sqlc.ListingImages, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries *sqlc.Queries) *ListingRepository {
	return &ListingRepository{queries: queries}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error) {
	row, err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return row.ID, nil
}

func (r *ListingRepository) Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	affected, err := r.queries.UpdateListing(ctx, tx, converter.ListingToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status listing.Status) error {
	affected, err := r.queries.UpdateListingStatus(ctx, tx, sqlc.UpdateListingStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update listing status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) LockForPromotion(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ListingSnapshot, error) {
	row, err := r.queries.GetListingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}

	return &shared.ListingSnapshot{
		ID:            row.ID,
		Status:        row.Status,
		FeaturedUntil: pgconv.TimePtrFromPgtype(row.FeaturedUntil),
		PremiumUntil:  pgconv.TimePtrFromPgtype(row.PremiumUntil),
	}, nil
}

func (r *ListingRepository) UpdatePromotionWindow(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, kind promotion.Kind, until time.Time) error {
	var (
		affected int64
		err      error
	)
	switch kind {
	case promotion.KindPremium:
		affected, err = r.queries.UpdateListingPremiumUntil(ctx, tx, sqlc.UpdateListingPremiumUntilParams{
			ID:           id,
			PremiumUntil: pgconv.TimeToPgtype(until),
		})
	default:
		affected, err = r.queries.UpdateListingFeaturedUntil(ctx, tx, sqlc.UpdateListingFeaturedUntilParams{
			ID:            id,
			FeaturedUntil: pgconv.TimeToPgtype(until),
		})
	}
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion window", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) AddImage(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, storagePath string, sortOrder int32) error {
	_, err := r.queries.InsertListingImage(ctx, tx, sqlc.InsertListingImageParams{
		ListingID:   listingID,
		StoragePath: storagePath,
		SortOrder:   sortOrder,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert listing image", err)
	}
	return nil
}
