package converter

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		ID:          l.ID(),
		UserID:      l.UserID(),
		CategoryID:  l.CategoryID(),
		Title:       l.Title().Value(),
		Description: l.Description().Value(),
		PriceCents:  priceToPgtype(l.Price()),
		IsFree:      l.IsFree(),
		Province:    l.Location().Province(),
		City:        l.Location().City(),
		YoutubeUrl:  pgconv.StringPtrToPgtype(l.YoutubeURL()),
		Status:      l.Status().String(),
	}
}

func ListingToUpdateParams(l *listing.Listing) sqlc.UpdateListingParams {
	return sqlc.UpdateListingParams{
		ID:          l.ID(),
		CategoryID:  l.CategoryID(),
		Title:       l.Title().Value(),
		Description: l.Description().Value(),
		PriceCents:  priceToPgtype(l.Price()),
		IsFree:      l.IsFree(),
		Province:    l.Location().Province(),
		City:        l.Location().City(),
		YoutubeUrl:  pgconv.StringPtrToPgtype(l.YoutubeURL()),
	}
}

func priceToPgtype(p *listing.Price) pgtype.Int8 {
	if p == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: p.Cents(), Valid: true}
}
