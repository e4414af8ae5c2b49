package response

import (
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type ListingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	CategorySlug  string  `json:"category_slug"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	PriceCents    *int64  `json:"price_cents,omitempty"`
	IsFree        bool    `json:"is_free"`
	Province      string  `json:"province"`
	City          string  `json:"city"`
	YoutubeURL    *string `json:"youtube_url,omitempty"`
	Status        string  `json:"status"`
	IsFeatured    bool    `json:"is_featured"`
	IsPremium     bool    `json:"is_premium"`
	FeaturedUntil *int64  `json:"featured_until,omitempty"`
	PremiumUntil  *int64  `json:"premium_until,omitempty"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	resp := &ListingResponse{
		ID:           v.ID.String(),
		UserID:       v.UserID.String(),
		CategoryID:   v.CategoryID.String(),
		CategoryName: v.CategoryName,
		CategorySlug: v.CategorySlug,
		Title:        v.Title,
		Description:  v.Description,
		PriceCents:   v.PriceCents,
		IsFree:       v.IsFree,
		Province:     v.Province,
		City:         v.City,
		YoutubeURL:   v.YoutubeURL,
		Status:       v.Status,
		IsFeatured:   v.IsFeatured,
		IsPremium:    v.IsPremium,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
	if v.FeaturedUntil != nil {
		ts := v.FeaturedUntil.Unix()
		resp.FeaturedUntil = &ts
	}
	if v.PremiumUntil != nil {
		ts := v.PremiumUntil.Unix()
		resp.PremiumUntil = &ts
	}
	return resp
}

func FromListingViews(items []queries.ListingView) []*ListingResponse {
	res := make([]*ListingResponse, len(items))
	for i := range items {
		res[i] = FromListingView(&items[i])
	}
	return res
}

type ListingSummaryResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	PriceCents   *int64 `json:"price_cents,omitempty"`
	IsFree       bool   `json:"is_free"`
	Province     string `json:"province"`
	City         string `json:"city"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
	IsFeatured   bool   `json:"is_featured"`
	CreatedAt    int64  `json:"created_at"`
}

func FromListingSummaries(items []queries.ListingSummaryView) []*ListingSummaryResponse {
	res := make([]*ListingSummaryResponse, len(items))
	for i, it := range items {
		res[i] = &ListingSummaryResponse{
			ID:           it.ID.String(),
			Title:        it.Title,
			PriceCents:   it.PriceCents,
			IsFree:       it.IsFree,
			Province:     it.Province,
			City:         it.City,
			CategoryName: it.CategoryName,
			CategorySlug: it.CategorySlug,
			IsFeatured:   it.IsFeatured,
			CreatedAt:    it.CreatedAt.Unix(),
		}
	}
	return res
}

type ListingImageResponse struct {
	ID          string `json:"id"`
	StoragePath string `json:"storage_path"`
	SortOrder   int32  `json:"sort_order"`
}

func FromListingImages(items []queries.ListingImageView) []*ListingImageResponse {
	res := make([]*ListingImageResponse, len(items))
	for i, it := range items {
		res[i] = &ListingImageResponse{
			ID:          it.ID.String(),
			StoragePath: it.StoragePath,
			SortOrder:   it.SortOrder,
		}
	}
	return res
}
