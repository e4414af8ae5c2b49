package request

import (
	"strings"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/pkg/patch"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type CreateListingRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=120"`
	Description string    `json:"description" binding:"required,max=5000"`
	PriceCents  *int64    `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	IsFree      bool      `json:"is_free"`
	Province    string    `json:"province" binding:"required"`
	City        string    `json:"city" binding:"required"`
	YoutubeURL  *string   `json:"youtube_url,omitempty" binding:"omitempty,url"`
}

func (r *CreateListingRequest) ToInput() commands.ListingInput {
	return commands.ListingInput{
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		IsFree:      r.IsFree,
		Province:    r.Province,
		City:        r.City,
		YoutubeURL:  normalizeOptional(r.YoutubeURL),
	}
}

// UpdateListingRequest is a partial update; absent fields keep their stored
// value.
type UpdateListingRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=120"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=5000"`
	PriceCents  *int64     `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	IsFree      *bool      `json:"is_free,omitempty"`
	Province    *string    `json:"province,omitempty"`
	City        *string    `json:"city,omitempty"`
	YoutubeURL  *string    `json:"youtube_url,omitempty" binding:"omitempty,url"`
}

func (r *UpdateListingRequest) ToInput(existing *queries.ListingView) commands.ListingInput {
	priceCents := existing.PriceCents
	if r.PriceCents != nil {
		priceCents = r.PriceCents
	}
	youtubeURL := existing.YoutubeURL
	if r.YoutubeURL != nil {
		youtubeURL = normalizeOptional(r.YoutubeURL)
	}

	return commands.ListingInput{
		CategoryID:  patch.Coalesce(r.CategoryID, existing.CategoryID),
		Title:       patch.Coalesce(r.Title, existing.Title),
		Description: patch.Coalesce(r.Description, existing.Description),
		PriceCents:  priceCents,
		IsFree:      patch.Coalesce(r.IsFree, existing.IsFree),
		Province:    patch.Coalesce(r.Province, existing.Province),
		City:        patch.Coalesce(r.City, existing.City),
		YoutubeURL:  youtubeURL,
	}
}

type ChangeListingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=published paused"`
}

type AddListingImageRequest struct {
	StoragePath string `json:"storage_path" binding:"required"`
	SortOrder   int32  `json:"sort_order" binding:"min=0"`
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
