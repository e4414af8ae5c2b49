package response

import (
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int32  `json:"sort_order"`
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Slug:      v.Slug,
		SortOrder: v.SortOrder,
	}
}

func FromCategoryViews(items []queries.CategoryView) []*CategoryResponse {
	res := make([]*CategoryResponse, len(items))
	for i := range items {
		res[i] = FromCategoryView(&items[i])
	}
	return res
}
