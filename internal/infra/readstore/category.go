package readstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/pgconv"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type CategoryReadQueries interface {
	ListCategories(ctx context.Context, db sqlc.DBTX) ([]sqlc.Categories, error)
	GetCategoryBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Categories, error)
	GetCategoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Categories, error)
}

type CategoryReadStore struct {
	queries CategoryReadQueries
	db      sqlc.DBTX
}

func NewCategoryReadStore(queries CategoryReadQueries, db sqlc.DBTX) *CategoryReadStore {
	return &CategoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryReadStore) List(ctx context.Context) ([]queries.CategoryView, error) {
	rows, err := r.queries.ListCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}

	views := make([]queries.CategoryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCategoryView(row))
	}
	return views, nil
}

func (r *CategoryReadStore) FindBySlug(ctx context.Context, slug string) (*queries.CategoryView, error) {
	row, err := r.queries.GetCategoryBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by slug", err)
	}

	view := toCategoryView(row)
	return &view, nil
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	row, err := r.queries.GetCategoryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}

	view := toCategoryView(row)
	return &view, nil
}

func toCategoryView(row sqlc.Categories) queries.CategoryView {
	return queries.CategoryView{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		SortOrder: row.SortOrder,
	}
}
