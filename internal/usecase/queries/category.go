package queries

import (
	"context"

	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/errs"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryReadStore interface {
	List(ctx context.Context) ([]CategoryView, error)
	FindBySlug(ctx context.Context, slug string) (*CategoryView, error)
}

type CategoryQueries interface {
	List(ctx context.Context) ([]CategoryView, error)
	GetBySlug(ctx context.Context, slug string) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]CategoryView, error) {
	return q.readStore.List(ctx)
}

func (q *categoryQueriesImpl) GetBySlug(ctx context.Context, slug string) (*CategoryView, error) {
	category, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
