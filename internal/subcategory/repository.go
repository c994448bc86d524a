package subcategory

import (
	"context"

	"github.com/goshop/catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, sub *model.SubCategory) error
	Update(ctx context.Context, sub *model.SubCategory) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.SubCategory, error)
	// FindAll returns every subcategory joined with its owning category,
	// newest update first.
	FindAll(ctx context.Context) ([]model.SubCategory, error)
	// FindConflict mirrors the category variant; subcategory name/url
	// uniqueness is global, not scoped to the parent.
	FindConflict(ctx context.Context, name, url, excludeID string) (*model.SubCategory, error)
}
