package category

import (
	"context"

	"github.com/goshop/catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	// FindConflict returns a category whose name or url collides with the
	// given values, excluding the row with id excludeID. The empty string is
	// a safe sentinel: it matches no real id.
	FindConflict(ctx context.Context, name, url, excludeID string) (*model.Category, error)
	HasSubCategories(ctx context.Context, id string) (bool, error)
}
