package category

import (
	"context"

	"github.com/goshop/catalog-service/internal/auth"
	"github.com/goshop/catalog-service/internal/category/dto"
	"github.com/goshop/catalog-service/internal/model"
)

type UseCase interface {
	UpsertCategory(ctx context.Context, caller *auth.Identity, input *dto.UpsertCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, caller *auth.Identity, id string) (*model.Category, error)
}
