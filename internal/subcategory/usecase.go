package subcategory

import (
	"context"

	"github.com/goshop/catalog-service/internal/auth"
	"github.com/goshop/catalog-service/internal/model"
	"github.com/goshop/catalog-service/internal/subcategory/dto"
)

type UseCase interface {
	UpsertSubCategory(ctx context.Context, caller *auth.Identity, input *dto.UpsertSubCategoryInput) (*model.SubCategory, error)
	GetSubCategory(ctx context.Context, id string) (*model.SubCategory, error)
	ListSubCategories(ctx context.Context) ([]model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, caller *auth.Identity, id string) (*model.SubCategory, error)
}
