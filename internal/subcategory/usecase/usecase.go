package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goshop/catalog-service/internal/apperr"
	"github.com/goshop/catalog-service/internal/auth"
	"github.com/goshop/catalog-service/internal/category"
	"github.com/goshop/catalog-service/internal/model"
	"github.com/goshop/catalog-service/internal/slug"
	"github.com/goshop/catalog-service/internal/subcategory"
	"github.com/goshop/catalog-service/internal/subcategory/dto"
)

type subCategoryUseCase struct {
	repo    subcategory.Repository
	catRepo category.Repository
	logger  *zap.Logger
}

func NewSubCategoryUseCase(repo subcategory.Repository, catRepo category.Repository, log *zap.Logger) subcategory.UseCase {
	return &subCategoryUseCase{
		repo:    repo,
		catRepo: catRepo,
		logger:  log,
	}
}

func (uc *subCategoryUseCase) UpsertSubCategory(ctx context.Context, caller *auth.Identity, input *dto.UpsertSubCategoryInput) (*model.SubCategory, error) {
	if err := auth.Authorize(caller, auth.RoleAdmin); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.Invalid("name", "missing required field: name")
	}
	if _, err := uuid.Parse(input.CategoryID); err != nil {
		return nil, apperr.Invalid("categoryId", "categoryId must be a valid identifier")
	}

	parent, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, persistErr(err)
	}
	if parent == nil {
		return nil, apperr.Invalid("categoryId", "category does not exist")
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		url = slug.Make(input.Name)
	}
	if url == "" {
		return nil, apperr.Invalid("url", "cannot derive a url from the given name")
	}

	conflict, err := uc.repo.FindConflict(ctx, input.Name, url, input.ID)
	if err != nil {
		return nil, persistErr(err)
	}
	if conflict != nil {
		if conflict.Name == input.Name {
			return nil, apperr.Duplicate("name", "a subcategory with the same name already exists")
		}
		return nil, apperr.Duplicate("url", "a subcategory with the same url already exists")
	}

	var existing *model.SubCategory
	if input.ID != "" {
		existing, err = uc.repo.FindByID(ctx, input.ID)
		if err != nil {
			return nil, persistErr(err)
		}
	}

	now := time.Now()

	if existing != nil {
		existing.Name = input.Name
		existing.URL = url
		existing.Image = optionalString(input.Image)
		existing.Featured = input.Featured
		existing.CategoryID = input.CategoryID
		existing.UpdatedAt = now
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, persistErr(err)
		}
		return existing, nil
	}

	// An id that matched no row falls through to create, which always gets a
	// freshly generated id.
	sub := &model.SubCategory{
		BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:       input.Name,
		URL:        url,
		Image:      optionalString(input.Image),
		Featured:   input.Featured,
		CategoryID: input.CategoryID,
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, persistErr(err)
	}
	return sub, nil
}

func (uc *subCategoryUseCase) GetSubCategory(ctx context.Context, id string) (*model.SubCategory, error) {
	sub, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistErr(err)
	}
	if sub == nil {
		return nil, apperr.NotFound("subcategory not found")
	}
	return sub, nil
}

func (uc *subCategoryUseCase) ListSubCategories(ctx context.Context) ([]model.SubCategory, error) {
	subs, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, persistErr(err)
	}
	return subs, nil
}

func (uc *subCategoryUseCase) DeleteSubCategory(ctx context.Context, caller *auth.Identity, id string) (*model.SubCategory, error) {
	if err := auth.Authorize(caller, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("id", "missing required field: id")
	}

	sub, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistErr(err)
	}
	if sub == nil {
		return nil, apperr.NotFound("subcategory not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, persistErr(err)
	}
	return sub, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func persistErr(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}
