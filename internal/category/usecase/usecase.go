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
	"github.com/goshop/catalog-service/internal/category/dto"
	"github.com/goshop/catalog-service/internal/model"
	"github.com/goshop/catalog-service/internal/slug"
	"github.com/goshop/catalog-service/pkg/cache"
)

const listCacheKey = "categories:all"

type categoryUseCase struct {
	repo    category.Repository
	cache   *cache.RedisClient
	listTTL time.Duration
	logger  *zap.Logger
}

// NewCategoryUseCase wires the category workflows. cache may be nil, in which
// case list reads always hit the database.
func NewCategoryUseCase(repo category.Repository, cacheClient *cache.RedisClient, listTTL time.Duration, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:    repo,
		cache:   cacheClient,
		listTTL: listTTL,
		logger:  log,
	}
}

func (uc *categoryUseCase) UpsertCategory(ctx context.Context, caller *auth.Identity, input *dto.UpsertCategoryInput) (*model.Category, error) {
	if err := auth.Authorize(caller, auth.RoleAdmin); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.Invalid("name", "missing required field: name")
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		url = slug.Make(input.Name)
	}
	if url == "" {
		return nil, apperr.Invalid("url", "cannot derive a url from the given name")
	}

	// Advisory pre-check. The unique indexes on categories(name) and
	// categories(url) remain the authoritative source; the repository maps
	// their violations to the same duplicate error.
	conflict, err := uc.repo.FindConflict(ctx, input.Name, url, input.ID)
	if err != nil {
		return nil, persistErr(err)
	}
	if conflict != nil {
		if conflict.Name == input.Name {
			return nil, apperr.Duplicate("name", "a category with the same name already exists")
		}
		return nil, apperr.Duplicate("url", "a category with the same url already exists")
	}

	var existing *model.Category
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
		existing.UpdatedAt = now
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, persistErr(err)
		}
		uc.invalidateListCache()
		return existing, nil
	}

	// An id that matched no row falls through to create, which always gets a
	// freshly generated id.
	cat := &model.Category{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		URL:       url,
		Image:     optionalString(input.Image),
		Featured:  input.Featured,
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, persistErr(err)
	}

	uc.invalidateListCache()
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistErr(err)
	}
	if cat == nil {
		return nil, apperr.NotFound("category not found")
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	if uc.cache != nil {
		var cached []model.Category
		err := uc.cache.GetJSON(ctx, listCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			uc.logger.Debug("category list cache read failed", zap.Error(err))
		}
	}

	cats, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, persistErr(err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, listCacheKey, cats, uc.listTTL); err != nil {
			uc.logger.Debug("category list cache write failed", zap.Error(err))
		}
	}
	return cats, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, caller *auth.Identity, id string) (*model.Category, error) {
	if err := auth.Authorize(caller, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("id", "missing required field: id")
	}

	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistErr(err)
	}
	if cat == nil {
		return nil, apperr.NotFound("category not found")
	}

	// Explicit orphaning policy: deletion is rejected while subcategories
	// still reference the category.
	inUse, err := uc.repo.HasSubCategories(ctx, id)
	if err != nil {
		return nil, persistErr(err)
	}
	if inUse {
		return nil, apperr.Conflict("category has subcategories; delete or reassign them first")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, persistErr(err)
	}

	uc.invalidateListCache()
	return cat, nil
}

func (uc *categoryUseCase) invalidateListCache() {
	if uc.cache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := uc.cache.Delete(ctx, listCacheKey); err != nil {
			uc.logger.Debug("category list cache invalidation failed", zap.Error(err))
		}
	}()
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// persistErr keeps already-classified errors intact and wraps everything else
// as an internal persistence failure, preserving the message.
func persistErr(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}
