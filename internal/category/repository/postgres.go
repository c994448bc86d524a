package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/goshop/catalog-service/internal/apperr"
	"github.com/goshop/catalog-service/internal/model"
	"github.com/goshop/catalog-service/pkg/db"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(database *sqlx.DB) *PGRepository {
	return &PGRepository{DB: database}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, url, image, featured, created_at, updated_at)
        VALUES (:id, :name, :url, :image, :featured, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return mapWriteError(err)
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            url = :url,
            image = :image,
            featured = :featured,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return mapWriteError(err)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT * FROM categories ORDER BY updated_at DESC`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) FindConflict(ctx context.Context, name, url, excludeID string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE (name = $1 OR url = $2) AND id != $3 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, name, url, excludeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) HasSubCategories(ctx context.Context, id string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM subcategories WHERE category_id = $1`
	if err := r.DB.GetContext(ctx, &count, query, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

// mapWriteError turns unique-index violations into the duplicate error the
// advisory pre-check would have produced, making the constraint the
// authoritative source under concurrent writes.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if constraint, ok := db.UniqueViolation(err); ok {
		field := "name"
		if strings.Contains(constraint, "url") {
			field = "url"
		}
		return apperr.Duplicate(field, "a category with the same "+field+" already exists")
	}
	return err
}
