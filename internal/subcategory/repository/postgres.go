package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

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

func (r *PGRepository) Create(ctx context.Context, s *model.SubCategory) error {
	query := `
        INSERT INTO subcategories (id, name, url, image, featured, category_id, created_at, updated_at)
        VALUES (:id, :name, :url, :image, :featured, :category_id, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return mapWriteError(err)
}

func (r *PGRepository) Update(ctx context.Context, s *model.SubCategory) error {
	query := `
        UPDATE subcategories
        SET name = :name,
            url = :url,
            image = :image,
            featured = :featured,
            category_id = :category_id,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return mapWriteError(err)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM subcategories WHERE id = $1", id)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.SubCategory, error) {
	var sub model.SubCategory
	query := `SELECT * FROM subcategories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &sub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// joinedRow flattens a subcategory and its owning category out of a single
// inner join; every subcategory references a live category.
type joinedRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	URL        string    `db:"url"`
	Image      *string   `db:"image"`
	Featured   bool      `db:"featured"`
	CategoryID string    `db:"category_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`

	ParentName      string    `db:"parent_name"`
	ParentURL       string    `db:"parent_url"`
	ParentImage     *string   `db:"parent_image"`
	ParentFeatured  bool      `db:"parent_featured"`
	ParentCreatedAt time.Time `db:"parent_created_at"`
	ParentUpdatedAt time.Time `db:"parent_updated_at"`
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.SubCategory, error) {
	rows := []joinedRow{}
	query := `
        SELECT s.id, s.name, s.url, s.image, s.featured, s.category_id, s.created_at, s.updated_at,
               c.name AS parent_name, c.url AS parent_url, c.image AS parent_image,
               c.featured AS parent_featured, c.created_at AS parent_created_at, c.updated_at AS parent_updated_at
        FROM subcategories s
        JOIN categories c ON c.id = s.category_id
        ORDER BY s.updated_at DESC
    `
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	subs := make([]model.SubCategory, len(rows))
	for i, row := range rows {
		subs[i] = model.SubCategory{
			BaseModel:  model.BaseModel{ID: row.ID, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt},
			Name:       row.Name,
			URL:        row.URL,
			Image:      row.Image,
			Featured:   row.Featured,
			CategoryID: row.CategoryID,
			Category: &model.Category{
				BaseModel: model.BaseModel{ID: row.CategoryID, CreatedAt: row.ParentCreatedAt, UpdatedAt: row.ParentUpdatedAt},
				Name:      row.ParentName,
				URL:       row.ParentURL,
				Image:     row.ParentImage,
				Featured:  row.ParentFeatured,
			},
		}
	}
	return subs, nil
}

func (r *PGRepository) FindConflict(ctx context.Context, name, url, excludeID string) (*model.SubCategory, error) {
	var sub model.SubCategory
	query := `SELECT * FROM subcategories WHERE (name = $1 OR url = $2) AND id != $3 LIMIT 1`
	err := r.DB.GetContext(ctx, &sub, query, name, url, excludeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if constraint, ok := db.UniqueViolation(err); ok {
		field := "name"
		if strings.Contains(constraint, "url") {
			field = "url"
		}
		return apperr.Duplicate(field, "a subcategory with the same "+field+" already exists")
	}
	return err
}
