package model

// Category is a top-level catalog grouping. Name and URL are unique across
// all categories.
type Category struct {
	BaseModel
	Name     string  `db:"name" json:"name"`
	URL      string  `db:"url" json:"url"`
	Image    *string `db:"image" json:"image"`
	Featured bool    `db:"featured" json:"featured"`
}

// SubCategory belongs to exactly one Category. Name and URL uniqueness is
// global, not scoped to the parent.
type SubCategory struct {
	BaseModel
	Name       string    `db:"name" json:"name"`
	URL        string    `db:"url" json:"url"`
	Image      *string   `db:"image" json:"image"`
	Featured   bool      `db:"featured" json:"featured"`
	CategoryID string    `db:"category_id" json:"category_id"`
	Category   *Category `db:"-" json:"category,omitempty"` // joined data
}
