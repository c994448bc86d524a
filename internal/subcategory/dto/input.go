package dto

// UpsertSubCategoryInput creates a subcategory when ID is empty (or unknown)
// and updates it otherwise. CategoryID must reference an existing category.
type UpsertSubCategoryInput struct {
	ID         string
	Name       string
	URL        string
	Image      string
	Featured   bool
	CategoryID string
}
