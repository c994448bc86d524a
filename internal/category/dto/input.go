package dto

// UpsertCategoryInput creates a category when ID is empty (or unknown) and
// updates it otherwise.
type UpsertCategoryInput struct {
	ID       string
	Name     string
	URL      string
	Image    string
	Featured bool
}
