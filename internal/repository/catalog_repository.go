package repository

import (
	"strings"

	"github.com/noah-isme/skillswap-api/internal/models"
)

// CatalogRepository serves the static provider roster, skill catalog, and
// category taxonomy. All data is fixed at startup; every accessor returns a
// copy so callers cannot mutate the shared dataset.
type CatalogRepository struct {
	categories []models.Category
	providers  []models.Provider
	listings   []models.SkillListing
}

// NewCatalogRepository builds a repository over the built-in dataset.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		categories: seedCategories,
		providers:  seedProviders,
		listings:   seedListings,
	}
}

// Categories returns the category taxonomy.
func (r *CatalogRepository) Categories() []models.Category {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Providers returns the full teacher roster in seed order.
func (r *CatalogRepository) Providers() []models.Provider {
	out := make([]models.Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Listings returns the full catalog in seed order.
func (r *CatalogRepository) Listings() []models.SkillListing {
	out := make([]models.SkillListing, len(r.listings))
	copy(out, r.listings)
	return out
}

// SearchListings filters the catalog by category (exact, case-insensitive)
// and a free-text query matched against title and description.
func (r *CatalogRepository) SearchListings(category, query string) []models.SkillListing {
	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.SkillListing, 0, len(r.listings))
	for _, l := range r.listings {
		if category != "" && strings.ToLower(l.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(l.Title), query) &&
			!strings.Contains(strings.ToLower(l.Description), query) {
			continue
		}
		out = append(out, l)
	}
	return out
}
