package badges

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/creelhq/creel/creel/database/repositories"
)

// Catalog is an immutable snapshot of the active badge definitions, loaded
// once per process and passed in wherever badge lookups or searches are
// needed. Keeping it a value rather than ambient state keeps evaluation a
// pure function of (catalog, history).
type Catalog struct {
	defs   []*models.BadgeDefinition
	byID   map[string]*models.BadgeDefinition
	search badgeSearchItems
}

// badgeSearchItems implements fuzzy.Source over badge names.
type badgeSearchItems []*models.BadgeDefinition

func (items badgeSearchItems) Len() int {
	return len(items)
}

func (items badgeSearchItems) String(i int) string {
	return strings.ToLower(items[i].Name)
}

// LoadCatalog fetches the active definitions and builds the snapshot.
func LoadCatalog(ctx context.Context, repo repositories.BadgeRepository) (*Catalog, error) {
	defs, err := repo.GetActiveBadges(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(defs), nil
}

func NewCatalog(defs []*models.BadgeDefinition) *Catalog {
	byID := make(map[string]*models.BadgeDefinition, len(defs))
	for _, def := range defs {
		byID[def.BadgeID] = def
	}
	return &Catalog{
		defs:   defs,
		byID:   byID,
		search: badgeSearchItems(defs),
	}
}

// All returns the definitions in catalog order. Callers must not mutate.
func (c *Catalog) All() []*models.BadgeDefinition {
	return c.defs
}

func (c *Catalog) Get(badgeID string) (*models.BadgeDefinition, bool) {
	def, ok := c.byID[badgeID]
	return def, ok
}

func (c *Catalog) Len() int {
	return len(c.defs)
}

// ByCategory filters the catalog in order.
func (c *Catalog) ByCategory(category string) []*models.BadgeDefinition {
	var out []*models.BadgeDefinition
	for _, def := range c.defs {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Search fuzzy-matches badge names, best match first.
func (c *Catalog) Search(query string) []*models.BadgeDefinition {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, c.search)
	results := make([]*models.BadgeDefinition, len(matches))
	for i, match := range matches {
		results[i] = c.defs[match.Index]
	}
	return results
}
