package domain

import (
	"slices"
	"strings"
)

// FilterAll is the filter value that selects every category.
const FilterAll = "all"

// WhitelistCategories keeps the categories whose name appears in allowed,
// compared case-insensitively, in the order the remote API returned them.
// A nil input yields an empty, non-nil slice.
func WhitelistCategories(all []Category, allowed []string) []Category {
	result := make([]Category, 0, len(allowed))

	for _, category := range all {
		if slices.ContainsFunc(allowed, func(name string) bool {
			return strings.EqualFold(name, category.Name)
		}) {
			result = append(result, category)
		}
	}

	return result
}

// ResolveCategoryFilter maps a user-supplied filter name to a category id.
// The sentinel "all", an empty name and unmatched names resolve to no filter.
func ResolveCategoryFilter(filter string, categories []Category) (int, bool) {
	if filter == "" || strings.EqualFold(filter, FilterAll) {
		return 0, false
	}

	for _, category := range categories {
		if strings.EqualFold(category.Name, filter) {
			return category.ID, true
		}
	}

	return 0, false
}

// CategoryCache deduplicates category lookups across the articles of one
// listing page. Ids are recorded during the article scan and resolved
// afterwards, one remote call per distinct id.
type CategoryCache struct {
	order    []int
	resolved map[int]*Category
}

// NewCategoryCache creates an empty cache.
func NewCategoryCache() *CategoryCache {
	return &CategoryCache{resolved: make(map[int]*Category)}
}

// Record adds category ids without resolving them.
func (c *CategoryCache) Record(ids ...int) {
	for _, id := range ids {
		if _, seen := c.resolved[id]; seen {
			continue
		}

		c.resolved[id] = nil
		c.order = append(c.order, id)
	}
}

// Len returns the number of distinct ids recorded.
func (c *CategoryCache) Len() int {
	return len(c.order)
}

// Resolve calls fetch exactly once per recorded id. A failed fetch stores
// nil for that id. Failures are reported through onError when non-nil.
func (c *CategoryCache) Resolve(fetch func(id int) (*Category, error), onError func(id int, err error)) {
	for _, id := range c.order {
		category, err := fetch(id)
		if err != nil {
			if onError != nil {
				onError(id, err)
			}

			category = nil
		}

		c.resolved[id] = category
	}
}

// Map returns the id to category mapping. Unresolved ids map to nil.
func (c *CategoryCache) Map() map[int]*Category {
	out := make(map[int]*Category, len(c.resolved))
	for id, category := range c.resolved {
		out[id] = category
	}

	return out
}

// IsInSeries reports whether any tag name marks the article as part of a series.
func IsInSeries(tags []Tag, prefix string) bool {
	return slices.ContainsFunc(tags, func(tag Tag) bool {
		return strings.HasPrefix(tag.Name, prefix)
	})
}

// TagIDs extracts the ids of the given tags.
func TagIDs(tags []Tag) []int {
	ids := make([]int, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}

	return ids
}
