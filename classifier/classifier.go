// Package classifier maps article text and source-supplied topic tags onto
// the fixed canonical category taxonomy by keyword matching. Both entry
// points are pure functions: deterministic, no I/O, no state.
package classifier

import (
	"strings"

	"wikifeed/domain"
)

// Classify extracts canonical categories from raw article text. A category
// is included when at least one of its keywords occurs in the lower-cased
// text; biographical keywords force-include People. The result is never
// empty: text matching nothing classifies as General. Categories come back
// in taxonomy order.
func Classify(text string) []domain.Category {
	lower := strings.ToLower(text)

	matched := make(map[domain.Category]bool)
	for category, keywords := range bodyKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched[category] = true
				break
			}
		}
	}

	for _, kw := range biographicalKeywords {
		if strings.Contains(lower, kw) {
			matched[domain.CategoryPeople] = true
			break
		}
	}

	return ordered(matched)
}

// MapExternalCategories maps free-form topic tags onto the taxonomy using
// the same substring technique. Used when source metadata already carries
// topic strings instead of raw body text. Defaults to General on no match.
func MapExternalCategories(tags []string) []domain.Category {
	matched := make(map[domain.Category]bool)
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for category, keywords := range externalKeywords {
			if matched[category] {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					matched[category] = true
					break
				}
			}
		}
	}

	return ordered(matched)
}

func ordered(matched map[domain.Category]bool) []domain.Category {
	if len(matched) == 0 {
		return []domain.Category{domain.CategoryGeneral}
	}

	categories := make([]domain.Category, 0, len(matched))
	for _, category := range domain.AllCategories {
		if matched[category] {
			categories = append(categories, category)
		}
	}
	return categories
}
