package domain

// Category is one of the fixed canonical topic categories. The taxonomy is
// closed: articles are always classified into this set, never into free-form
// source categories.
type Category string

const (
	CategoryScience    Category = "Science"
	CategoryHistory    Category = "History"
	CategoryGeography  Category = "Geography"
	CategoryLiterature Category = "Literature"
	CategoryArts       Category = "Arts"
	CategorySports     Category = "Sports"
	CategoryPolitics   Category = "Politics"
	CategoryReligion   Category = "Religion"
	CategoryNature     Category = "Nature"
	CategoryTechnology Category = "Technology"
	CategoryPeople     Category = "People"
	// CategoryGeneral is the sentinel fallback: every article carries at
	// least one category, and articles that match nothing land here.
	CategoryGeneral Category = "General"
)

// AllCategories lists the taxonomy in its canonical order.
var AllCategories = []Category{
	CategoryScience,
	CategoryHistory,
	CategoryGeography,
	CategoryLiterature,
	CategoryArts,
	CategorySports,
	CategoryPolitics,
	CategoryReligion,
	CategoryNature,
	CategoryTechnology,
	CategoryPeople,
	CategoryGeneral,
}

func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
