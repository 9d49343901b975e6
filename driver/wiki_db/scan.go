package wiki_db

import (
	"wikifeed/domain"

	"github.com/jackc/pgx/v5"
)

const articleColumns = `id, page_id, title, content, categories, word_count, reading_time, access_count, thumbnail, created_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		article    domain.Article
		categories []string
	)

	err := row.Scan(
		&article.ID,
		&article.PageID,
		&article.Title,
		&article.Content,
		&categories,
		&article.WordCount,
		&article.ReadingTime,
		&article.AccessCount,
		&article.Thumbnail,
		&article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	article.Categories = toCategories(categories)
	return &article, nil
}

func scanArticles(rows pgx.Rows) ([]*domain.Article, error) {
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

func toCategories(names []string) []domain.Category {
	if len(names) == 0 {
		return []domain.Category{domain.CategoryGeneral}
	}
	categories := make([]domain.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, domain.Category(name))
	}
	return categories
}

func fromCategories(categories []domain.Category) []string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}
	return names
}
