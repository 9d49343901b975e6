package rest

import (
	"net/http"

	"wikifeed/config"
	"wikifeed/di"
	"wikifeed/domain"
	"wikifeed/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/articles/search", handleSearchArticles(container, cfg))
	v1.GET("/articles/:id", handleFetchArticle(container))
	v1.GET("/categories", handleListCategories())
	v1.GET("/categories/:category/articles", handleBrowseCategory(container, cfg))
}

func handleFetchArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseUUID(c.Param("id"), "id")
		if err != nil {
			return handleError(c, err, "fetch_article")
		}

		article, err := container.ArticleUsecase.FetchArticle(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "fetch_article")
		}

		return c.JSON(http.StatusOK, article)
	}
}

func handleSearchArticles(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			return handleError(c, errors.ValidationError("q must not be empty", nil), "search_articles")
		}

		limit, err := parseLimit(c, "limit", cfg.Feed.ArticlesPerPage, cfg.Feed.MaxArticlesPerRequest)
		if err != nil {
			return handleError(c, err, "search_articles")
		}

		articles, err := container.ScoringUsecase.Search(c.Request().Context(), query, limit)
		if err != nil {
			return handleError(c, err, "search_articles")
		}

		return c.JSON(http.StatusOK, articles)
	}
}

func handleListCategories() echo.HandlerFunc {
	return func(c echo.Context) error {
		names := make([]string, 0, len(domain.AllCategories))
		for _, category := range domain.AllCategories {
			names = append(names, category.String())
		}

		return c.JSON(http.StatusOK, CategoriesResponse{Categories: names})
	}
}

func handleBrowseCategory(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		category := domain.Category(c.Param("category"))

		limit, err := parseLimit(c, "limit", cfg.Feed.ArticlesPerPage, cfg.Feed.MaxArticlesPerRequest)
		if err != nil {
			return handleError(c, err, "browse_category")
		}

		articles, err := container.ScoringUsecase.Browse(c.Request().Context(), category, limit)
		if err != nil {
			return handleError(c, err, "browse_category")
		}

		return c.JSON(http.StatusOK, articles)
	}
}
