package rest

import (
	"net/http"

	"wikifeed/di"
	"wikifeed/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerIngestRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/ingest/random", handleIngestRandom(container))
	v1.POST("/ingest/article", handleIngestArticle(container))
}

func handleIngestRandom(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload IngestRandomPayload
		if err := c.Bind(&payload); err != nil {
			return handleError(c, errors.ValidationError("invalid request body", nil), "ingest_random")
		}

		report, err := container.IngestUsecase.IngestRandomArticles(c.Request().Context(), payload.Count)
		if err != nil {
			return handleError(c, err, "ingest_random")
		}

		return c.JSON(http.StatusOK, report)
	}
}

func handleIngestArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload IngestArticlePayload
		if err := c.Bind(&payload); err != nil {
			return handleError(c, errors.ValidationError("invalid request body", nil), "ingest_article")
		}

		article, err := container.IngestUsecase.IngestArticleByTitle(c.Request().Context(), payload.Title)
		if err != nil {
			return handleError(c, err, "ingest_article")
		}

		return c.JSON(http.StatusCreated, article)
	}
}
