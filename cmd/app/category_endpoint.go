package main

import (
	"net/http"

	"JerseyStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCategoryRoutes(g *echo.Group, cs *services.CatalogService) {
	// PUBLIC — list categories (name ascending, set at load time)
	g.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cs.Categories())
	})

	// re-run the one-time catalog load
	g.POST("/catalog/reload", func(c echo.Context) error {
		if err := cs.Load(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "reloaded"})
	})
}
