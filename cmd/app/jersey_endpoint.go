package main

import (
	"net/http"
	"strconv"

	"JerseyStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerJerseyRoutes mounts the catalog read endpoints.
//
//	GET /jerseys        -> filtered list (?category=&q=&featured=)
//	GET /jerseys/:id    -> single jersey (cache-aside read)
func registerJerseyRoutes(g *echo.Group, cs *services.CatalogService, jerseys services.JerseyGetter) {
	g.GET("/jerseys", func(c echo.Context) error {
		if c.QueryParam("featured") == "true" {
			limit, _ := strconv.Atoi(c.QueryParam("limit"))
			return c.JSON(http.StatusOK, cs.Featured(limit))
		}

		var categoryID *string
		if v := c.QueryParam("category"); v != "" {
			categoryID = &v
		}
		list := cs.Filter(categoryID, c.QueryParam("q"))
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/jerseys/:id", func(c echo.Context) error {
		jersey, err := jerseys.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "jersey not found"})
		}
		return c.JSON(http.StatusOK, jersey)
	})
}
