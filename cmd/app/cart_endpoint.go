package main

import (
	"net/http"

	"JerseyStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

const sessionHeader = "X-Session-ID"

type addCartRequest struct {
	JerseyID string `json:"jerseyid"`
	Size     string `json:"size"`
	Qty      int    `json:"quantity"`
}

type updateCartRequest struct {
	Size string `json:"size"`
	Qty  int    `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		session := c.Request().Header.Get(sessionHeader)
		return c.JSON(http.StatusOK, cs.Get(session))
	})

	// ADD line; starts a session when the header is absent
	p.POST("", func(c echo.Context) error {
		session := c.Request().Header.Get(sessionHeader)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.Qty == 0 {
			req.Qty = 1
		}
		session, err := cs.Add(c.Request().Context(), session, req.JerseyID, req.Size, req.Qty)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(sessionHeader, session)
		return c.JSON(http.StatusCreated, map[string]string{"message": "added", "sessionid": session})
	})

	// UPDATE quantity; 0 removes the line
	p.PUT("/:jerseyid", func(c echo.Context) error {
		session := c.Request().Header.Get(sessionHeader)
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.SetQuantity(session, c.Param("jerseyid"), req.Size, req.Qty); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE line
	p.DELETE("/:jerseyid", func(c echo.Context) error {
		session := c.Request().Header.Get(sessionHeader)
		cs.Remove(session, c.Param("jerseyid"), c.QueryParam("size"))
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		session := c.Request().Header.Get(sessionHeader)
		cs.Clear(session)
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
