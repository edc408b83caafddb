package main

import (
	"errors"
	"net/http"

	"JerseyStoreAPI/internal/model"
	"JerseyStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCheckoutRoutes(g *echo.Group, cs *services.CheckoutService) {
	// CHECKOUT — writes order + items, clears the cart on success
	g.POST("/checkout", func(c echo.Context) error {
		session := c.Request().Header.Get(sessionHeader)
		form := new(model.CheckoutForm)
		if err := c.Bind(form); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}

		orderID, err := cs.Submit(c.Request().Context(), session, *form)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidationRejected), errors.Is(err, services.ErrEmptyCart):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			case errors.Is(err, services.ErrCheckoutInFlight):
				return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			default:
				return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"orderid": orderID})
	})

	// GET order with items
	g.GET("/orders/:id", func(c echo.Context) error {
		order, err := cs.GetOrder(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, order)
	})
}
