package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_ordering/pkg/middleware/csrf"
	"github.com/Skotchmaster/hotel_ordering/pkg/middleware/session"
)

type Deps struct {
	Handler *OrderingHTTP
	Session *session.Middleware
	// CSRF guards the cart routes when set.
	CSRF *csrf.Config
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/menu", d.Handler.GetMenu)
	e.GET("/payment-methods", d.Handler.GetPaymentMethods)

	cart := e.Group("/cart")
	cart.Use(d.Session.Require)
	if d.CSRF != nil {
		cart.Use(csrf.Middleware(*d.CSRF))
	}

	cart.GET("", d.Handler.GetCart)
	cart.DELETE("", d.Handler.ClearCart)
	cart.POST("/items", d.Handler.AddItem)
	cart.DELETE("/items/:id", d.Handler.RemoveItem)
	cart.PUT("/room", d.Handler.SetRoom)
	cart.PUT("/payment", d.Handler.SelectPayment)
	cart.GET("/draft", d.Handler.GetDraft)
}
