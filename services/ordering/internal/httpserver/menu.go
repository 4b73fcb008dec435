package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_ordering/pkg/logging"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/cart"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/transport"
)

func (h *OrderingHTTP) GetMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get_menu")

	items, err := h.Svc.Menu(ctx)
	if err != nil {
		l.Error("get_menu_error", "status", 500, "reason", "cannot load menu", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load menu")
	}

	return c.JSON(http.StatusOK, transport.NewMenu(items))
}

func (h *OrderingHTTP) GetPaymentMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.NewPaymentMethods(cart.PaymentMethods()))
}
