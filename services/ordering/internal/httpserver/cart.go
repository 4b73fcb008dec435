package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_ordering/pkg/logging"
	"github.com/Skotchmaster/hotel_ordering/pkg/middleware/session"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/service"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/transport"
)

type OrderingHTTP struct {
	Svc *service.OrderingService
}

func (h *OrderingHTTP) sessionID(c echo.Context, l *slog.Logger) (uuid.UUID, error) {
	sid, err := session.ID(c)
	if err != nil {
		l.Error("session_missing", "status", 500, "error", err)
		return uuid.Nil, echo.NewHTTPError(http.StatusInternalServerError, "no session")
	}
	return sid, nil
}

func (h *OrderingHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.NewCart(h.Svc.Cart(ctx, sid)))
}

func (h *OrderingHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	st, err := h.Svc.AddItem(ctx, sid, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_item_error", "status", 400, "reason", "item_id required", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "item_id must be a positive integer")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_item_error", "status", 404, "reason", "item not on menu", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		default:
			l.Error("add_item_error", "status", 500, "reason", "cannot add item", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot add item")
		}
	}

	l.Info("item_added", "item_id", req.ItemID)
	return c.JSON(http.StatusOK, transport.NewCart(st))
}

func (h *OrderingHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("remove_item_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	st := h.Svc.RemoveItem(ctx, sid, itemID)

	l.Info("item_removed", "item_id", itemID)
	return c.JSON(http.StatusOK, transport.NewCart(st))
}

func (h *OrderingHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear_cart")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	st := h.Svc.ClearCart(ctx, sid)

	l.Info("cart_cleared")
	return c.JSON(http.StatusOK, transport.NewCart(st))
}

func (h *OrderingHTTP) SetRoom(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_room")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	var req transport.SetRoomRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_room_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	st, err := h.Svc.SetRoom(ctx, sid, req.Room)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("set_room_error", "status", 400, "reason", "room too long", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "room is too long")
		}
		l.Error("set_room_error", "status", 500, "reason", "cannot set room", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot set room")
	}

	return c.JSON(http.StatusOK, transport.NewCart(st))
}

func (h *OrderingHTTP) SelectPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.select_payment")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	var req transport.SelectPaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("select_payment_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	st, err := h.Svc.SelectPayment(ctx, sid, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("select_payment_error", "status", 400, "reason", "unknown payment method", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown payment method")
		}
		l.Error("select_payment_error", "status", 500, "reason", "cannot select payment", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot select payment")
	}

	return c.JSON(http.StatusOK, transport.NewCart(st))
}

func (h *OrderingHTTP) GetDraft(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_draft")

	sid, err := h.sessionID(c, l)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.NewDraft(h.Svc.Draft(ctx, sid)))
}
