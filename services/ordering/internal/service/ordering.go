package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/hotel_ordering/pkg/events"
	"github.com/Skotchmaster/hotel_ordering/pkg/logging"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/cart"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/repo"
)

const (
	MaxRoomLength  = 64
	publishTimeout = 5 * time.Second
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type OrderingService struct {
	Repo     *repo.GormRepo
	Sessions *repo.SessionStore
	Events   events.Publisher
}

func (s *OrderingService) Menu(ctx context.Context) ([]cart.MenuItem, error) {
	return s.Repo.ListMenu(ctx)
}

func (s *OrderingService) Cart(ctx context.Context, sid uuid.UUID) cart.State {
	return s.Sessions.Snapshot(sid)
}

func (s *OrderingService) AddItem(ctx context.Context, sid uuid.UUID, itemID int) (cart.State, error) {
	if itemID <= 0 {
		return cart.State{}, fmt.Errorf("item id must be positive: %w", ErrValidation)
	}

	item, err := s.Repo.GetMenuItem(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.State{}, fmt.Errorf("menu item %d: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return cart.State{}, fmt.Errorf("get menu item %d: %w", itemID, err)
	}

	_, st := s.Sessions.Apply(sid, cart.AddItem{Item: item})
	s.publish(ctx, newEvent(EventItemAdded, sid, st).withItem(itemID, st.Quantity(itemID)))
	return st, nil
}

// RemoveItem takes one unit of itemID out of the cart. Items not in the cart
// leave it unchanged.
func (s *OrderingService) RemoveItem(ctx context.Context, sid uuid.UUID, itemID int) cart.State {
	before, st := s.Sessions.Apply(sid, cart.RemoveItem{ItemID: itemID})
	if before.Quantity(itemID) > 0 {
		s.publish(ctx, newEvent(EventItemRemoved, sid, st).withItem(itemID, st.Quantity(itemID)))
	}
	return st
}

func (s *OrderingService) ClearCart(ctx context.Context, sid uuid.UUID) cart.State {
	_, st := s.Sessions.Apply(sid, cart.Clear{})
	s.publish(ctx, newEvent(EventCartCleared, sid, st))
	return st
}

func (s *OrderingService) SetRoom(ctx context.Context, sid uuid.UUID, room string) (cart.State, error) {
	if utf8.RuneCountInString(room) > MaxRoomLength {
		return cart.State{}, fmt.Errorf("room longer than %d characters: %w", MaxRoomLength, ErrValidation)
	}

	_, st := s.Sessions.Apply(sid, cart.SetRoom{Room: room})
	ev := newEvent(EventRoomSet, sid, st)
	ev.Room = room
	s.publish(ctx, ev)
	return st, nil
}

func (s *OrderingService) SelectPayment(ctx context.Context, sid uuid.UUID, raw string) (cart.State, error) {
	m, err := cart.ParsePaymentMethod(raw)
	if err != nil {
		return cart.State{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	_, st := s.Sessions.Apply(sid, cart.SelectPayment{Method: m})
	ev := newEvent(EventPaymentSelected, sid, st)
	ev.PaymentMethod = string(m)
	s.publish(ctx, ev)
	return st, nil
}

func (s *OrderingService) Draft(ctx context.Context, sid uuid.UUID) cart.Draft {
	return s.Sessions.Snapshot(sid).Draft()
}

func (s *OrderingService) publish(ctx context.Context, ev CartEvent) {
	if s.Events == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.Events.PublishEvent(pubCtx, events.TopicCartEvents, ev.SessionID.String(), ev); err != nil {
		logging.FromContext(ctx).Warn("cart_event_publish_error", "type", ev.Type, "session_id", ev.SessionID, "error", err)
	}
}

func newEvent(typ string, sid uuid.UUID, st cart.State) CartEvent {
	return CartEvent{
		Type:      typ,
		SessionID: sid,
		ItemCount: st.ItemCount(),
		Total:     st.TotalPrice(),
	}
}

func (e CartEvent) withItem(itemID, qty int) CartEvent {
	e.ItemID = itemID
	e.Quantity = qty
	return e
}
