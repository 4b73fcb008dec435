package service

import "github.com/google/uuid"

const (
	EventItemAdded       = "cart_item_added"
	EventItemRemoved     = "cart_item_removed"
	EventCartCleared     = "cart_cleared"
	EventRoomSet         = "room_set"
	EventPaymentSelected = "payment_selected"
)

type CartEvent struct {
	Type          string    `json:"type"`
	SessionID     uuid.UUID `json:"session_id"`
	ItemID        int       `json:"item_id,omitempty"`
	Quantity      int       `json:"quantity"`
	Room          string    `json:"room,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	ItemCount     int       `json:"item_count"`
	Total         int64     `json:"total"`
}
