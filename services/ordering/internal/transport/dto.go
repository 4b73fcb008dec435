package transport

import "github.com/Skotchmaster/hotel_ordering/services/ordering/internal/cart"

type AddItemRequest struct {
	ItemID int `json:"item_id"`
}

type SetRoomRequest struct {
	Room string `json:"room"`
}

type SelectPaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type MenuItemResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Image          string `json:"image"`
}

type PaymentMethodResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type EntryResponse struct {
	ItemID             int    `json:"item_id"`
	Name               string `json:"name"`
	UnitPrice          int64  `json:"unit_price"`
	UnitPriceFormatted string `json:"unit_price_formatted"`
	Quantity           int    `json:"quantity"`
	LineTotal          int64  `json:"line_total"`
}

type CartResponse struct {
	Entries        []EntryResponse `json:"entries"`
	ItemCount      int             `json:"item_count"`
	Total          int64           `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	Room           string          `json:"room"`
	PaymentMethod  string          `json:"payment_method"`
	CanSubmit      bool            `json:"can_submit"`
}

func NewMenu(items []cart.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MenuItemResponse{
			ID:             it.ID,
			Name:           it.Name,
			Description:    it.Description,
			Price:          it.Price,
			PriceFormatted: cart.FormatPrice(it.Price),
			Image:          it.Image,
		})
	}
	return out
}

func NewPaymentMethods(opts []cart.PaymentOption) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, PaymentMethodResponse{Value: string(o.Method), Label: o.Label})
	}
	return out
}

func newEntries(entries []cart.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ItemID:             e.Item.ID,
			Name:               e.Item.Name,
			UnitPrice:          e.Item.Price,
			UnitPriceFormatted: cart.FormatPrice(e.Item.Price),
			Quantity:           e.Quantity,
			LineTotal:          e.LineTotal(),
		})
	}
	return out
}

func NewCart(st cart.State) CartResponse {
	total := st.TotalPrice()
	return CartResponse{
		Entries:        newEntries(st.Entries),
		ItemCount:      st.ItemCount(),
		Total:          total,
		TotalFormatted: cart.FormatPrice(total),
		Room:           st.Room,
		PaymentMethod:  string(st.Payment),
		CanSubmit:      st.CanSubmit(),
	}
}

func NewDraft(d cart.Draft) CartResponse {
	total := d.TotalPrice()
	return CartResponse{
		Entries:        newEntries(d.Entries),
		ItemCount:      d.ItemCount(),
		Total:          total,
		TotalFormatted: cart.FormatPrice(total),
		Room:           d.Room,
		PaymentMethod:  string(d.Payment),
		CanSubmit:      d.CanSubmit(),
	}
}
