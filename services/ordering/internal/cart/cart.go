// Package cart holds the ordering session state and its transitions.
//
// State is a value: every transition returns a new State and leaves the
// receiver (and any slice it shares) untouched, so a snapshot taken before a
// transition stays valid after it.
package cart

import "strings"

type MenuItem struct {
	ID          int
	Name        string
	Description string
	Price       int64
	Image       string
}

type Entry struct {
	Item     MenuItem
	Quantity int
}

func (e Entry) LineTotal() int64 {
	return e.Item.Price * int64(e.Quantity)
}

type State struct {
	Entries []Entry
	Room    string
	Payment PaymentMethod
}

func (s State) index(itemID int) int {
	for i := range s.Entries {
		if s.Entries[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

func (s State) cloneEntries() []Entry {
	out := make([]Entry, len(s.Entries), len(s.Entries)+1)
	copy(out, s.Entries)
	return out
}

// AddItem increments the entry for item.ID, or appends a new one with quantity 1.
func (s State) AddItem(item MenuItem) State {
	entries := s.cloneEntries()
	if i := s.index(item.ID); i >= 0 {
		entries[i].Quantity++
	} else {
		entries = append(entries, Entry{Item: item, Quantity: 1})
	}
	s.Entries = entries
	return s
}

// RemoveItem decrements the entry for itemID, dropping it when it reaches zero.
// Unknown ids are a no-op.
func (s State) RemoveItem(itemID int) State {
	i := s.index(itemID)
	if i < 0 {
		return s
	}

	entries := s.cloneEntries()
	if entries[i].Quantity > 1 {
		entries[i].Quantity--
	} else {
		entries = append(entries[:i], entries[i+1:]...)
	}
	s.Entries = entries
	return s
}

func (s State) Clear() State {
	s.Entries = nil
	return s
}

func (s State) SetRoom(room string) State {
	s.Room = room
	return s
}

func (s State) SelectPayment(m PaymentMethod) State {
	s.Payment = m
	return s
}

func (s State) Quantity(itemID int) int {
	if i := s.index(itemID); i >= 0 {
		return s.Entries[i].Quantity
	}
	return 0
}

func (s State) IsEmpty() bool {
	return len(s.Entries) == 0
}

func (s State) TotalPrice() int64 {
	var total int64
	for _, e := range s.Entries {
		total += e.LineTotal()
	}
	return total
}

func (s State) ItemCount() int {
	var n int
	for _, e := range s.Entries {
		n += e.Quantity
	}
	return n
}

// CanSubmit reports whether the order may be placed. A room made only of
// whitespace does not count as filled in.
func (s State) CanSubmit() bool {
	return !s.IsEmpty() && strings.TrimSpace(s.Room) != "" && s.Payment.Valid()
}
