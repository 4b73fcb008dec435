package cart

// Draft is the order as it would be submitted. It owns its entries.
type Draft struct {
	Entries []Entry
	Room    string
	Payment PaymentMethod
}

func (s State) Draft() Draft {
	var entries []Entry
	if len(s.Entries) > 0 {
		entries = make([]Entry, len(s.Entries))
		copy(entries, s.Entries)
	}
	return Draft{
		Entries: entries,
		Room:    s.Room,
		Payment: s.Payment,
	}
}

func (d Draft) state() State {
	return State{Entries: d.Entries, Room: d.Room, Payment: d.Payment}
}

func (d Draft) CanSubmit() bool {
	return d.state().CanSubmit()
}

func (d Draft) TotalPrice() int64 {
	return d.state().TotalPrice()
}

func (d Draft) ItemCount() int {
	return d.state().ItemCount()
}
