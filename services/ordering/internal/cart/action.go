package cart

// Action is one user intent. Reduce applies it to a State.
type Action interface {
	apply(State) State
}

type AddItem struct{ Item MenuItem }

type RemoveItem struct{ ItemID int }

type Clear struct{}

type SetRoom struct{ Room string }

type SelectPayment struct{ Method PaymentMethod }

func (a AddItem) apply(s State) State       { return s.AddItem(a.Item) }
func (a RemoveItem) apply(s State) State    { return s.RemoveItem(a.ItemID) }
func (Clear) apply(s State) State           { return s.Clear() }
func (a SetRoom) apply(s State) State       { return s.SetRoom(a.Room) }
func (a SelectPayment) apply(s State) State { return s.SelectPayment(a.Method) }

func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
