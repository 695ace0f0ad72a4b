package fix

// Group is one instance of a repeating group. CounterTag is the NoXXX field
// announcing the number of instances; Delim is the first field of every
// instance.
type Group struct {
	*FieldMap

	CounterTag int
	Delim      int
	FieldOrder []int
}

// NewGroup returns an empty group instance. fieldOrder must begin with delim.
func NewGroup(counterTag, delim int, fieldOrder []int) *Group {
	order := make([]int, len(fieldOrder))
	copy(order, fieldOrder)
	return &Group{
		FieldMap:   NewFieldMap(),
		CounterTag: counterTag,
		Delim:      delim,
		FieldOrder: order,
	}
}

// Clone returns an empty instance with the same layout.
func (g *Group) Clone() *Group {
	return NewGroup(g.CounterTag, g.Delim, g.FieldOrder)
}
