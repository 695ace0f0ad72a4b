package fix

import (
	"strconv"
	"strings"
)

// FieldMap stores tag/value pairs in insertion order together with any
// repeating groups attached to it.
type FieldMap struct {
	values map[int]string
	order  []int
	groups map[int][]*Group
}

// NewFieldMap returns an empty field map.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[int]string)}
}

// SetString sets tag to value, keeping the tag's original position if it was
// already present.
func (m *FieldMap) SetString(tag int, value string) {
	if _, ok := m.values[tag]; !ok {
		m.order = append(m.order, tag)
	}
	m.values[tag] = value
}

// SetInt sets tag to the decimal form of value.
func (m *FieldMap) SetInt(tag, value int) {
	m.SetString(tag, strconv.Itoa(value))
}

// GetString returns the value stored under tag.
func (m *FieldMap) GetString(tag int) (string, bool) {
	v, ok := m.values[tag]
	return v, ok
}

// Len returns the number of fields set, not counting group instances.
func (m *FieldMap) Len() int {
	return len(m.values)
}

// AddGroup appends one instance of a repeating group and keeps the counter
// field in step with the number of instances.
func (m *FieldMap) AddGroup(g *Group) {
	if m.groups == nil {
		m.groups = make(map[int][]*Group)
	}
	m.groups[g.CounterTag] = append(m.groups[g.CounterTag], g)
	m.SetInt(g.CounterTag, len(m.groups[g.CounterTag]))
}

// String renders the map as tag=value pairs separated by '|'. Group
// instances follow their counter field.
func (m *FieldMap) String() string {
	var b strings.Builder
	m.write(&b)
	return b.String()
}

func (m *FieldMap) write(b *strings.Builder) {
	for _, tag := range m.order {
		b.WriteString(strconv.Itoa(tag))
		b.WriteByte('=')
		b.WriteString(m.values[tag])
		b.WriteByte('|')
		for _, g := range m.groups[tag] {
			g.FieldMap.write(b)
		}
	}
}
