package dictionary

import (
	"errors"
	"fmt"
	"slices"

	"github.com/fixkit/fixfactory/internal/catalog"
	"github.com/fixkit/fixfactory/internal/fix"
)

var (
	ErrDuplicateMsgType = errors.New("duplicate message type")
	ErrBadGroupLayout   = errors.New("bad group layout")
)

func init() {
	for _, c := range catalog.Candidates() {
		catalog.RegisterProvider(c.EntryPoint(), Provide)
	}
}

// Provide is the catalog.Provider for every known version.
func Provide(m *catalog.Module) (any, error) {
	return New(m)
}

// Catalog serves messages and groups for one BeginString. It is immutable
// after New and safe for concurrent use.
type Catalog struct {
	beginString string
	messages    map[string]*layout
}

type layout struct {
	name   string
	groups map[int]*fix.Group
}

// New builds a catalog from a parsed manifest.
func New(m *catalog.Module) (*Catalog, error) {
	c := &Catalog{
		beginString: m.BeginString,
		messages:    make(map[string]*layout, len(m.Messages)),
	}

	for _, def := range m.Messages {
		if _, exists := c.messages[def.MsgType]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMsgType, def.MsgType)
		}
		l := &layout{name: def.Name, groups: make(map[int]*fix.Group)}
		if err := l.addGroups(def.MsgType, def.Groups); err != nil {
			return nil, err
		}
		c.messages[def.MsgType] = l
	}
	return c, nil
}

func (l *layout) addGroups(msgType string, defs []catalog.GroupDef) error {
	for _, g := range defs {
		if len(g.Fields) == 0 || g.Fields[0] != g.Delim {
			return fmt.Errorf("%w: msg_type %q group %d: fields must start with delimiter %d",
				ErrBadGroupLayout, msgType, g.CounterTag, g.Delim)
		}
		if slices.Contains(g.Fields, g.CounterTag) {
			return fmt.Errorf("%w: msg_type %q group %d lists its own counter tag",
				ErrBadGroupLayout, msgType, g.CounterTag)
		}
		for _, nested := range g.Groups {
			if !slices.Contains(g.Fields, nested.CounterTag) {
				return fmt.Errorf("%w: msg_type %q group %d: nested group %d missing from fields",
					ErrBadGroupLayout, msgType, g.CounterTag, nested.CounterTag)
			}
		}

		tmpl := fix.NewGroup(g.CounterTag, g.Delim, g.Fields)
		if existing, ok := l.groups[g.CounterTag]; ok {
			if existing.Delim != tmpl.Delim || !slices.Equal(existing.FieldOrder, tmpl.FieldOrder) {
				return fmt.Errorf("%w: msg_type %q declares group %d twice with different layouts",
					ErrBadGroupLayout, msgType, g.CounterTag)
			}
		} else {
			l.groups[g.CounterTag] = tmpl
		}

		if err := l.addGroups(msgType, g.Groups); err != nil {
			return err
		}
	}
	return nil
}

// BeginString is the version this catalog was built for.
func (c *Catalog) BeginString() string {
	return c.beginString
}

// Create returns a message with MsgType set for known types. Unknown types
// yield an empty message.
func (c *Catalog) Create(beginString, msgType string) *fix.Message {
	msg := fix.NewMessage()
	if _, ok := c.messages[msgType]; ok {
		msg.Header.SetString(fix.TagMsgType, msgType)
	}
	return msg
}

// CreateGroup returns an empty instance of the group, or nil.
func (c *Catalog) CreateGroup(beginString, msgType string, counterTag int) *fix.Group {
	l, ok := c.messages[msgType]
	if !ok {
		return nil
	}
	tmpl, ok := l.groups[counterTag]
	if !ok {
		return nil
	}
	return tmpl.Clone()
}

// MessageName returns the declared name of msgType.
func (c *Catalog) MessageName(msgType string) (string, bool) {
	l, ok := c.messages[msgType]
	if !ok {
		return "", false
	}
	return l.name, true
}

// MsgTypes returns the declared message types, sorted.
func (c *Catalog) MsgTypes() []string {
	out := make([]string, 0, len(c.messages))
	for mt := range c.messages {
		out = append(out, mt)
	}
	slices.Sort(out)
	return out
}
