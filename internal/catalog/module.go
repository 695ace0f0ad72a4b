package catalog

// Module is a parsed catalog module manifest.
type Module struct {
	Module      string       `yaml:"module" json:"module"`
	BeginString string       `yaml:"begin_string" json:"begin_string"`
	EntryPoint  string       `yaml:"entry_point,omitempty" json:"entry_point,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Messages    []MessageDef `yaml:"messages" json:"messages"`

	// Path is the file the manifest was read from; empty for in-memory parses.
	Path string `yaml:"-" json:"-"`
}

// MessageDef declares one message type and the repeating groups it carries.
type MessageDef struct {
	MsgType string     `yaml:"msg_type" json:"msg_type"`
	Name    string     `yaml:"name" json:"name"`
	Groups  []GroupDef `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// GroupDef declares a repeating group. Fields lists the member tags in
// order and must start with Delim. Nested groups are opened by a counter
// tag listed in Fields.
type GroupDef struct {
	CounterTag int        `yaml:"counter_tag" json:"counter_tag"`
	Name       string     `yaml:"name,omitempty" json:"name,omitempty"`
	Delim      int        `yaml:"delim" json:"delim"`
	Fields     []int      `yaml:"fields" json:"fields"`
	Groups     []GroupDef `yaml:"groups,omitempty" json:"groups,omitempty"`
}
