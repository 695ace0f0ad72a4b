package fix

// Message is a protocol message split into its three sections.
type Message struct {
	Header  *FieldMap
	Body    *FieldMap
	Trailer *FieldMap
}

// NewMessage returns a message with empty sections.
func NewMessage() *Message {
	return &Message{
		Header:  NewFieldMap(),
		Body:    NewFieldMap(),
		Trailer: NewFieldMap(),
	}
}

// MsgType returns the header MsgType(35) value, or "" when unset.
func (m *Message) MsgType() string {
	v, _ := m.Header.GetString(TagMsgType)
	return v
}

// String renders header, body and trailer in order.
func (m *Message) String() string {
	return m.Header.String() + m.Body.String() + m.Trailer.String()
}
