package fix

import "strings"

// Standard header tags referenced by the factory.
const (
	TagBeginString = 8
	TagMsgType     = 35
)

// BeginString values for every protocol revision the factory knows about.
const (
	BeginStringFIX40    = "FIX.4.0"
	BeginStringFIX41    = "FIX.4.1"
	BeginStringFIX42    = "FIX.4.2"
	BeginStringFIX43    = "FIX.4.3"
	BeginStringFIX44    = "FIX.4.4"
	BeginStringFIX50    = "FIX.5.0"
	BeginStringFIX50SP1 = "FIX.5.0SP1"
	BeginStringFIX50SP2 = "FIX.5.0SP2"
	BeginStringFIXT11   = "FIXT.1.1"
)

// Session-level message types.
const (
	MsgTypeHeartbeat     = "0"
	MsgTypeTestRequest   = "1"
	MsgTypeResendRequest = "2"
	MsgTypeReject        = "3"
	MsgTypeSequenceReset = "4"
	MsgTypeLogout        = "5"
	MsgTypeLogon         = "A"
)

// IsAdminMsgType reports whether msgType is a session-level message.
func IsAdminMsgType(msgType string) bool {
	return len(msgType) == 1 && strings.Contains("0A12345", msgType)
}
