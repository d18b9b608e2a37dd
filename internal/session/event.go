// Package session owns the broker session lifecycle and command dispatch.
package session

// Event is the closed set of session lifecycle events. Each variant carries
// only the payload relevant to it; the controller dispatches on the concrete
// type and treats anything else as purely diagnostic.
type Event interface {
	isEvent()
}

// ConnectedEvent signals that the broker session is (re-)established
type ConnectedEvent struct{}

// DisconnectedEvent signals that the broker session dropped. Reason carries
// the server's reason string when the DISCONNECT packet provided one.
type DisconnectedEvent struct {
	Reason string
}

// MessageEvent is one inbound publish, delivered once and not retained after
// handling returns
type MessageEvent struct {
	Topic   string
	Payload []byte
}

// PublishAckEvent signals that an outbound publish completed its QoS handshake
type PublishAckEvent struct {
	ID uint32
}

// SubscribeAckEvent signals that a subscribe request was acknowledged
type SubscribeAckEvent struct {
	ID uint32
}

// ErrorEvent carries a classified session error. Recovery is the transport's
// business (auto-reconnect); the controller only surfaces diagnostics.
type ErrorEvent struct {
	Stage string // "connect", "publish", "subscribe", "client"
	Kind  ErrorKind
	Err   error
}

func (ConnectedEvent) isEvent()    {}
func (DisconnectedEvent) isEvent() {}
func (MessageEvent) isEvent()      {}
func (PublishAckEvent) isEvent()   {}
func (SubscribeAckEvent) isEvent() {}
func (ErrorEvent) isEvent()        {}
