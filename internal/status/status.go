// Package status formats the outbound announcement and confirmation messages.
package status

import "github.com/dorra-iot/dorrad/internal/config"

// Message is an outbound (topic, payload, qos, retain) tuple
type Message struct {
	Topic   string
	Payload []byte
	QoS     byte
	Retain  bool
}

// Reporter builds status messages from the configured topic and literals.
// Every message goes out at the configured QoS with retain=false, except the
// last-will disconnect announcement, which is retained so a newly-subscribing
// client immediately learns the last-known liveness state.
type Reporter struct {
	topic        string
	qos          byte
	connected    string
	disconnected string
	openReply    string
	closeReply   string
}

// NewReporter creates a reporter bound to the status topic
func NewReporter(cfg *config.TopicsConfig) *Reporter {
	return &Reporter{
		topic:        cfg.Status,
		qos:          cfg.QoS,
		connected:    cfg.ConnectedMessage,
		disconnected: cfg.DisconnectedMessage,
		openReply:    cfg.OpenReply,
		closeReply:   cfg.CloseReply,
	}
}

// Connected is the announcement published on every successful connect
func (r *Reporter) Connected() Message {
	return r.transient(r.connected)
}

// Opened confirms that the actuator has been driven to ON
func (r *Reporter) Opened() Message {
	return r.transient(r.openReply)
}

// Closed confirms that the actuator has been driven to OFF
func (r *Reporter) Closed() Message {
	return r.transient(r.closeReply)
}

// Will is the last-will message registered once at session creation.
// The broker publishes it on the device's behalf if the session drops
// without a clean disconnect.
func (r *Reporter) Will() Message {
	return Message{
		Topic:   r.topic,
		Payload: []byte(r.disconnected),
		QoS:     r.qos,
		Retain:  true,
	}
}

func (r *Reporter) transient(payload string) Message {
	return Message{
		Topic:   r.topic,
		Payload: []byte(payload),
		QoS:     r.qos,
		Retain:  false,
	}
}
