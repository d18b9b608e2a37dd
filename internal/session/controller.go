package session

import (
	"context"
	"sync"

	"github.com/dorra-iot/dorrad/internal/actuator"
	"github.com/dorra-iot/dorrad/internal/command"
	"github.com/dorra-iot/dorrad/internal/config"
	"github.com/dorra-iot/dorrad/internal/log"
	"github.com/dorra-iot/dorrad/internal/status"
)

// Bus is the capability interface the controller drives the broker through.
// Publish and Subscribe are non-blocking enqueues: they return a locally
// assigned message id immediately, and completion arrives later as a
// PublishAckEvent / SubscribeAckEvent (or an ErrorEvent). The controller never
// retries an enqueue failure.
type Bus interface {
	Publish(msg status.Message) (uint32, error)
	Subscribe(topic string, qos byte) (uint32, error)
	Close(ctx context.Context) error
}

// Controller reacts to session lifecycle events and drives the actuator and
// outbound publishes. It holds no connection state of its own; reconnection
// belongs entirely to the transport.
type Controller struct {
	mu       sync.Mutex
	bus      Bus
	driver   *actuator.Driver
	decoder  *command.Decoder
	reporter *status.Reporter

	controlTopic string
	qos          byte
	log          *log.Logger
}

// NewController wires the controller to its collaborators
func NewController(
	bus Bus,
	driver *actuator.Driver,
	decoder *command.Decoder,
	reporter *status.Reporter,
	cfg *config.TopicsConfig,
	logger *log.Logger,
) *Controller {
	return &Controller{
		bus:          bus,
		driver:       driver,
		decoder:      decoder,
		reporter:     reporter,
		controlTopic: cfg.Control,
		qos:          cfg.QoS,
		log:          logger,
	}
}

// Handle dispatches one lifecycle event. The transport delivers events from
// its own goroutines, so Handle serializes every core call: actuator state
// has a single writer.
func (c *Controller) Handle(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev := ev.(type) {
	case ConnectedEvent:
		c.onConnected()
	case DisconnectedEvent:
		if ev.Reason != "" {
			c.log.Info("Session disconnected: %s", ev.Reason)
		} else {
			c.log.Info("Session disconnected")
		}
	case MessageEvent:
		c.onMessage(ev)
	case PublishAckEvent:
		c.log.Info("Publish acknowledged, id=%d", ev.ID)
	case SubscribeAckEvent:
		c.log.Info("Subscribe acknowledged, id=%d", ev.ID)
	case ErrorEvent:
		c.onError(ev)
	default:
		c.log.Info("Other session event: %T", ev)
	}
}

// onConnected announces liveness and subscribes to the control topic.
// Both calls are fire-and-forget: failure to enqueue is reported, not
// recovered.
func (c *Controller) onConnected() {
	c.log.Info("Session connected")

	msg := c.reporter.Connected()
	if id, err := c.bus.Publish(msg); err != nil {
		c.log.Error("Failed to enqueue connected announcement: %v", err)
	} else {
		c.log.Info("Published connected announcement to %s, id=%d", msg.Topic, id)
	}

	if id, err := c.bus.Subscribe(c.controlTopic, c.qos); err != nil {
		c.log.Error("Failed to enqueue subscription to %s: %v", c.controlTopic, err)
	} else {
		c.log.Info("Subscribed to %s, id=%d", c.controlTopic, id)
	}
}

// onMessage routes control-topic payloads to the decoder; anything else is
// ignored.
func (c *Controller) onMessage(ev MessageEvent) {
	if ev.Topic != c.controlTopic {
		c.log.Debug("Ignoring message on topic %s", ev.Topic)
		return
	}

	c.log.Info("Processing control message: %s", ev.Payload)

	switch cmd := c.decoder.Decode(ev.Payload); cmd {
	case command.Open:
		c.log.Info("Command: OPEN received")
		c.actuate(true, c.reporter.Opened())
	case command.Close:
		c.log.Info("Command: CLOSE received")
		c.actuate(false, c.reporter.Closed())
	default:
		c.log.Warn("Unknown command received: %q", ev.Payload)
	}
}

// actuate drives the output, then confirms. The order is a guarantee: the
// confirmation is never enqueued before the state it describes has taken
// effect.
func (c *Controller) actuate(on bool, reply status.Message) {
	c.driver.Set(on)

	if id, err := c.bus.Publish(reply); err != nil {
		c.log.Error("Failed to enqueue confirmation %q: %v", reply.Payload, err)
	} else {
		c.log.Info("Sent confirmation %q, id=%d", reply.Payload, id)
	}
}

// onError surfaces diagnostics; the transport's auto-reconnect is the only
// corrective action taken anywhere.
func (c *Controller) onError(ev ErrorEvent) {
	c.log.Error("Session %s error during %s: %v", ev.Kind, ev.Stage, ev.Err)

	if ev.Kind != KindTransport {
		return
	}
	if tlsErr := tlsError(ev.Err); tlsErr != nil {
		c.log.Error("Reported from secure transport: %v", tlsErr)
	}
	if errno := socketErrno(ev.Err); errno != 0 {
		c.log.Error("Transport socket errno %d (%s)", int(errno), errno.Error())
	}
}
