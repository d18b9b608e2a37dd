package session

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
	"github.com/eclipse/paho.golang/paho/session/state"
	"github.com/google/uuid"

	"github.com/dorra-iot/dorrad/internal/config"
	"github.com/dorra-iot/dorrad/internal/log"
	"github.com/dorra-iot/dorrad/internal/status"
)

// Handler receives session lifecycle events. The client is the only
// integration point between the transport's goroutines and the core; the
// handler must serialize internally (Controller.Handle does).
type Handler interface {
	Handle(ev Event)
}

// HandlerFunc adapts a plain function to the Handler interface
type HandlerFunc func(Event)

// Handle calls f(ev)
func (f HandlerFunc) Handle(ev Event) { f(ev) }

// Client implements Bus over an MQTT v5 connection manager. The session is a
// process-level resource: created once at startup, auto-reconnecting, never
// explicitly destroyed before process exit. The last-will disconnect
// announcement is registered once at session creation and handled entirely by
// the broker.
type Client struct {
	cfg     *config.MQTTConfig
	will    status.Message
	handler Handler
	log     *log.Logger

	clientID string
	nextID   atomic.Uint32

	mu sync.RWMutex
	cm *autopaho.ConnectionManager
}

// NewClient prepares a session client. No connection is attempted until Open.
func NewClient(cfg *config.MQTTConfig, will status.Message, handler Handler, logger *log.Logger) (*Client, error) {
	if _, err := url.Parse(cfg.BrokerURL); err != nil {
		return nil, fmt.Errorf("invalid broker URL: %w", err)
	}
	if handler == nil {
		return nil, fmt.Errorf("session handler is required")
	}

	return &Client{
		cfg:     cfg,
		will:    will,
		handler: handler,
		log:     logger,
		// Devices share an image, so the configured ID alone would collide
		clientID: fmt.Sprintf("%s-%s", cfg.ClientID, uuid.NewString()[:8]),
	}, nil
}

// ClientID returns the broker client identifier for this session
func (c *Client) ClientID() string {
	return c.clientID
}

// Open establishes the broker session. The connection manager owns reconnect
// retries and backoff from here on; lifecycle callbacks are translated into
// events and handed to the handler.
func (c *Client) Open(ctx context.Context) error {
	serverURL, err := url.Parse(c.cfg.BrokerURL)
	if err != nil {
		return fmt.Errorf("invalid broker URL: %w", err)
	}

	pahoCfg := autopaho.ClientConfig{
		ServerUrls:                    []*url.URL{serverURL},
		KeepAlive:                     c.cfg.KeepAlive,
		CleanStartOnInitialConnection: false,
		SessionExpiryInterval:         c.cfg.SessionExpiry,
		ReconnectBackoff:              autopaho.NewConstantBackoff(c.cfg.ReconnectInterval),
		ConnectTimeout:                c.cfg.ConnectTimeout,
		WillMessage: &paho.WillMessage{
			Topic:   c.will.Topic,
			Payload: c.will.Payload,
			QoS:     c.will.QoS,
			Retain:  c.will.Retain,
		},
		OnConnectionUp: c.onConnectionUp,
		OnConnectError: c.onConnectError,
		ClientConfig: paho.ClientConfig{
			ClientID: c.clientID,
			Session:  state.NewInMemory(),
			OnPublishReceived: []func(paho.PublishReceived) (bool, error){
				c.onPublishReceived,
			},
			OnClientError:      c.onClientError,
			OnServerDisconnect: c.onServerDisconnect,
		},
	}

	if needsTLS(serverURL.Scheme) || c.cfg.CACert != "" || c.cfg.ClientCert != "" {
		tlsCfg, err := newTLSConfig(c.cfg)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
		pahoCfg.TlsCfg = tlsCfg
	}

	c.log.Info("Opening broker session to %s as %s", c.cfg.BrokerURL, c.clientID)

	cm, err := autopaho.NewConnection(ctx, pahoCfg)
	if err != nil {
		return fmt.Errorf("failed to start connection manager: %w", err)
	}
	c.setCM(cm)
	return nil
}

// Publish enqueues an outbound status message and returns its local id. The
// QoS handshake completes asynchronously and is reported as a PublishAckEvent
// or an ErrorEvent.
func (c *Client) Publish(msg status.Message) (uint32, error) {
	cm := c.getCM()
	if cm == nil {
		return 0, fmt.Errorf("session not open")
	}

	id := c.nextID.Add(1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.PublishTimeout)
		defer cancel()

		_, err := cm.Publish(ctx, &paho.Publish{
			Topic:   msg.Topic,
			QoS:     msg.QoS,
			Retain:  msg.Retain,
			Payload: msg.Payload,
		})
		if err != nil {
			c.handler.Handle(classify("publish", err))
			return
		}
		c.handler.Handle(PublishAckEvent{ID: id})
	}()
	return id, nil
}

// Subscribe enqueues a subscription request; the SUBACK is reported as a
// SubscribeAckEvent or an ErrorEvent.
func (c *Client) Subscribe(topic string, qos byte) (uint32, error) {
	cm := c.getCM()
	if cm == nil {
		return 0, fmt.Errorf("session not open")
	}

	id := c.nextID.Add(1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.SubscribeTimeout)
		defer cancel()

		_, err := cm.Subscribe(ctx, &paho.Subscribe{
			Subscriptions: []paho.SubscribeOptions{
				{Topic: topic, QoS: qos},
			},
		})
		if err != nil {
			c.handler.Handle(classify("subscribe", err))
			return
		}
		c.handler.Handle(SubscribeAckEvent{ID: id})
	}()
	return id, nil
}

// AwaitConnection blocks until the session is up or ctx expires
func (c *Client) AwaitConnection(ctx context.Context) error {
	cm := c.getCM()
	if cm == nil {
		return fmt.Errorf("session not open")
	}
	return cm.AwaitConnection(ctx)
}

// Close disconnects cleanly. A clean disconnect suppresses the broker-side
// will message.
func (c *Client) Close(ctx context.Context) error {
	cm := c.getCM()
	if cm == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.DisconnectTimeout)
	defer cancel()
	return cm.Disconnect(ctx)
}

// --- transport callbacks, translated into events ---

func (c *Client) onConnectionUp(cm *autopaho.ConnectionManager, _ *paho.Connack) {
	// The first connection can come up before NewConnection returns
	c.setCM(cm)
	c.handler.Handle(ConnectedEvent{})
}

func (c *Client) onConnectError(err error) {
	c.handler.Handle(classify("connect", err))
}

func (c *Client) onClientError(err error) {
	c.handler.Handle(classify("client", err))
}

func (c *Client) onServerDisconnect(d *paho.Disconnect) {
	reason := fmt.Sprintf("reason code %d", d.ReasonCode)
	if d.Properties != nil && d.Properties.ReasonString != "" {
		reason = d.Properties.ReasonString
	}
	c.handler.Handle(DisconnectedEvent{Reason: reason})
}

func (c *Client) onPublishReceived(pr paho.PublishReceived) (bool, error) {
	c.handler.Handle(MessageEvent{
		Topic:   pr.Packet.Topic,
		Payload: pr.Packet.Payload,
	})
	return true, nil
}

func (c *Client) setCM(cm *autopaho.ConnectionManager) {
	c.mu.Lock()
	c.cm = cm
	c.mu.Unlock()
}

func (c *Client) getCM() *autopaho.ConnectionManager {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cm
}

func needsTLS(scheme string) bool {
	switch scheme {
	case "ssl", "tls", "mqtts", "tcps", "wss":
		return true
	default:
		return false
	}
}
