// Package config provides configuration loading and validation from environment variables and command line flags.
package config

import "time"

// Config holds the complete configuration
type Config struct {
	MQTT     MQTTConfig
	Topics   TopicsConfig
	Actuator ActuatorConfig
	Storage  StorageConfig
	Bearer   BearerConfig
}

// MQTTConfig holds the broker session configuration.
// The session always speaks MQTT protocol version 5; the broker URL scheme
// selects plaintext vs secure transport.
type MQTTConfig struct {
	BrokerURL         string
	ClientID          string
	KeepAlive         uint16 // Seconds
	SessionExpiry     uint32 // Seconds
	ConnectTimeout    time.Duration
	ReconnectInterval time.Duration
	PublishTimeout    time.Duration
	SubscribeTimeout  time.Duration
	DisconnectTimeout time.Duration
	// TLS Configuration
	CACert       string
	ClientCert   string
	ClientKey    string
	InsecureSkip bool
}

// TopicsConfig holds the control-channel topics and payload literals.
// These are fixed per deployment; tests inject alternates.
type TopicsConfig struct {
	Status  string
	Control string
	QoS     byte
	// Inbound command literals (byte-exact, case-sensitive)
	OpenCommand  string
	CloseCommand string
	// Outbound announcement and confirmation literals
	ConnectedMessage    string
	DisconnectedMessage string
	OpenReply           string
	CloseReply          string
}

// ActuatorConfig holds the output pin configuration
type ActuatorConfig struct {
	Chip       string // GPIO character device, e.g. "gpiochip0"
	Line       int    // Line offset on the chip
	ActiveHigh bool   // Polarity: true drives the line high for logical ON
}

// StorageConfig holds the persistent-store configuration
type StorageConfig struct {
	Address      string
	KeyPrefix    string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PingTimeout  time.Duration
}

// BearerConfig holds the network readiness gate configuration
type BearerConfig struct {
	ProbeAddress  string // host:port to dial; derived from the broker URL when empty
	ProbeInterval time.Duration
	WaitTimeout   time.Duration
}
