package config

import (
	"flag"
)

// Command line flags (have precedence over environment variables)
var (
	// MQTT flags
	flagMQTTBroker            = flag.String("mqtt-broker", "", "MQTT broker URL")
	flagMQTTClientID          = flag.String("mqtt-client-id", "", "MQTT client ID")
	flagMQTTKeepAlive         = flag.Int("mqtt-keep-alive", 0, "MQTT keep alive (seconds)")
	flagMQTTSessionExpiry     = flag.Int("mqtt-session-expiry", 0, "MQTT session expiry interval (seconds)")
	flagMQTTConnectTimeout    = flag.Duration("mqtt-connect-timeout", 0, "MQTT connect timeout")
	flagMQTTReconnectInterval = flag.Duration("mqtt-reconnect-interval", 0, "MQTT reconnect backoff interval")
	flagMQTTPublishTimeout    = flag.Duration("mqtt-publish-timeout", 0, "MQTT publish timeout")
	flagMQTTSubscribeTimeout  = flag.Duration("mqtt-subscribe-timeout", 0, "MQTT subscribe timeout")
	flagMQTTDisconnectTimeout = flag.Duration("mqtt-disconnect-timeout", 0, "MQTT graceful disconnect timeout")
	flagMQTTCACert            = flag.String("mqtt-ca-cert", "", "MQTT CA certificate path")
	flagMQTTClientCert        = flag.String("mqtt-client-cert", "", "MQTT client certificate path")
	flagMQTTClientKey         = flag.String("mqtt-client-key", "", "MQTT client key path")
	flagMQTTTLSInsecureSkip   = flag.Bool("mqtt-tls-insecure-skip", false, "Skip MQTT TLS verification")

	// Topic flags
	flagTopicStatus  = flag.String("topic-status", "", "Status topic (device to broker)")
	flagTopicControl = flag.String("topic-control", "", "Control topic (broker to device)")
	flagTopicQoS     = flag.Int("topic-qos", -1, "QoS for status and control traffic (0, 1, or 2)")

	// Actuator flags
	flagActuatorChip       = flag.String("actuator-chip", "", "GPIO chip device name")
	flagActuatorLine       = flag.Int("actuator-line", -1, "GPIO line offset")
	flagActuatorActiveHigh = flag.Bool("actuator-active-high", true, "Drive the line high for logical ON")

	// Storage flags
	flagRedisAddress      = flag.String("redis-address", "", "Redis address")
	flagRedisKeyPrefix    = flag.String("redis-key-prefix", "", "Redis key prefix")
	flagRedisDialTimeout  = flag.Duration("redis-dial-timeout", 0, "Redis dial timeout")
	flagRedisReadTimeout  = flag.Duration("redis-read-timeout", 0, "Redis read timeout")
	flagRedisWriteTimeout = flag.Duration("redis-write-timeout", 0, "Redis write timeout")
	flagRedisPingTimeout  = flag.Duration("redis-ping-timeout", 0, "Redis ping timeout")

	// Bearer flags
	flagBearerProbeAddress  = flag.String("bearer-probe-address", "", "Network probe address (host:port)")
	flagBearerProbeInterval = flag.Duration("bearer-probe-interval", 0, "Network probe interval")
	flagBearerWaitTimeout   = flag.Duration("bearer-wait-timeout", 0, "Network readiness wait timeout")
)

// applyMQTTFlags applies command line flags to the broker session configuration
func applyMQTTFlags(cfg *MQTTConfig) {
	applyMQTTFlagStrings(cfg)
	applyMQTTFlagInts(cfg)
	applyMQTTFlagTimeouts(cfg)
	applyMQTTFlagTLS(cfg)
}

func applyMQTTFlagStrings(cfg *MQTTConfig) {
	if *flagMQTTBroker != "" {
		cfg.BrokerURL = *flagMQTTBroker
	}
	if *flagMQTTClientID != "" {
		cfg.ClientID = *flagMQTTClientID
	}
}

func applyMQTTFlagInts(cfg *MQTTConfig) {
	if *flagMQTTKeepAlive > 0 && *flagMQTTKeepAlive <= 65535 {
		cfg.KeepAlive = uint16(*flagMQTTKeepAlive) // #nosec G115 - validated range
	}
	if *flagMQTTSessionExpiry > 0 {
		cfg.SessionExpiry = uint32(*flagMQTTSessionExpiry) // #nosec G115 - config values are non-negative
	}
}

func applyMQTTFlagTimeouts(cfg *MQTTConfig) {
	if *flagMQTTConnectTimeout != 0 {
		cfg.ConnectTimeout = *flagMQTTConnectTimeout
	}
	if *flagMQTTReconnectInterval != 0 {
		cfg.ReconnectInterval = *flagMQTTReconnectInterval
	}
	if *flagMQTTPublishTimeout != 0 {
		cfg.PublishTimeout = *flagMQTTPublishTimeout
	}
	if *flagMQTTSubscribeTimeout != 0 {
		cfg.SubscribeTimeout = *flagMQTTSubscribeTimeout
	}
	if *flagMQTTDisconnectTimeout != 0 {
		cfg.DisconnectTimeout = *flagMQTTDisconnectTimeout
	}
}

func applyMQTTFlagTLS(cfg *MQTTConfig) {
	if *flagMQTTCACert != "" {
		cfg.CACert = *flagMQTTCACert
	}
	if *flagMQTTClientCert != "" {
		cfg.ClientCert = *flagMQTTClientCert
	}
	if *flagMQTTClientKey != "" {
		cfg.ClientKey = *flagMQTTClientKey
	}
	if isFlagSet("mqtt-tls-insecure-skip") {
		cfg.InsecureSkip = *flagMQTTTLSInsecureSkip
	}
}

// applyTopicsFlags applies command line flags to the topics configuration
func applyTopicsFlags(cfg *TopicsConfig) {
	if *flagTopicStatus != "" {
		cfg.Status = *flagTopicStatus
	}
	if *flagTopicControl != "" {
		cfg.Control = *flagTopicControl
	}
	if *flagTopicQoS >= 0 && *flagTopicQoS <= 2 {
		cfg.QoS = byte(*flagTopicQoS) // #nosec G115 - validated range 0-2
	}
}

// applyActuatorFlags applies command line flags to the output pin configuration
func applyActuatorFlags(cfg *ActuatorConfig) {
	if *flagActuatorChip != "" {
		cfg.Chip = *flagActuatorChip
	}
	if *flagActuatorLine >= 0 {
		cfg.Line = *flagActuatorLine
	}
	if isFlagSet("actuator-active-high") {
		cfg.ActiveHigh = *flagActuatorActiveHigh
	}
}

// applyStorageFlags applies command line flags to the persistent-store configuration
func applyStorageFlags(cfg *StorageConfig) {
	if *flagRedisAddress != "" {
		cfg.Address = *flagRedisAddress
	}
	if *flagRedisKeyPrefix != "" {
		cfg.KeyPrefix = *flagRedisKeyPrefix
	}
	if *flagRedisDialTimeout != 0 {
		cfg.DialTimeout = *flagRedisDialTimeout
	}
	if *flagRedisReadTimeout != 0 {
		cfg.ReadTimeout = *flagRedisReadTimeout
	}
	if *flagRedisWriteTimeout != 0 {
		cfg.WriteTimeout = *flagRedisWriteTimeout
	}
	if *flagRedisPingTimeout != 0 {
		cfg.PingTimeout = *flagRedisPingTimeout
	}
}

// applyBearerFlags applies command line flags to the network readiness gate configuration
func applyBearerFlags(cfg *BearerConfig) {
	if *flagBearerProbeAddress != "" {
		cfg.ProbeAddress = *flagBearerProbeAddress
	}
	if *flagBearerProbeInterval != 0 {
		cfg.ProbeInterval = *flagBearerProbeInterval
	}
	if *flagBearerWaitTimeout != 0 {
		cfg.WaitTimeout = *flagBearerWaitTimeout
	}
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
