package config

import (
	"os"
	"strconv"
	"time"
)

// loadMQTTFromEnv loads broker session configuration from environment variables
func loadMQTTFromEnv(cfg *MQTTConfig) {
	loadMQTTStrings(cfg)
	loadMQTTInts(cfg)
	loadMQTTTimeouts(cfg)
	loadMQTTTLS(cfg)
}

func loadMQTTStrings(cfg *MQTTConfig) {
	if v := getEnvString("MQTT_BROKER"); v != "" {
		cfg.BrokerURL = v
	}
	if v := getEnvString("MQTT_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
}

func loadMQTTInts(cfg *MQTTConfig) {
	if v := getEnvInt("MQTT_KEEP_ALIVE"); v > 0 && v <= 65535 {
		cfg.KeepAlive = uint16(v) // #nosec G115 - validated range
	}
	if v := getEnvInt("MQTT_SESSION_EXPIRY"); v > 0 {
		cfg.SessionExpiry = uint32(v) // #nosec G115 - config values are non-negative
	}
}

func loadMQTTTimeouts(cfg *MQTTConfig) {
	if v := getEnvDuration("MQTT_CONNECT_TIMEOUT"); v != 0 {
		cfg.ConnectTimeout = v
	}
	if v := getEnvDuration("MQTT_RECONNECT_INTERVAL"); v != 0 {
		cfg.ReconnectInterval = v
	}
	if v := getEnvDuration("MQTT_PUBLISH_TIMEOUT"); v != 0 {
		cfg.PublishTimeout = v
	}
	if v := getEnvDuration("MQTT_SUBSCRIBE_TIMEOUT"); v != 0 {
		cfg.SubscribeTimeout = v
	}
	if v := getEnvDuration("MQTT_DISCONNECT_TIMEOUT"); v != 0 {
		cfg.DisconnectTimeout = v
	}
}

func loadMQTTTLS(cfg *MQTTConfig) {
	if v := getEnvString("MQTT_CA_CERT"); v != "" {
		cfg.CACert = v
	}
	if v := getEnvString("MQTT_CLIENT_CERT"); v != "" {
		cfg.ClientCert = v
	}
	if v := getEnvString("MQTT_CLIENT_KEY"); v != "" {
		cfg.ClientKey = v
	}
	if v := getEnvBool("MQTT_TLS_INSECURE_SKIP"); v {
		cfg.InsecureSkip = v
	}
}

// loadTopicsFromEnv loads topics and payload literals from environment variables
func loadTopicsFromEnv(cfg *TopicsConfig) {
	if v := getEnvString("TOPIC_STATUS"); v != "" {
		cfg.Status = v
	}
	if v := getEnvString("TOPIC_CONTROL"); v != "" {
		cfg.Control = v
	}
	if v := getEnvInt("TOPIC_QOS"); v > 0 && v <= 2 {
		cfg.QoS = byte(v) // #nosec G115 - validated range 0-2
	}
	loadTopicsLiterals(cfg)
}

func loadTopicsLiterals(cfg *TopicsConfig) {
	if v := getEnvString("CMD_OPEN"); v != "" {
		cfg.OpenCommand = v
	}
	if v := getEnvString("CMD_CLOSE"); v != "" {
		cfg.CloseCommand = v
	}
	if v := getEnvString("MSG_CONNECTED"); v != "" {
		cfg.ConnectedMessage = v
	}
	if v := getEnvString("MSG_DISCONNECTED"); v != "" {
		cfg.DisconnectedMessage = v
	}
	if v := getEnvString("MSG_OPEN_REPLY"); v != "" {
		cfg.OpenReply = v
	}
	if v := getEnvString("MSG_CLOSE_REPLY"); v != "" {
		cfg.CloseReply = v
	}
}

// loadActuatorFromEnv loads the output pin configuration from environment variables
func loadActuatorFromEnv(cfg *ActuatorConfig) {
	if v := getEnvString("ACTUATOR_CHIP"); v != "" {
		cfg.Chip = v
	}
	if v, ok := lookupEnvInt("ACTUATOR_LINE"); ok && v >= 0 {
		cfg.Line = v
	}
	// ActiveHigh defaults to true, so presence must be checked explicitly
	if v, ok := lookupEnvBool("ACTUATOR_ACTIVE_HIGH"); ok {
		cfg.ActiveHigh = v
	}
}

// loadStorageFromEnv loads the persistent-store configuration from environment variables
func loadStorageFromEnv(cfg *StorageConfig) {
	if v := getEnvString("REDIS_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := getEnvString("REDIS_KEY_PREFIX"); v != "" {
		cfg.KeyPrefix = v
	}
	if v := getEnvDuration("REDIS_DIAL_TIMEOUT"); v != 0 {
		cfg.DialTimeout = v
	}
	if v := getEnvDuration("REDIS_READ_TIMEOUT"); v != 0 {
		cfg.ReadTimeout = v
	}
	if v := getEnvDuration("REDIS_WRITE_TIMEOUT"); v != 0 {
		cfg.WriteTimeout = v
	}
	if v := getEnvDuration("REDIS_PING_TIMEOUT"); v != 0 {
		cfg.PingTimeout = v
	}
}

// loadBearerFromEnv loads the network readiness gate configuration from environment variables
func loadBearerFromEnv(cfg *BearerConfig) {
	if v := getEnvString("BEARER_PROBE_ADDRESS"); v != "" {
		cfg.ProbeAddress = v
	}
	if v := getEnvDuration("BEARER_PROBE_INTERVAL"); v != 0 {
		cfg.ProbeInterval = v
	}
	if v := getEnvDuration("BEARER_WAIT_TIMEOUT"); v != 0 {
		cfg.WaitTimeout = v
	}
}

// Helper functions for reading environment variables

func getEnvString(key string) string {
	return os.Getenv(key)
}

func getEnvInt(key string) int {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return intValue
}

func getEnvDuration(key string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return duration
}

func getEnvBool(key string) bool {
	value := os.Getenv(key)
	return value == "true"
}

func lookupEnvInt(key string) (int, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return intValue, true
}

func lookupEnvBool(key string) (bool, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	return value == "true", true
}
