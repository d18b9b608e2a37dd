package config

import (
	"testing"
	"time"
)

func TestLoadMQTTFromEnv(t *testing.T) {
	t.Setenv("MQTT_BROKER", "mqtts://broker.example.org:8883")
	t.Setenv("MQTT_CLIENT_ID", "door-42")
	t.Setenv("MQTT_KEEP_ALIVE", "30")
	t.Setenv("MQTT_SESSION_EXPIRY", "120")
	t.Setenv("MQTT_CONNECT_TIMEOUT", "15s")
	t.Setenv("MQTT_RECONNECT_INTERVAL", "3s")
	t.Setenv("MQTT_PUBLISH_TIMEOUT", "7s")
	t.Setenv("MQTT_SUBSCRIBE_TIMEOUT", "8s")
	t.Setenv("MQTT_DISCONNECT_TIMEOUT", "2s")
	t.Setenv("MQTT_CA_CERT", "/etc/dorra/ca.pem")
	t.Setenv("MQTT_CLIENT_CERT", "/etc/dorra/cert.pem")
	t.Setenv("MQTT_CLIENT_KEY", "/etc/dorra/key.pem")
	t.Setenv("MQTT_TLS_INSECURE_SKIP", "true")

	cfg := defaultMQTTConfig()
	loadMQTTFromEnv(&cfg)

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"BrokerURL", cfg.BrokerURL, "mqtts://broker.example.org:8883"},
		{"ClientID", cfg.ClientID, "door-42"},
		{"KeepAlive", cfg.KeepAlive, uint16(30)},
		{"SessionExpiry", cfg.SessionExpiry, uint32(120)},
		{"ConnectTimeout", cfg.ConnectTimeout, 15 * time.Second},
		{"ReconnectInterval", cfg.ReconnectInterval, 3 * time.Second},
		{"PublishTimeout", cfg.PublishTimeout, 7 * time.Second},
		{"SubscribeTimeout", cfg.SubscribeTimeout, 8 * time.Second},
		{"DisconnectTimeout", cfg.DisconnectTimeout, 2 * time.Second},
		{"CACert", cfg.CACert, "/etc/dorra/ca.pem"},
		{"ClientCert", cfg.ClientCert, "/etc/dorra/cert.pem"},
		{"ClientKey", cfg.ClientKey, "/etc/dorra/key.pem"},
		{"InsecureSkip", cfg.InsecureSkip, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("loadMQTTFromEnv %s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoadMQTTFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("MQTT_KEEP_ALIVE", "not-a-number")
	t.Setenv("MQTT_SESSION_EXPIRY", "-5")
	t.Setenv("MQTT_CONNECT_TIMEOUT", "soon")

	cfg := defaultMQTTConfig()
	loadMQTTFromEnv(&cfg)

	if cfg.KeepAlive != 60 {
		t.Errorf("KeepAlive = %d; want default 60", cfg.KeepAlive)
	}
	if cfg.SessionExpiry != 60 {
		t.Errorf("SessionExpiry = %d; want default 60", cfg.SessionExpiry)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("ConnectTimeout = %v; want default 10s", cfg.ConnectTimeout)
	}
}

func TestLoadTopicsFromEnv(t *testing.T) {
	t.Setenv("TOPIC_STATUS", "/gate/status")
	t.Setenv("TOPIC_CONTROL", "/gate/control")
	t.Setenv("TOPIC_QOS", "2")
	t.Setenv("CMD_OPEN", "up")
	t.Setenv("CMD_CLOSE", "down")
	t.Setenv("MSG_CONNECTED", "online")
	t.Setenv("MSG_DISCONNECTED", "offline")
	t.Setenv("MSG_OPEN_REPLY", "went up")
	t.Setenv("MSG_CLOSE_REPLY", "went down")

	cfg := defaultTopicsConfig()
	loadTopicsFromEnv(&cfg)

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Status", cfg.Status, "/gate/status"},
		{"Control", cfg.Control, "/gate/control"},
		{"QoS", cfg.QoS, byte(2)},
		{"OpenCommand", cfg.OpenCommand, "up"},
		{"CloseCommand", cfg.CloseCommand, "down"},
		{"ConnectedMessage", cfg.ConnectedMessage, "online"},
		{"DisconnectedMessage", cfg.DisconnectedMessage, "offline"},
		{"OpenReply", cfg.OpenReply, "went up"},
		{"CloseReply", cfg.CloseReply, "went down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("loadTopicsFromEnv %s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoadActuatorFromEnv(t *testing.T) {
	t.Setenv("ACTUATOR_CHIP", "gpiochip1")
	t.Setenv("ACTUATOR_LINE", "0")
	t.Setenv("ACTUATOR_ACTIVE_HIGH", "false")

	cfg := defaultActuatorConfig()
	loadActuatorFromEnv(&cfg)

	if cfg.Chip != "gpiochip1" {
		t.Errorf("Chip = %s; want gpiochip1", cfg.Chip)
	}
	if cfg.Line != 0 {
		t.Errorf("Line = %d; want 0 (zero is a valid line offset)", cfg.Line)
	}
	if cfg.ActiveHigh {
		t.Error("ActiveHigh = true; want false from explicit env override")
	}
}

func TestLoadStorageFromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "redis.local:6380")
	t.Setenv("REDIS_KEY_PREFIX", "gate")
	t.Setenv("REDIS_DIAL_TIMEOUT", "3s")
	t.Setenv("REDIS_PING_TIMEOUT", "1s")

	cfg := defaultStorageConfig()
	loadStorageFromEnv(&cfg)

	if cfg.Address != "redis.local:6380" {
		t.Errorf("Address = %s; want redis.local:6380", cfg.Address)
	}
	if cfg.KeyPrefix != "gate" {
		t.Errorf("KeyPrefix = %s; want gate", cfg.KeyPrefix)
	}
	if cfg.DialTimeout != 3*time.Second {
		t.Errorf("DialTimeout = %v; want 3s", cfg.DialTimeout)
	}
	if cfg.PingTimeout != time.Second {
		t.Errorf("PingTimeout = %v; want 1s", cfg.PingTimeout)
	}
}

func TestLoadBearerFromEnv(t *testing.T) {
	t.Setenv("BEARER_PROBE_ADDRESS", "gw.local:1883")
	t.Setenv("BEARER_PROBE_INTERVAL", "500ms")
	t.Setenv("BEARER_WAIT_TIMEOUT", "1m")

	cfg := defaultBearerConfig()
	loadBearerFromEnv(&cfg)

	if cfg.ProbeAddress != "gw.local:1883" {
		t.Errorf("ProbeAddress = %s; want gw.local:1883", cfg.ProbeAddress)
	}
	if cfg.ProbeInterval != 500*time.Millisecond {
		t.Errorf("ProbeInterval = %v; want 500ms", cfg.ProbeInterval)
	}
	if cfg.WaitTimeout != time.Minute {
		t.Errorf("WaitTimeout = %v; want 1m", cfg.WaitTimeout)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_OTHER", "yes")

	if got := getEnvString("TEST_STRING"); got != "hello" {
		t.Errorf("getEnvString = %s; want hello", got)
	}
	if got := getEnvInt("TEST_INT"); got != 42 {
		t.Errorf("getEnvInt = %d; want 42", got)
	}
	if got := getEnvInt("TEST_INT_BAD"); got != 0 {
		t.Errorf("getEnvInt on malformed value = %d; want 0", got)
	}
	if got := getEnvDuration("TEST_DURATION"); got != 90*time.Second {
		t.Errorf("getEnvDuration = %v; want 90s", got)
	}
	if !getEnvBool("TEST_BOOL_TRUE") {
		t.Error("getEnvBool(true) = false")
	}
	if getEnvBool("TEST_BOOL_OTHER") {
		t.Error(`getEnvBool("yes") = true; only "true" counts`)
	}
}

func TestLookupEnvHelpers(t *testing.T) {
	t.Setenv("TEST_LINE", "0")
	t.Setenv("TEST_LINE_BAD", "two")
	t.Setenv("TEST_FLAG", "false")

	if v, ok := lookupEnvInt("TEST_LINE"); !ok || v != 0 {
		t.Errorf("lookupEnvInt = (%d, %v); want (0, true)", v, ok)
	}
	if _, ok := lookupEnvInt("TEST_LINE_BAD"); ok {
		t.Error("lookupEnvInt on malformed value reported ok")
	}
	if _, ok := lookupEnvInt("TEST_LINE_MISSING"); ok {
		t.Error("lookupEnvInt on missing key reported ok")
	}
	if v, ok := lookupEnvBool("TEST_FLAG"); !ok || v {
		t.Errorf("lookupEnvBool = (%v, %v); want (false, true)", v, ok)
	}
	if _, ok := lookupEnvBool("TEST_FLAG_MISSING"); ok {
		t.Error("lookupEnvBool on missing key reported ok")
	}
}
