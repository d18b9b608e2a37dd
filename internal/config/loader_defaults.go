package config

import "time"

// defaultMQTTConfig returns the default broker session configuration
func defaultMQTTConfig() MQTTConfig {
	return MQTTConfig{
		BrokerURL:         "mqtt://test.mosquitto.org",
		ClientID:          "dorra-device",
		KeepAlive:         60,
		SessionExpiry:     60,
		ConnectTimeout:    10 * time.Second,
		ReconnectInterval: 5 * time.Second,
		PublishTimeout:    10 * time.Second,
		SubscribeTimeout:  10 * time.Second,
		DisconnectTimeout: 5 * time.Second,
		CACert:            "",
		ClientCert:        "",
		ClientKey:         "",
		InsecureSkip:      false,
	}
}

// defaultTopicsConfig returns the default topics and payload literals
func defaultTopicsConfig() TopicsConfig {
	return TopicsConfig{
		Status:              "/dorra/status",
		Control:             "/dorra/control",
		QoS:                 1,
		OpenCommand:         "open",
		CloseCommand:        "close",
		ConnectedMessage:    "ESP Connected",
		DisconnectedMessage: "ESP Disconnected",
		OpenReply:           "it's open",
		CloseReply:          "it's closed",
	}
}

// defaultActuatorConfig returns the default output pin configuration
func defaultActuatorConfig() ActuatorConfig {
	return ActuatorConfig{
		Chip:       "gpiochip0",
		Line:       2,
		ActiveHigh: true,
	}
}

// defaultStorageConfig returns the default persistent-store configuration
func defaultStorageConfig() StorageConfig {
	return StorageConfig{
		Address:      "localhost:6379",
		KeyPrefix:    "dorra",
		DialTimeout:  10 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Second,
		PingTimeout:  5 * time.Second,
	}
}

// defaultBearerConfig returns the default network readiness gate configuration
func defaultBearerConfig() BearerConfig {
	return BearerConfig{
		ProbeAddress:  "", // Derived from the broker URL at load time
		ProbeInterval: 2 * time.Second,
		WaitTimeout:   2 * time.Minute,
	}
}

// defaultConfig returns a complete configuration with all default values
func defaultConfig() *Config {
	return &Config{
		MQTT:     defaultMQTTConfig(),
		Topics:   defaultTopicsConfig(),
		Actuator: defaultActuatorConfig(),
		Storage:  defaultStorageConfig(),
		Bearer:   defaultBearerConfig(),
	}
}
