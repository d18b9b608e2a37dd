package config

import "fmt"

// Validate checks configuration constraints
func Validate(cfg *Config) error {
	if err := validateMQTT(&cfg.MQTT); err != nil {
		return err
	}
	if err := validateTopics(&cfg.Topics); err != nil {
		return err
	}
	if err := validateActuator(&cfg.Actuator); err != nil {
		return err
	}
	return validateStorage(&cfg.Storage)
}

// validateMQTT validates the broker session configuration
func validateMQTT(cfg *MQTTConfig) error {
	if cfg.BrokerURL == "" {
		return fmt.Errorf("mqtt broker cannot be empty")
	}
	if cfg.ClientID == "" {
		return fmt.Errorf("mqtt client ID cannot be empty")
	}
	if cfg.KeepAlive == 0 {
		return fmt.Errorf("mqtt keep alive must be positive")
	}
	if (cfg.ClientCert == "") != (cfg.ClientKey == "") {
		return fmt.Errorf("mqtt client cert and key must be provided together")
	}
	return nil
}

// validateTopics validates the topics and payload literals
func validateTopics(cfg *TopicsConfig) error {
	if cfg.Status == "" {
		return fmt.Errorf("status topic cannot be empty")
	}
	if cfg.Control == "" {
		return fmt.Errorf("control topic cannot be empty")
	}
	if cfg.Status == cfg.Control {
		return fmt.Errorf("status and control topics must differ")
	}
	if cfg.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1, or 2")
	}
	return validateLiterals(cfg)
}

func validateLiterals(cfg *TopicsConfig) error {
	if cfg.OpenCommand == "" || cfg.CloseCommand == "" {
		return fmt.Errorf("command literals cannot be empty")
	}
	if cfg.OpenCommand == cfg.CloseCommand {
		return fmt.Errorf("open and close command literals must differ")
	}
	if cfg.ConnectedMessage == "" || cfg.DisconnectedMessage == "" {
		return fmt.Errorf("announcement literals cannot be empty")
	}
	if cfg.OpenReply == "" || cfg.CloseReply == "" {
		return fmt.Errorf("reply literals cannot be empty")
	}
	return nil
}

// validateActuator validates the output pin configuration
func validateActuator(cfg *ActuatorConfig) error {
	if cfg.Chip == "" {
		return fmt.Errorf("actuator chip cannot be empty")
	}
	if cfg.Line < 0 {
		return fmt.Errorf("actuator line must be non-negative")
	}
	return nil
}

// validateStorage validates the persistent-store configuration
func validateStorage(cfg *StorageConfig) error {
	if cfg.Address == "" {
		return fmt.Errorf("redis address cannot be empty")
	}
	if cfg.KeyPrefix == "" {
		return fmt.Errorf("redis key prefix cannot be empty")
	}
	return nil
}
