package config

import (
	"flag"
	"fmt"
)

// Load loads configuration with precedence: defaults → environment variables → command line flags
// It performs validation and runtime transformations before returning the configuration.
func Load() (*Config, error) {
	// Parse command line flags if not already parsed
	if !flag.Parsed() {
		flag.Parse()
	}

	// Step 1: Start with defaults
	cfg := defaultConfig()

	// Step 2: Apply environment variables
	loadMQTTFromEnv(&cfg.MQTT)
	loadTopicsFromEnv(&cfg.Topics)
	loadActuatorFromEnv(&cfg.Actuator)
	loadStorageFromEnv(&cfg.Storage)
	loadBearerFromEnv(&cfg.Bearer)

	// Step 3: Apply command line flags (highest precedence)
	applyMQTTFlags(&cfg.MQTT)
	applyTopicsFlags(&cfg.Topics)
	applyActuatorFlags(&cfg.Actuator)
	applyStorageFlags(&cfg.Storage)
	applyBearerFlags(&cfg.Bearer)

	// Step 4: Apply runtime transformations
	if err := applyRuntimeDefaults(cfg); err != nil {
		return nil, err
	}

	// Step 5: Validate the final configuration
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
