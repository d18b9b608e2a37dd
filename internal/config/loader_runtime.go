package config

import (
	"fmt"
	"net"
	"net/url"
)

// applyRuntimeDefaults applies transformations that depend on other sections
func applyRuntimeDefaults(cfg *Config) error {
	return applyBearerProbeAddress(cfg)
}

// applyBearerProbeAddress derives the network probe target from the broker URL
// when no explicit probe address is configured.
func applyBearerProbeAddress(cfg *Config) error {
	if cfg.Bearer.ProbeAddress != "" {
		return nil
	}

	addr, err := brokerProbeAddress(cfg.MQTT.BrokerURL)
	if err != nil {
		return fmt.Errorf("failed to derive bearer probe address: %w", err)
	}
	cfg.Bearer.ProbeAddress = addr
	return nil
}

// brokerProbeAddress extracts host:port from a broker URL, filling in the
// default port for the scheme when the URL carries none.
func brokerProbeAddress(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse broker URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("broker URL %q has no host", rawURL)
	}

	if u.Port() != "" {
		return u.Host, nil
	}
	return net.JoinHostPort(u.Hostname(), defaultBrokerPort(u.Scheme)), nil
}

func defaultBrokerPort(scheme string) string {
	switch scheme {
	case "ssl", "tls", "mqtts", "tcps":
		return "8883"
	case "ws":
		return "80"
	case "wss":
		return "443"
	default:
		return "1883"
	}
}
