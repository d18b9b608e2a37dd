// Package command decodes raw control payloads into the closed command set.
package command

import (
	"bytes"

	"github.com/dorra-iot/dorrad/internal/config"
)

// Command is the closed set of recognized control commands
type Command int

const (
	// Unrecognized is any payload that is not byte-exact one of the literals
	Unrecognized Command = iota
	// Open drives the actuator to logical ON
	Open
	// Close drives the actuator to logical OFF
	Close
)

// String returns a diagnostic name for the command
func (c Command) String() string {
	switch c {
	case Open:
		return "OPEN"
	case Close:
		return "CLOSE"
	default:
		return "UNRECOGNIZED"
	}
}

// Decoder maps control payloads to commands
type Decoder struct {
	open  []byte
	close []byte
}

// NewDecoder creates a decoder for the configured command literals
func NewDecoder(cfg *config.TopicsConfig) *Decoder {
	return &Decoder{
		open:  []byte(cfg.OpenCommand),
		close: []byte(cfg.CloseCommand),
	}
}

// Decode compares the full payload against the command literals.
// The comparison is byte-exact, length-bounded, and case-sensitive: a payload
// that is a prefix of a literal, or that carries trailing bytes beyond it,
// does not match. No trimming, no case folding.
func (d *Decoder) Decode(payload []byte) Command {
	switch {
	case bytes.Equal(payload, d.open):
		return Open
	case bytes.Equal(payload, d.close):
		return Close
	default:
		return Unrecognized
	}
}
