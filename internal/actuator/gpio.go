package actuator

import (
	"fmt"

	gpiod "github.com/warthog618/go-gpiocdev"
)

// LinePin drives a single GPIO line through the character device interface.
type LinePin struct {
	chipName string
	offset   int
	chip     *gpiod.Chip
	line     *gpiod.Line
}

// NewLinePin creates a pin for the given chip and line offset.
// The line is not claimed until Configure.
func NewLinePin(chipName string, offset int) *LinePin {
	return &LinePin{
		chipName: chipName,
		offset:   offset,
	}
}

// Configure opens the chip and requests the line as an output at the given
// level, with bias (pull resistors) disabled.
func (p *LinePin) Configure(initial int) error {
	chip, err := gpiod.NewChip(p.chipName, gpiod.WithConsumer("dorrad"))
	if err != nil {
		return fmt.Errorf("failed to open GPIO chip %s: %w", p.chipName, err)
	}

	line, err := chip.RequestLine(p.offset, gpiod.AsOutput(initial), gpiod.WithBiasDisabled)
	if err != nil {
		_ = chip.Close()
		return fmt.Errorf("failed to request line %d on %s: %w", p.offset, p.chipName, err)
	}

	p.chip = chip
	p.line = line
	return nil
}

// Set drives the line to the given level
func (p *LinePin) Set(value int) error {
	if p.line == nil {
		return fmt.Errorf("line %d not configured", p.offset)
	}
	if err := p.line.SetValue(value); err != nil {
		return fmt.Errorf("failed to set line %d: %w", p.offset, err)
	}
	return nil
}

// Close releases the line and the chip
func (p *LinePin) Close() error {
	var lastErr error
	if p.line != nil {
		if err := p.line.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close line %d: %w", p.offset, err)
		}
		p.line = nil
	}
	if p.chip != nil {
		if err := p.chip.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close chip %s: %w", p.chipName, err)
		}
		p.chip = nil
	}
	return lastErr
}
