// Package actuator owns the single binary output of the device.
package actuator

import (
	"fmt"

	"github.com/dorra-iot/dorrad/internal/log"
)

// Pin is the capability interface the driver programs the physical output
// through. Configure claims the line as an output driven to the given level;
// Set changes the level on an already-claimed line.
type Pin interface {
	Configure(initial int) error
	Set(value int) error
	Close() error
}

// Driver owns the logical ON/OFF state of the output. The physical level is a
// deterministic function of logical state and the fixed polarity; hardware is
// never read back as the source of truth. All calls arrive on the single
// session event-dispatch context, so the driver carries no locking.
type Driver struct {
	pin        Pin
	activeHigh bool
	on         bool
	configured bool
	log        *log.Logger
}

// NewDriver creates a driver with the given polarity.
// activeHigh selects whether logical ON drives the line high or low.
func NewDriver(pin Pin, activeHigh bool, logger *log.Logger) *Driver {
	return &Driver{
		pin:        pin,
		activeHigh: activeHigh,
		log:        logger,
	}
}

// Configure claims the output and drives it to the OFF level.
// Must be called exactly once before any session traffic is processed;
// failure here is fatal at startup.
func (d *Driver) Configure() error {
	if d.configured {
		return fmt.Errorf("actuator already configured")
	}
	if err := d.pin.Configure(d.level(false)); err != nil {
		return fmt.Errorf("failed to configure actuator pin: %w", err)
	}
	d.on = false
	d.configured = true
	d.log.Info("Actuator initialized, output OFF")
	return nil
}

// Set drives the output to the given logical state. Drive errors after a
// successful Configure are logged only; the logical state still advances
// because the driver, not the hardware, owns it.
func (d *Driver) Set(on bool) {
	if err := d.pin.Set(d.level(on)); err != nil {
		d.log.Error("Failed to drive actuator pin: %v", err)
	}
	d.on = on
	d.log.Info("Actuator turned %s", stateName(on))
}

// On reports the current logical state
func (d *Driver) On() bool {
	return d.on
}

// Close releases the output pin
func (d *Driver) Close() error {
	return d.pin.Close()
}

// level maps logical state through the fixed polarity to an electrical level
func (d *Driver) level(on bool) int {
	if on == d.activeHigh {
		return 1
	}
	return 0
}

func stateName(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
