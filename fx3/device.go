// Package fx3 drives the iSensor FX3 bridge's software-timed SPI engine:
// it encodes bit-bang transactions, retrieves their responses from the
// bulk-in channel and restores the hardware SPI controller afterward.
package fx3

import (
	"time"

	"github.com/jmwinters2/iSensor-FX3-API/protocol"
	"github.com/jmwinters2/iSensor-FX3-API/usb"
)

// DefaultTimeout is the initial response timeout used by the register
// convenience helpers.
const DefaultTimeout = 1 * time.Second

// Device is a session with one FX3 bridge. It owns the transport handle
// and the bit-bang configuration.
//
// Calls are synchronous and blocking. The driver supports one transaction
// at a time: callers must not mutate BitBang or issue overlapping calls
// concurrently. There is no internal locking.
type Device struct {
	transport usb.Transport

	// BitBang is the active pin and clock configuration, prepended to
	// every encoded transaction. Mutate only between transactions.
	BitBang *protocol.BitBangConfig

	// Timeout is the bulk response deadline used by the register
	// helpers. BitBangSpi takes an explicit timeout instead.
	Timeout time.Duration
}

// NewDevice wraps an open transport in a session with the evaluation
// board default configuration.
func NewDevice(t usb.Transport) *Device {
	return &Device{
		transport: t,
		BitBang:   protocol.NewBitBangConfig(),
		Timeout:   DefaultTimeout,
	}
}
