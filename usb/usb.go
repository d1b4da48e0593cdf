// Package usb provides the USB transport used to reach the FX3 bridge
package usb

import "time"

// Vendor control request codes understood by the bridge firmware.
// These are the firmware's own enumeration, reused as-is.
const (
	// RequestBitBangSpi starts a software-timed SPI transaction; the
	// payload is an encoded transaction from the protocol package.
	RequestBitBangSpi uint8 = 0xCA

	// RequestResetSpi restores the bridge's hardware SPI controller and
	// returns a 4-byte status word (0 = success).
	RequestResetSpi uint8 = 0xCB
)

// BulkInEndpoint is the endpoint number of the data-in channel that
// carries transaction responses (device address 0x81).
const BulkInEndpoint = 1

// Transport is the control/bulk channel to the bridge.
// Implementations:
// - Native USB via github.com/google/gousb (see Open)
// - Mock transports for testing
type Transport interface {
	// SendControl issues a vendor control OUT request carrying buf.
	SendControl(req uint8, buf []byte, timeout time.Duration) error

	// ReadControl issues a vendor control IN request filling buf.
	ReadControl(req uint8, buf []byte, timeout time.Duration) error

	// ReadBulk performs a single read attempt on the data-in endpoint.
	// It either fills buf completely or reports an error; it never
	// blocks past one attempt. Callers own any retry/deadline loop.
	ReadBulk(buf []byte) error
}

// Config holds the parameters used to open a bridge.
type Config struct {
	// USB identity to match during enumeration.
	VendorID  uint16
	ProductID uint16

	// BulkReadTimeout bounds a single ReadBulk attempt. The overall
	// response deadline belongs to the caller's poll loop, so this
	// stays short.
	BulkReadTimeout time.Duration
}

// DefaultConfig returns the configuration for a stock iSensor FX3 board.
func DefaultConfig() *Config {
	return &Config{
		VendorID:        VendorID,
		ProductID:       ProductID,
		BulkReadTimeout: 10 * time.Millisecond,
	}
}
