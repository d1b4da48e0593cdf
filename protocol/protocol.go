// Package protocol implements the wire format consumed by the FX3 bridge's
// bit-bang SPI firmware
package protocol

// Wire format constants
const (
	// MaxCommandSize is the firmware command buffer limit. Encoded
	// transactions larger than this are rejected before any I/O.
	MaxCommandSize = 4096

	// ConfigBlockSize is the serialized size of the BitBangConfig
	// parameter block that leads every command.
	ConfigBlockSize = 12

	// HeaderSize is the config block plus the two 32-bit transfer
	// shape fields.
	HeaderSize = ConfigBlockSize + 8
)
