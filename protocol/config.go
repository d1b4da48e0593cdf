package protocol

import "encoding/binary"

// Default pin assignment for the iSensor FX3 evaluation board (FX3 GPIO
// numbers on the DIO header).
const (
	DefaultSCLKPin = 1
	DefaultCSPin   = 2
	DefaultMOSIPin = 3
	DefaultMISOPin = 4
)

// BitBangConfig describes the pin mapping and clock timing used by the
// firmware's software SPI engine. It is session state owned by the
// connection object: mutate it only between transactions, never while one
// is in flight. There is no internal locking.
type BitBangConfig struct {
	MOSI uint16 // master-out GPIO number
	MISO uint16 // master-in GPIO number
	SCLK uint16 // clock GPIO number
	CS   uint16 // chip select GPIO number

	// HalfPeriodTicks is the SCLK half period in firmware timer ticks.
	// Zero runs the clock at full speed and doubles as "not set".
	HalfPeriodTicks uint32
}

// NewBitBangConfig returns a config with the evaluation board default pins
// and a full-speed clock.
func NewBitBangConfig() *BitBangConfig {
	return &BitBangConfig{
		MOSI: DefaultMOSIPin,
		MISO: DefaultMISOPin,
		SCLK: DefaultSCLKPin,
		CS:   DefaultCSPin,
	}
}

// SetFrequency derives HalfPeriodTicks from the desired SCLK frequency.
// It reports false when the frequency is unattainable; the config is then
// left at full speed and the caller may proceed anyway or abort.
func (c *BitBangConfig) SetFrequency(freqHz float64) bool {
	ticks, ok := HalfPeriodTicks(freqHz)
	c.HalfPeriodTicks = ticks
	return ok
}

// Params serializes the parameter block sent ahead of every bit-bang
// command. Field order and byte order are part of the firmware contract.
func (c *BitBangConfig) Params() []byte {
	buf := make([]byte, ConfigBlockSize)
	binary.LittleEndian.PutUint16(buf[0:], c.MOSI)
	binary.LittleEndian.PutUint16(buf[2:], c.MISO)
	binary.LittleEndian.PutUint16(buf[4:], c.SCLK)
	binary.LittleEndian.PutUint16(buf[6:], c.CS)
	binary.LittleEndian.PutUint32(buf[8:], c.HalfPeriodTicks)
	return buf
}
