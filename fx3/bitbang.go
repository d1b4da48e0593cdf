package fx3

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jmwinters2/iSensor-FX3-API/protocol"
	"github.com/jmwinters2/iSensor-FX3-API/usb"
)

// restoreTimeout is the fixed control transfer timeout for
// RestoreHardwareSpi. Unlike BitBangSpi it is not caller-configurable.
const restoreTimeout = 2000 * time.Millisecond

// pollInterval bounds CPU spin between bulk read attempts. The response
// deadline is wall-clock elapsed time, independent of attempt count.
const pollInterval = 500 * time.Microsecond

// BitBangSpi runs one software-timed SPI transaction: transferCount
// transfers of bitsPerTransfer bits each, clocking out mosi and returning
// the MISO bytes. mosi must hold exactly one word
// (protocol.WordSize(bitsPerTransfer) bytes) per transfer. A
// transferCount of zero is a no-op returning an empty result.
//
// The command is sent as a control transfer; a send failure returns an
// error wrapping ErrCommunication without polling. The response is then
// polled from the bulk-in endpoint until it arrives or timeout elapses,
// measured from the start of the poll loop.
//
// A poll timeout is NOT an error: the buffer is returned as-is, possibly
// zero filled, and a diagnostic goes to the debug writer. Callers that
// need strict timeout detection must inspect the data themselves.
func (d *Device) BitBangSpi(bitsPerTransfer, transferCount uint32, mosi []byte, timeout time.Duration) ([]byte, error) {
	if transferCount == 0 {
		return []byte{}, nil
	}

	cmd, err := protocol.EncodeTransaction(d.BitBang, bitsPerTransfer, transferCount, mosi)
	if err != nil {
		return nil, err
	}

	if err := d.transport.SendControl(usb.RequestBitBangSpi, cmd, timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommunication, err)
	}

	resp := make([]byte, protocol.WordSize(bitsPerTransfer)*int(transferCount))

	start := time.Now()
	timedOut := false
	for {
		if err := d.transport.ReadBulk(resp); err == nil {
			break
		}
		if time.Since(start) >= timeout {
			timedOut = true
			debugf("bit-bang SPI response timed out after %v (%d bytes expected)", timeout, len(resp))
			break
		}
		time.Sleep(pollInterval)
	}

	recordTransfer(len(cmd), len(resp), time.Since(start), timedOut)
	return resp, nil
}

// RestoreHardwareSpi reverts the bridge out of bit-bang mode, handing the
// SPI pins back to the hardware controller. The bridge answers with a
// 32-bit status word; any non-zero status is returned as a
// *BadStatusError.
func (d *Device) RestoreHardwareSpi() error {
	buf := make([]byte, 4)

	start := time.Now()
	if err := d.transport.ReadControl(usb.RequestResetSpi, buf, restoreTimeout); err != nil {
		return fmt.Errorf("%w: %v", ErrCommunication, err)
	}
	recordTransfer(0, len(buf), time.Since(start), false)

	if status := binary.LittleEndian.Uint32(buf); status != 0 {
		return &BadStatusError{Status: status}
	}
	return nil
}
