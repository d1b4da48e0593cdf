package fx3

// Register access helpers built on BitBangSpi. They assume the usual
// iSensor register protocol: 16-bit transfers, address in the upper byte,
// write bit 0x80.

// regWriteBit marks a register address as a write on the wire.
const regWriteBit = 0x80

// ReadRegister16 reads one 16-bit register over bit-bang SPI. Two 16-bit
// transfers are clocked: the first shifts out the address (its response
// is don't-care), the second shifts out zeros while the device returns
// the register value, big-endian within that transfer.
func (d *Device) ReadRegister16(addr uint8) (uint16, error) {
	mosi := []byte{addr, 0, 0, 0}
	resp, err := d.BitBangSpi(16, 2, mosi, d.Timeout)
	if err != nil {
		return 0, err
	}
	return uint16(resp[2])<<8 | uint16(resp[3]), nil
}

// WriteRegisterByte writes a single register byte. The write bit is set
// on the address and one 16-bit transfer carries address then data; the
// response is discarded.
func (d *Device) WriteRegisterByte(addr, value uint8) error {
	mosi := []byte{addr | regWriteBit, value}
	_, err := d.BitBangSpi(16, 1, mosi, d.Timeout)
	return err
}

// ReadRegisters16 reads a list of registers in order. It stops at the
// first communication failure.
func (d *Device) ReadRegisters16(addrs []uint8) ([]uint16, error) {
	vals := make([]uint16, len(addrs))
	for i, addr := range addrs {
		v, err := d.ReadRegister16(addr)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
