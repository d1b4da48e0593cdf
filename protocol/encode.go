package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidTransaction reports a transaction shape the firmware would
// reject: zero bits per transfer, a MOSI payload that does not match the
// transfer shape, or an encoded command exceeding MaxCommandSize. It is
// always detected before any I/O.
var ErrInvalidTransaction = errors.New("invalid bit-bang transaction")

// WordSize returns the number of MOSI/MISO bytes occupied by a single
// transfer of the given bit width.
func WordSize(bitsPerTransfer uint32) int {
	return int((bitsPerTransfer + 7) / 8)
}

// EncodeTransaction builds the control transfer payload for one bit-bang
// SPI command: the config parameter block, the transfer shape as two
// little-endian 32-bit fields, then the raw MOSI bytes.
//
// A transferCount of zero encodes to an empty payload regardless of the
// MOSI data; callers treat the whole transaction as a no-op.
func EncodeTransaction(cfg *BitBangConfig, bitsPerTransfer, transferCount uint32, mosi []byte) ([]byte, error) {
	if bitsPerTransfer == 0 {
		return nil, fmt.Errorf("%w: bits per transfer must be at least 1", ErrInvalidTransaction)
	}
	if transferCount == 0 {
		return []byte{}, nil
	}

	want := WordSize(bitsPerTransfer) * int(transferCount)
	if want != len(mosi) {
		return nil, fmt.Errorf("%w: %d transfers of %d bits need %d MOSI bytes, got %d",
			ErrInvalidTransaction, transferCount, bitsPerTransfer, want, len(mosi))
	}

	params := cfg.Params()
	total := len(params) + 8 + len(mosi)
	if total > MaxCommandSize {
		return nil, fmt.Errorf("%w: encoded command is %d bytes (max %d)",
			ErrInvalidTransaction, total, MaxCommandSize)
	}

	buf := make([]byte, 0, total)
	buf = append(buf, params...)
	var shape [8]byte
	binary.LittleEndian.PutUint32(shape[0:], bitsPerTransfer)
	binary.LittleEndian.PutUint32(shape[4:], transferCount)
	buf = append(buf, shape[:]...)
	buf = append(buf, mosi...)

	return buf, nil
}
