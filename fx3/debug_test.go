package fx3

import (
	"strings"
	"testing"
	"time"
)

func TestTransferLog(t *testing.T) {
	ClearTransferLog()

	mock := &mockTransport{bulkData: []byte{0xAB}}
	dev := NewDevice(mock)

	if _, err := dev.BitBangSpi(8, 1, []byte{0x01}, time.Second); err != nil {
		t.Fatalf("BitBangSpi failed: %v", err)
	}

	var lines []string
	SetDebugWriter(func(msg string) { lines = append(lines, msg) })
	defer SetDebugWriter(nil)

	DumpTransferLog()

	dump := strings.Join(lines, "\n")
	if !strings.Contains(dump, "resp=1B") {
		t.Errorf("Dump does not mention the recorded transfer:\n%s", dump)
	}
	if strings.Contains(dump, "TIMEOUT") {
		t.Errorf("Successful transfer dumped as timed out:\n%s", dump)
	}
}

func TestTransferLogWrapAround(t *testing.T) {
	ClearTransferLog()

	for i := 0; i < TransferRingSize+5; i++ {
		recordTransfer(i, 1, time.Millisecond, false)
	}

	var count int
	SetDebugWriter(func(msg string) {
		if strings.HasPrefix(msg, "cmd=") {
			count++
		}
	})
	defer SetDebugWriter(nil)

	DumpTransferLog()

	if count != TransferRingSize {
		t.Errorf("Dumped %d entries, want %d", count, TransferRingSize)
	}
}
