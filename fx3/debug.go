package fx3

import (
	"fmt"
	"time"
)

// DebugWriter is a function type for writing driver diagnostics
type DebugWriter func(string)

// TransferEvent captures one completed transaction for post-mortem analysis
type TransferEvent struct {
	CommandBytes  int           // Encoded command size (0 for restore)
	ResponseBytes int           // Expected response size
	Elapsed       time.Duration // Send-to-completion wall time
	TimedOut      bool          // Response never arrived within deadline
}

const (
	TransferRingSize = 32 // Keep last 32 transactions for post-mortem
)

var (
	// debugPrintln is the global diagnostic sink (no-op by default).
	// Poll timeout notices go here; nothing is ever raised for them.
	debugPrintln DebugWriter = func(string) {}

	// Transfer capture ring buffer
	transferRing     [TransferRingSize]TransferEvent
	transferRingHead uint8 // Next write position
)

// SetDebugWriter redirects driver diagnostics. Pass nil to silence them
// again.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

func debugf(format string, args ...interface{}) {
	debugPrintln(fmt.Sprintf(format, args...))
}

// recordTransfer captures a transaction in the ring buffer
func recordTransfer(cmdBytes, respBytes int, elapsed time.Duration, timedOut bool) {
	idx := transferRingHead
	transferRing[idx] = TransferEvent{
		CommandBytes:  cmdBytes,
		ResponseBytes: respBytes,
		Elapsed:       elapsed,
		TimedOut:      timedOut,
	}
	transferRingHead = (idx + 1) % TransferRingSize
}

// DumpTransferLog writes the recent transaction history through the debug
// writer, oldest first. Call it after an unexpected timeout or before
// tearing down a session.
func DumpTransferLog() {
	debugPrintln("=== FX3 Transfer Log ===")

	start := transferRingHead
	for i := uint8(0); i < TransferRingSize; i++ {
		idx := (start + i) % TransferRingSize
		evt := &transferRing[idx]
		if evt.ResponseBytes == 0 && evt.CommandBytes == 0 {
			continue // Empty slot
		}

		state := "ok"
		if evt.TimedOut {
			state = "TIMEOUT"
		}
		debugf("cmd=%dB resp=%dB elapsed=%v %s",
			evt.CommandBytes, evt.ResponseBytes, evt.Elapsed, state)
	}
	debugPrintln("=== End Transfer Log ===")
}

// ClearTransferLog clears the capture buffer
func ClearTransferLog() {
	for i := range transferRing {
		transferRing[i] = TransferEvent{}
	}
	transferRingHead = 0
}
