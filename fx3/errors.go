package fx3

import (
	"errors"
	"fmt"
)

// ErrCommunication reports a failed control transfer to the bridge. It is
// surfaced immediately; the driver never retries a send.
var ErrCommunication = errors.New("FX3 control transfer failed")

// BadStatusError reports a non-zero status word returned by the bridge
// after a restore command.
type BadStatusError struct {
	Status uint32
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("FX3 reported bad status 0x%08X", e.Status)
}
