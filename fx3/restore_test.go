package fx3

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmwinters2/iSensor-FX3-API/usb"
)

func TestRestoreHardwareSpi(t *testing.T) {
	mock := &mockTransport{controlData: []byte{0, 0, 0, 0}}
	dev := NewDevice(mock)

	if err := dev.RestoreHardwareSpi(); err != nil {
		t.Fatalf("Restore with status 0 failed: %v", err)
	}
	if len(mock.sentReq) != 1 || mock.sentReq[0] != usb.RequestResetSpi {
		t.Errorf("Expected one reset control transfer, got %v", mock.sentReq)
	}
}

func TestRestoreHardwareSpiBadStatus(t *testing.T) {
	// Status word is little-endian on the wire.
	mock := &mockTransport{controlData: []byte{0x01, 0x00, 0x00, 0x00}}
	dev := NewDevice(mock)

	err := dev.RestoreHardwareSpi()
	if err == nil {
		t.Fatal("Expected an error for non-zero status")
	}

	var bad *BadStatusError
	if !errors.As(err, &bad) {
		t.Fatalf("Expected *BadStatusError, got %T: %v", err, err)
	}
	if bad.Status != 1 {
		t.Errorf("Status = %d, want 1", bad.Status)
	}
	if !strings.Contains(err.Error(), "0x00000001") {
		t.Errorf("Error %q does not render the status in hex", err.Error())
	}
}

func TestRestoreHardwareSpiTransportFailure(t *testing.T) {
	mock := &mockTransport{controlErr: errors.New("device gone")}
	dev := NewDevice(mock)

	err := dev.RestoreHardwareSpi()
	if !errors.Is(err, ErrCommunication) {
		t.Fatalf("Expected ErrCommunication, got %v", err)
	}
}
