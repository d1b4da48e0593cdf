package usb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// USB identity of the iSensor FX3 evaluation firmware.
const (
	VendorID  = 0x0456 // Analog Devices
	ProductID = 0xEE01

	// interfaceNum is the vendor interface exposing the control and
	// bulk endpoints.
	interfaceNum = 0
)

// FX3Transport drives the bridge over libusb. It implements Transport.
type FX3Transport struct {
	ctx    *gousb.Context
	dev    *gousb.Device
	cfg    *gousb.Config
	intf   *gousb.Interface
	bulkIn *gousb.InEndpoint

	bulkReadTimeout time.Duration
}

// Open finds the first device matching cfg, claims its vendor interface
// and resolves the bulk-in endpoint.
func Open(cfg *Config) (*FX3Transport, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == cfg.VendorID && uint16(desc.Product) == cfg.ProductID
	})
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}
	if len(devs) == 0 {
		ctx.Close()
		return nil, fmt.Errorf("FX3 device not found (VID=0x%04X PID=0x%04X)", cfg.VendorID, cfg.ProductID)
	}

	// Use the first match; release any others.
	dev := devs[0]
	for i := 1; i < len(devs); i++ {
		devs[i].Close()
	}

	usbCfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to get config 1: %w", err)
	}

	intf, err := usbCfg.Interface(interfaceNum, 0)
	if err != nil {
		usbCfg.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to claim interface %d: %w", interfaceNum, err)
	}

	bulkIn, err := intf.InEndpoint(BulkInEndpoint)
	if err != nil {
		intf.Close()
		usbCfg.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to open bulk-in endpoint %d: %w", BulkInEndpoint, err)
	}

	return &FX3Transport{
		ctx:             ctx,
		dev:             dev,
		cfg:             usbCfg,
		intf:            intf,
		bulkIn:          bulkIn,
		bulkReadTimeout: cfg.BulkReadTimeout,
	}, nil
}

// SendControl issues a vendor control OUT request carrying buf.
func (t *FX3Transport) SendControl(req uint8, buf []byte, timeout time.Duration) error {
	t.dev.ControlTimeout = timeout
	n, err := t.dev.Control(
		gousb.ControlOut|gousb.ControlVendor|gousb.ControlDevice,
		req, 0, 0, buf)
	if err != nil {
		return fmt.Errorf("control out 0x%02X failed: %w", req, err)
	}
	if n != len(buf) {
		return fmt.Errorf("control out 0x%02X: short transfer %d/%d bytes", req, n, len(buf))
	}
	return nil
}

// ReadControl issues a vendor control IN request filling buf.
func (t *FX3Transport) ReadControl(req uint8, buf []byte, timeout time.Duration) error {
	t.dev.ControlTimeout = timeout
	n, err := t.dev.Control(
		gousb.ControlIn|gousb.ControlVendor|gousb.ControlDevice,
		req, 0, 0, buf)
	if err != nil {
		return fmt.Errorf("control in 0x%02X failed: %w", req, err)
	}
	if n != len(buf) {
		return fmt.Errorf("control in 0x%02X: short transfer %d/%d bytes", req, n, len(buf))
	}
	return nil
}

// ReadBulk performs one read attempt on the data-in endpoint. The attempt
// is bounded by the configured per-attempt timeout so the caller's poll
// loop keeps control of the overall deadline.
func (t *FX3Transport) ReadBulk(buf []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), t.bulkReadTimeout)
	defer cancel()

	n, err := t.bulkIn.ReadContext(ctx, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("bulk read: short transfer %d/%d bytes", n, len(buf))
	}
	return nil
}

// Close releases the interface, configuration, device and context.
func (t *FX3Transport) Close() error {
	if t.intf != nil {
		t.intf.Close()
	}
	if t.cfg != nil {
		t.cfg.Close()
	}
	if t.dev != nil {
		t.dev.Close()
	}
	if t.ctx != nil {
		return t.ctx.Close()
	}
	return nil
}
