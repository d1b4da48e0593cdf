package protocol

import (
	"bytes"
	"testing"
)

func TestParamsLayout(t *testing.T) {
	cfg := &BitBangConfig{
		MOSI:            0x0102,
		MISO:            0x0304,
		SCLK:            0x0506,
		CS:              0x0708,
		HalfPeriodTicks: 0xAABBCCDD,
	}

	want := []byte{
		0x02, 0x01, // MOSI
		0x04, 0x03, // MISO
		0x06, 0x05, // SCLK
		0x08, 0x07, // CS
		0xDD, 0xCC, 0xBB, 0xAA, // HalfPeriodTicks
	}

	got := cfg.Params()
	if len(got) != ConfigBlockSize {
		t.Fatalf("Params() returned %d bytes, want %d", len(got), ConfigBlockSize)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Params() = % X, want % X", got, want)
	}
}

func TestNewBitBangConfigDefaults(t *testing.T) {
	cfg := NewBitBangConfig()

	if cfg.SCLK != DefaultSCLKPin || cfg.CS != DefaultCSPin ||
		cfg.MOSI != DefaultMOSIPin || cfg.MISO != DefaultMISOPin {
		t.Errorf("Unexpected default pins: %+v", cfg)
	}
	if cfg.HalfPeriodTicks != 0 {
		t.Errorf("Expected full-speed default, got %d ticks", cfg.HalfPeriodTicks)
	}
}

func TestSetFrequency(t *testing.T) {
	cfg := NewBitBangConfig()

	if !cfg.SetFrequency(100e3) {
		t.Error("100 kHz should be attainable")
	}
	wantTicks, _ := HalfPeriodTicks(100e3)
	if cfg.HalfPeriodTicks != wantTicks {
		t.Errorf("HalfPeriodTicks = %d, want %d", cfg.HalfPeriodTicks, wantTicks)
	}

	// Unattainable frequencies leave the config at full speed.
	if cfg.SetFrequency(10e6) {
		t.Error("10 MHz should not be attainable")
	}
	if cfg.HalfPeriodTicks != 0 {
		t.Errorf("Expected ticks=0 after an unattainable request, got %d", cfg.HalfPeriodTicks)
	}
}
