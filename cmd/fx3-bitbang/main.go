package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmwinters2/iSensor-FX3-API/fx3"
	"github.com/jmwinters2/iSensor-FX3-API/protocol"
	"github.com/jmwinters2/iSensor-FX3-API/usb"
)

var (
	vid      = flag.Uint("vid", usb.VendorID, "USB vendor ID")
	pid      = flag.Uint("pid", usb.ProductID, "USB product ID")
	freq     = flag.Float64("freq", 100e3, "SCLK frequency in Hz")
	readArg  = flag.String("read", "", "register address to read (e.g. 0x1A)")
	writeArg = flag.String("write", "", "register write as addr=value (e.g. 0x1A=0x05)")
	restore  = flag.Bool("restore", false, "restore hardware SPI mode before exit")
	timeout  = flag.Duration("timeout", time.Second, "bulk response timeout")
	verbose  = flag.Bool("verbose", false, "print driver diagnostics")
)

func main() {
	flag.Parse()

	if *verbose {
		fx3.SetDebugWriter(func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		})
	}

	cfg := usb.DefaultConfig()
	cfg.VendorID = uint16(*vid)
	cfg.ProductID = uint16(*pid)

	transport, err := usb.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open device: %v\n", err)
		os.Exit(1)
	}
	defer transport.Close()

	dev := fx3.NewDevice(transport)
	dev.Timeout = *timeout

	if !dev.BitBang.SetFrequency(*freq) {
		fmt.Fprintf(os.Stderr, "Warning: %.0f Hz exceeds the %.0f Hz bit-bang maximum, running at full speed\n",
			*freq, protocol.MaxFrequencyHz)
	}

	if *readArg != "" {
		addr, err := parseByte(*readArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Bad -read argument: %v\n", err)
			os.Exit(1)
		}
		val, err := dev.ReadRegister16(addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Register read failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("R[0x%02X] = 0x%04X\n", addr, val)
	}

	if *writeArg != "" {
		addrStr, valStr, ok := strings.Cut(*writeArg, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -write expects addr=value")
			os.Exit(1)
		}
		addr, err := parseByte(addrStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Bad -write address: %v\n", err)
			os.Exit(1)
		}
		val, err := parseByte(valStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Bad -write value: %v\n", err)
			os.Exit(1)
		}
		if err := dev.WriteRegisterByte(addr, val); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Register write failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("W[0x%02X] <- 0x%02X\n", addr, val)
	}

	if *restore {
		if err := dev.RestoreHardwareSpi(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to restore hardware SPI: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Hardware SPI mode restored")
	}

	if *verbose {
		fx3.DumpTransferLog()
	}
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
