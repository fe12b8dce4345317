package printing

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer is a sink for raw ESC/POS bytes.
type Printer interface {
	Print(data []byte) error
	IsConnected() bool
}

// --------------------------------------------------
// USB printer (device file, e.g. /dev/usb/lp0)
// --------------------------------------------------

type usbPrinter struct {
	path string
}

func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printing: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printing: write %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --------------------------------------------------
// Network printer (raw TCP, e.g. 192.168.1.50:9100)
// --------------------------------------------------

type networkPrinter struct {
	address string
	timeout time.Duration
}

func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{address: address, timeout: 5 * time.Second}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printing: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printing: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --------------------------------------------------
// Null printer (no hardware configured)
// --------------------------------------------------

type nullPrinter struct{}

func NewNullPrinter() Printer { return &nullPrinter{} }

func (*nullPrinter) Print([]byte) error { return nil }
func (*nullPrinter) IsConnected() bool  { return false }

// NewPrinterFromConfig builds a printer from environment settings.
// printerType is "usb", "network" or "none".
func NewPrinterFromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printing: PRINTER_USB_PATH is required for usb printers")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printing: PRINTER_ADDRESS is required for network printers")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printing: unknown printer type %q", printerType)
	}
}
