package a11ycheck

import (
	"encoding"
	"fmt"
)

// Config controls rule selection and failure reporting.
type Config struct {
	// Exclude lists rule keys that never run.
	Exclude []string

	// Device selects the device profile. The mobile profile excludes the
	// registry mobile exclusions on top of Exclude.
	Device Device

	// ThrowOnFailure turns failures into errors returned by the construction
	// entry point.
	ThrowOnFailure bool

	// IncludeSourceReference appends the element id to fatal failures and the
	// mounted node to advisory diagnostics.
	IncludeSourceReference bool

	// Filter suppresses failures it returns false for. It gets the resolved
	// element name and the element id.
	Filter func(name, id string) bool
}

// Device is a device profile.
type Device int

const (
	DeviceDefault Device = iota
	DeviceMobile
)

var (
	_ encoding.TextMarshaler   = Device(0)
	_ encoding.TextUnmarshaler = (*Device)(nil)
)

func (d Device) String() string {
	v, err := d.MarshalText()
	if err != nil {
		return fmt.Sprintf("device-invalid(%d)", int(d))
	}

	return string(v)
}

func (d Device) MarshalText() ([]byte, error) {
	switch d {
	case DeviceDefault:
		return []byte("default"), nil
	case DeviceMobile:
		return []byte("mobile"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Device(%d)", int(d))
	}
}

// UnmarshalText for setting values with configs, CLI, etc. An empty text
// means the default profile.
func (d *Device) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "default":
		*d = DeviceDefault
		return nil
	case "mobile":
		*d = DeviceMobile
		return nil
	default:
		return fmt.Errorf("unknown device %q", b)
	}
}
