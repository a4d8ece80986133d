package domain

import "fmt"

// Device is a sensor or appliance placed in a store aisle. Sensors only emit
// events; appliances emit events and accept commands.
type Device interface {
	ID() string
	Name() string
	Type() string
	StoreLocation() StoreLocation
	SupportsCommands() bool
	String() string
}

// Device type strings and the capability variant they map to.
var (
	sensorTypes    = map[string]bool{"camera": true, "microphone": true}
	applianceTypes = map[string]bool{"robot": true, "speaker": true, "turnstile": true}
)

type deviceInfo struct {
	id         string
	name       string
	deviceType string
	location   StoreLocation
}

func (d deviceInfo) ID() string                   { return d.id }
func (d deviceInfo) Name() string                 { return d.name }
func (d deviceInfo) Type() string                 { return d.deviceType }
func (d deviceInfo) StoreLocation() StoreLocation { return d.location }

// Sensor is a passive device.
type Sensor struct {
	deviceInfo
}

func (s *Sensor) SupportsCommands() bool { return false }

func (s *Sensor) String() string {
	return fmt.Sprintf("Device{id=%s, name=%s, type=%s, location=%s}", s.id, s.name, s.deviceType, s.location)
}

// Appliance is an active device that accepts commands.
type Appliance struct {
	deviceInfo
}

func (a *Appliance) SupportsCommands() bool { return true }

func (a *Appliance) String() string {
	return fmt.Sprintf("Device{id=%s, name=%s, type=%s, location=%s}", a.id, a.name, a.deviceType, a.location)
}

// NewDevice classifies deviceType into a Sensor or Appliance. An unrecognized
// type string is a provisioning error.
func NewDevice(id, name, deviceType string, location StoreLocation) (Device, error) {
	info := deviceInfo{id: id, name: name, deviceType: deviceType, location: location}
	switch {
	case sensorTypes[deviceType]:
		return &Sensor{deviceInfo: info}, nil
	case applianceTypes[deviceType]:
		return &Appliance{deviceInfo: info}, nil
	default:
		return nil, NewInvalidArgument("define device", fmt.Sprintf("unknown device type %q", deviceType))
	}
}
