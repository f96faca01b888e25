// Package registry is the process-wide registry of compilation backends: it
// maps a device type (e.g. "GPU") to the registration record describing how
// work placed on that device type gets compiled.
//
// Backends register themselves during initialization of their package;
// lookups are expected only after initialization is done.
package registry

import (
	"sync"

	"github.com/gomlx/xladevices/devnames"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

//go:generate go tool enumer -type AutoclusterPolicy -trimprefix=Autocluster -output=gen_autoclusterpolicy_enumer.go registry.go

// AutoclusterPolicy controls whether operations placed on a device type may
// be clustered for compilation without an explicit user request.
type AutoclusterPolicy int

const (
	// AutoclusterNever means clustering happens only when explicitly
	// requested on the operation.
	AutoclusterNever AutoclusterPolicy = iota

	// AutoclusterIfEnabled means clustering happens when globally enabled.
	AutoclusterIfEnabled

	// AutoclusterAlways means clustering happens unconditionally.
	AutoclusterAlways
)

// Registration describes the compilation backend for one device type.
// Registration records are owned by this package for the lifetime of the
// process; callers receive non-owning pointers and must not mutate them.
type Registration struct {
	// CompilationDeviceName is the device type the compiler targets for
	// this device, e.g. "XLA_GPU" for "GPU".
	CompilationDeviceName devnames.DeviceType

	// AutoclusterPolicy for operations placed on this device type.
	AutoclusterPolicy AutoclusterPolicy
}

var (
	muRegistrations sync.Mutex
	registrations   = make(map[devnames.DeviceType]*Registration)
)

// Register a compilation backend for deviceType. It panics if a backend is
// already registered for deviceType: registration happens at package
// initialization, and a duplicate is a programming error.
func Register(deviceType devnames.DeviceType, registration *Registration) {
	muRegistrations.Lock()
	defer muRegistrations.Unlock()
	if _, found := registrations[deviceType]; found {
		panic(errors.Errorf("duplicate compilation backend registration for device type %q", deviceType))
	}
	klog.V(2).Infof("registered compilation backend for device type %q (compilation device %q)",
		deviceType, registration.CompilationDeviceName)
	registrations[deviceType] = registration
}

// GetCompilationDevice returns the registration for deviceType, or found=false
// if no compilation backend was registered for it. Absence is a normal
// outcome, not an error.
func GetCompilationDevice(deviceType devnames.DeviceType) (registration *Registration, found bool) {
	muRegistrations.Lock()
	defer muRegistrations.Unlock()
	registration, found = registrations[deviceType]
	return
}
