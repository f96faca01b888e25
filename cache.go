package xladevices

import (
	"strings"

	"github.com/gomlx/xladevices/devnames"
	"github.com/gomlx/xladevices/registry"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

//go:generate go tool enumer -type Class -trimprefix=Class -output=gen_class_enumer.go cache.go

// Class is the coarse device classification the picker operates on: the two
// well-known types get their own class, everything else (e.g. a specialized
// accelerator with its own compilation backend) is ClassUnknown.
type Class int

const (
	ClassUnknown Class = iota
	ClassCPU
	ClassGPU
)

// DeviceInfoCache interns device names into DeviceIds, and memoizes per-id
// the classification derived from the name: the device type, its Class, and
// the compilation backend registered for the type (if any).
//
// Classification happens once, when a name is first seen, and is never
// recomputed. The per-id attribute slices are parallel and index-aligned:
// they grow together, one entry per interned name, and never shrink.
type DeviceInfoCache struct {
	nameToID map[string]DeviceId

	names       []string
	deviceTypes []devnames.DeviceType
	classes     []Class

	// registrations holds non-owning pointers into the registry package,
	// nil where the device type has no compilation backend.
	registrations []*registry.Registration
}

// NewDeviceInfoCache returns an empty cache. DeviceIds from different cache
// instances are not interchangeable.
func NewDeviceInfoCache() *DeviceInfoCache {
	return &DeviceInfoCache{nameToID: make(map[string]DeviceId)}
}

// GetIdFor returns the id for the fully-qualified device name, interning and
// classifying it on first sight. The same name always maps to the same id
// for the lifetime of the cache.
//
// It returns an error if name is empty or is not a well-formed device name;
// no id is allocated in that case.
func (c *DeviceInfoCache) GetIdFor(name string) (DeviceId, error) {
	if name == "" {
		return 0, errors.New("invalid device name: empty string")
	}
	if id, found := c.nameToID[name]; found {
		return id, nil
	}

	deviceType, err := devnames.DeviceNameToDeviceType(name)
	if err != nil {
		return 0, err
	}
	class := ClassUnknown
	switch deviceType {
	case devnames.CPU:
		class = ClassCPU
	case devnames.GPU:
		class = ClassGPU
	}
	// Absence of a compilation backend is normal, recorded as nil.
	registration, _ := registry.GetCompilationDevice(deviceType)

	id := DeviceId(len(c.names))
	c.names = append(c.names, name)
	c.deviceTypes = append(c.deviceTypes, deviceType)
	c.classes = append(c.classes, class)
	c.registrations = append(c.registrations, registration)
	c.nameToID[name] = id
	klog.V(2).Infof("interned device %q as id %d (type=%s, class=%s)", name, id, deviceType, class)
	return id, nil
}

// Size returns the number of interned names, which is also the number of
// ids handed out so far.
func (c *DeviceInfoCache) Size() int { return len(c.names) }

// IsCpu returns whether id is a CPU device. The id must have been produced
// by this cache instance.
func (c *DeviceInfoCache) IsCpu(id DeviceId) bool { return c.classes[id] == ClassCPU }

// IsGpu returns whether id is a GPU device. The id must have been produced
// by this cache instance.
func (c *DeviceInfoCache) IsGpu(id DeviceId) bool { return c.classes[id] == ClassGPU }

// GetClassFor returns the Class of id.
func (c *DeviceInfoCache) GetClassFor(id DeviceId) Class { return c.classes[id] }

// GetNameFor returns the device name id was interned from.
func (c *DeviceInfoCache) GetNameFor(id DeviceId) string { return c.names[id] }

// GetDeviceTypeFor returns the device type parsed from id's name.
func (c *DeviceInfoCache) GetDeviceTypeFor(id DeviceId) devnames.DeviceType {
	return c.deviceTypes[id]
}

// GetCompilationDevice returns the compilation backend registration for id's
// device type, or nil if none is registered. The returned pointer is owned
// by the registry, not by the cache or the caller.
func (c *DeviceInfoCache) GetCompilationDevice(id DeviceId) *registry.Registration {
	return c.registrations[id]
}

// GetCompilationDeviceByName interns name (see GetIdFor) and returns the
// compilation backend registration for its device type, or nil if none is
// registered.
func (c *DeviceInfoCache) GetCompilationDeviceByName(name string) (*registry.Registration, error) {
	id, err := c.GetIdFor(name)
	if err != nil {
		return nil, err
	}
	return c.registrations[id], nil
}

// DebugString renders devices as the bracketed, comma-separated list of
// their names, in ascending id order. For diagnostics only.
func (c *DeviceInfoCache) DebugString(devices *DeviceSet) string {
	var names []string
	devices.ForEach(func(id DeviceId) bool {
		names = append(names, c.names[id])
		return true
	})
	return "[" + strings.Join(names, ",") + "]"
}
