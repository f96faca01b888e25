package xladevices

import "github.com/pkg/errors"

// PickDevice resolves devices to the single device that should host a
// compiled unit of work, or returns an error describing why no unambiguous
// choice exists.
//
// At most one device per class may be present. A GPU and a CPU may coexist
// (the GPU wins); an unknown-class device and a GPU never may; an
// unknown-class device and a CPU may coexist only when
// allowMixingUnknownAndCpu is set (the unknown-class device wins). The
// selection priority is GPU, then unknown-class, then CPU.
//
// devices must be non-empty and its ids must come from cache.
func PickDevice(cache *DeviceInfoCache, devices *DeviceSet, allowMixingUnknownAndCpu bool) (DeviceId, error) {
	picked, _, err := pickDevice(cache, devices, allowMixingUnknownAndCpu, true)
	return picked, err
}

// CanPickDevice reports whether PickDevice would succeed on the same inputs.
// Every conflict PickDevice reports as an error is folded into false here;
// an empty devices set is still an error (a caller bug, not a conflict).
func CanPickDevice(cache *DeviceInfoCache, devices *DeviceSet, allowMixingUnknownAndCpu bool) (bool, error) {
	_, canPick, err := pickDevice(cache, devices, allowMixingUnknownAndCpu, false)
	return canPick, err
}

// pickDevice is the shared implementation of PickDevice and CanPickDevice:
// one fail-fast scan bucketing devices by class, then conflict checks in
// fixed priority order, then selection.
func pickDevice(cache *DeviceInfoCache, devices *DeviceSet, allowMixingUnknownAndCpu bool,
	failOnConflict bool) (picked DeviceId, canPick bool, err error) {
	if devices.IsEmpty() {
		return 0, false, errors.New("no devices to choose from")
	}

	var gpuDevice, cpuDevice, unknownDevice DeviceId
	var hasGpu, hasCpu, hasUnknown bool
	var multipleGpu, multipleCpu, multipleUnknown bool

	// One device per bucket; a second one decides the outcome (a conflict),
	// so the scan stops there.
	devices.ForEach(func(id DeviceId) bool {
		switch {
		case cache.IsGpu(id):
			if hasGpu {
				multipleGpu = true
				return false
			}
			gpuDevice, hasGpu = id, true
		case cache.IsCpu(id):
			if hasCpu {
				multipleCpu = true
				return false
			}
			cpuDevice, hasCpu = id, true
		default:
			if hasUnknown {
				multipleUnknown = true
				return false
			}
			unknownDevice, hasUnknown = id, true
		}
		return true
	})

	var conflict error
	switch {
	case multipleGpu:
		conflict = errors.Errorf("multiple GPU devices %s", cache.DebugString(devices))
	case multipleCpu:
		conflict = errors.Errorf("multiple CPU devices %s", cache.DebugString(devices))
	case multipleUnknown:
		conflict = errors.Errorf("multiple unknown devices %s", cache.DebugString(devices))
	case hasUnknown && hasGpu:
		conflict = errors.Errorf("found both unknown and GPU devices: %s, %s",
			cache.GetNameFor(unknownDevice), cache.GetNameFor(gpuDevice))
	case !allowMixingUnknownAndCpu && hasUnknown && hasCpu:
		conflict = errors.Errorf("found both unknown and CPU devices: %s, %s",
			cache.GetNameFor(unknownDevice), cache.GetNameFor(cpuDevice))
	}
	if conflict != nil {
		if failOnConflict {
			return 0, false, conflict
		}
		return 0, false, nil
	}

	switch {
	case hasGpu:
		picked = gpuDevice
	case hasUnknown:
		picked = unknownDevice
	default:
		picked = cpuDevice
	}
	return picked, true, nil
}
