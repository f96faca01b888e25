package xladevices_test

import (
	"testing"

	"github.com/gomlx/xladevices"
	"github.com/gomlx/xladevices/devnames"
	"github.com/gomlx/xladevices/registry"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)

	// The compilation backends a stock pipeline registers: the well-known
	// types plus TPU, an unknown-class accelerator with its own backend.
	registry.Register(devnames.CPU, &registry.Registration{
		CompilationDeviceName: "XLA_CPU",
		AutoclusterPolicy:     registry.AutoclusterIfEnabled,
	})
	registry.Register(devnames.GPU, &registry.Registration{
		CompilationDeviceName: "XLA_GPU",
		AutoclusterPolicy:     registry.AutoclusterIfEnabled,
	})
	registry.Register("TPU", &registry.Registration{
		CompilationDeviceName: "XLA_TPU",
		AutoclusterPolicy:     registry.AutoclusterAlways,
	})
}

const (
	cpu0 = "/job:worker/replica:0/task:0/device:CPU:0"
	cpu1 = "/job:worker/replica:0/task:1/device:CPU:0"
	gpu0 = "/job:worker/replica:0/task:0/device:GPU:0"
	gpu1 = "/job:worker/replica:0/task:0/device:GPU:1"
	tpu0 = "/job:worker/replica:0/task:0/device:TPU:0"
	tpu1 = "/job:worker/replica:0/task:0/device:TPU:1"
)

func TestDeviceInfoCacheInterning(t *testing.T) {
	cache := xladevices.NewDeviceInfoCache()
	require.Equal(t, 0, cache.Size())

	id, err := cache.GetIdFor(cpu0)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Size())
	require.Equal(t, cpu0, cache.GetNameFor(id))

	// Idempotent: same name, same id, no growth.
	again, err := cache.GetIdFor(cpu0)
	require.NoError(t, err)
	require.Equal(t, id, again)
	require.Equal(t, 1, cache.Size())

	// A new name gets the next sequential id.
	gpuId, err := cache.GetIdFor(gpu0)
	require.NoError(t, err)
	require.Equal(t, id.Index()+1, gpuId.Index())
	require.Equal(t, 2, cache.Size())
}

func TestDeviceInfoCacheRejectsBadNames(t *testing.T) {
	cache := xladevices.NewDeviceInfoCache()

	_, err := cache.GetIdFor("")
	require.ErrorContains(t, err, "empty")
	require.Equal(t, 0, cache.Size())

	// A parse failure allocates no id either.
	_, err = cache.GetIdFor("not-a-device")
	require.ErrorContains(t, err, "malformed assigned device")
	require.Equal(t, 0, cache.Size())

	// A name with no device type is not fully assigned.
	_, err = cache.GetIdFor("/job:worker/replica:0/task:0")
	require.Error(t, err)
	require.Equal(t, 0, cache.Size())
}

func TestDeviceInfoCacheClassification(t *testing.T) {
	cache := xladevices.NewDeviceInfoCache()
	cpuId, err := cache.GetIdFor(cpu0)
	require.NoError(t, err)
	gpuId, err := cache.GetIdFor(gpu0)
	require.NoError(t, err)
	tpuId, err := cache.GetIdFor(tpu0)
	require.NoError(t, err)

	require.True(t, cache.IsCpu(cpuId))
	require.False(t, cache.IsGpu(cpuId))
	require.Equal(t, xladevices.ClassCPU, cache.GetClassFor(cpuId))
	require.Equal(t, devnames.CPU, cache.GetDeviceTypeFor(cpuId))

	require.True(t, cache.IsGpu(gpuId))
	require.False(t, cache.IsCpu(gpuId))
	require.Equal(t, xladevices.ClassGPU, cache.GetClassFor(gpuId))

	require.False(t, cache.IsCpu(tpuId))
	require.False(t, cache.IsGpu(tpuId))
	require.Equal(t, xladevices.ClassUnknown, cache.GetClassFor(tpuId))
	require.Equal(t, devnames.DeviceType("TPU"), cache.GetDeviceTypeFor(tpuId))
}

func TestDeviceInfoCacheCompilationDevice(t *testing.T) {
	cache := xladevices.NewDeviceInfoCache()
	cpuId, err := cache.GetIdFor(cpu0)
	require.NoError(t, err)

	registration := cache.GetCompilationDevice(cpuId)
	require.NotNil(t, registration)
	require.Equal(t, devnames.DeviceType("XLA_CPU"), registration.CompilationDeviceName)

	// Absence of a backend is not an error, just nil.
	weirdId, err := cache.GetIdFor("/job:worker/replica:0/task:0/device:WEIRD:0")
	require.NoError(t, err)
	require.Nil(t, cache.GetCompilationDevice(weirdId))

	// The by-name convenience interns as a side effect.
	sizeBefore := cache.Size()
	registration, err = cache.GetCompilationDeviceByName(tpu0)
	require.NoError(t, err)
	require.NotNil(t, registration)
	require.Equal(t, devnames.DeviceType("XLA_TPU"), registration.CompilationDeviceName)
	require.Equal(t, sizeBefore+1, cache.Size())
}

func TestDeviceInfoCacheDebugString(t *testing.T) {
	cache := xladevices.NewDeviceInfoCache()
	var devices xladevices.DeviceSet
	for _, name := range []string{"/device:CPU:0", "/device:GPU:0"} {
		id, err := cache.GetIdFor(name)
		require.NoError(t, err)
		devices.Insert(id)
	}
	require.Equal(t, "[/device:CPU:0,/device:GPU:0]", cache.DebugString(&devices))

	var empty xladevices.DeviceSet
	require.Equal(t, "[]", cache.DebugString(&empty))
}
