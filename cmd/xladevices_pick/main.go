// xladevices_pick is a diagnostic tool: given a comma-separated list of
// fully-qualified device names, it reports which device the resolver would
// pick to host a compiled computation, or why no single device can be picked.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gomlx/xladevices"
	"github.com/gomlx/xladevices/devnames"
	"github.com/gomlx/xladevices/registry"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagDevices = flag.String("devices", "", "Comma-separated list of fully-qualified device names, "+
		"e.g. \"/job:worker/replica:0/task:0/device:CPU:0,/job:worker/replica:0/task:0/device:GPU:0\"")
	flagAllowMixing = flag.Bool("allow_mixing_unknown_and_cpu", false,
		"Allow an unknown-class device and a CPU device to coexist (the unknown-class device wins)")
)

// Compilation backends a stock pipeline would register at init; registered
// here so the tool reports registration info for the common types.
func registerDefaultBackends() {
	registry.Register(devnames.CPU, &registry.Registration{
		CompilationDeviceName: "XLA_CPU",
		AutoclusterPolicy:     registry.AutoclusterIfEnabled,
	})
	registry.Register(devnames.GPU, &registry.Registration{
		CompilationDeviceName: "XLA_GPU",
		AutoclusterPolicy:     registry.AutoclusterIfEnabled,
	})
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `xladevices_pick resolves a list of candidate devices to the one device that
would host a JIT-compiled computation.

$ xladevices_pick -devices="/job:w/replica:0/task:0/device:GPU:0,/job:w/replica:0/task:0/device:CPU:0"

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	if *flagDevices == "" {
		fmt.Fprintln(os.Stderr, "No device names given, use -devices.")
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(1)
	}
	registerDefaultBackends()

	cache := xladevices.NewDeviceInfoCache()
	var devices xladevices.DeviceSet
	for _, name := range strings.Split(*flagDevices, ",") {
		id := must.M1(cache.GetIdFor(strings.TrimSpace(name)))
		devices.Insert(id)
		fmt.Printf("\t#%d %s: class=%s", id, cache.GetNameFor(id), cache.GetClassFor(id))
		if registration := cache.GetCompilationDevice(id); registration != nil {
			fmt.Printf(", compilation device %s (autoclustering: %s)",
				registration.CompilationDeviceName, registration.AutoclusterPolicy)
		} else {
			fmt.Printf(", no compilation backend registered")
		}
		fmt.Println()
	}

	picked, err := xladevices.PickDevice(cache, &devices, *flagAllowMixing)
	if err != nil {
		fmt.Printf("No single device can host %s: %v\n", cache.DebugString(&devices), err)
		os.Exit(1)
	}
	fmt.Printf("Picked %s\n", cache.GetNameFor(picked))
}
