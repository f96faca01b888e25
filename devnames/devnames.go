// Package devnames parses fully-qualified device names, as assigned by the
// placer to the nodes of a computation graph.
//
// A fully-qualified name looks like "/job:worker/replica:0/task:1/device:GPU:2".
// Every component is optional, but they must appear in that order. A component
// value may be the wildcard "*", meaning "unconstrained". The legacy suffixes
// "/cpu:N" and "/gpu:N" are accepted as shorthand for "/device:CPU:N" and
// "/device:GPU:N".
package devnames

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DeviceType identifies a class of devices, e.g. "CPU", "GPU" or "TPU".
// It is the type component of a fully-qualified device name.
type DeviceType string

// Well-known device types. Anything else is an accelerator the resolver
// treats as "unknown class".
const (
	CPU DeviceType = "CPU"
	GPU DeviceType = "GPU"
)

// ParsedName is the decomposed form of a fully-qualified device name.
// Each component has a Has* flag: a false flag means the component was
// absent or the wildcard "*".
type ParsedName struct {
	Job        string
	HasJob     bool
	Replica    int
	HasReplica bool
	Task       int
	HasTask    bool
	Type       DeviceType
	HasType    bool
	ID         int
	HasID      bool
}

// String renders the canonical fully-qualified form, with "*" for absent
// components.
func (p ParsedName) String() string {
	var sb strings.Builder
	if p.HasJob {
		fmt.Fprintf(&sb, "/job:%s", p.Job)
	} else {
		sb.WriteString("/job:*")
	}
	if p.HasReplica {
		fmt.Fprintf(&sb, "/replica:%d", p.Replica)
	} else {
		sb.WriteString("/replica:*")
	}
	if p.HasTask {
		fmt.Fprintf(&sb, "/task:%d", p.Task)
	} else {
		sb.WriteString("/task:*")
	}
	if p.HasType {
		fmt.Fprintf(&sb, "/device:%s:", p.Type)
	} else {
		sb.WriteString("/device:*:")
	}
	if p.HasID {
		fmt.Fprintf(&sb, "%d", p.ID)
	} else {
		sb.WriteString("*")
	}
	return sb.String()
}

// ParseFullName parses a fully-qualified device name.
// It returns an error if name is empty, if a component is malformed, or if
// components appear out of order.
func ParseFullName(name string) (ParsedName, error) {
	var p ParsedName
	if name == "" {
		return p, errors.New("empty device name")
	}
	if !strings.HasPrefix(name, "/") {
		return p, errors.Errorf("device name %q must start with '/'", name)
	}

	// Components must appear in this order; seen tracks how far we got.
	const (
		sawNothing = iota
		sawJob
		sawReplica
		sawTask
		sawDevice
	)
	seen := sawNothing

	for _, segment := range strings.Split(name[1:], "/") {
		key, value, found := strings.Cut(segment, ":")
		if !found {
			return ParsedName{}, errors.Errorf("malformed component %q in device name %q", segment, name)
		}
		switch key {
		case "job":
			if seen >= sawJob {
				return ParsedName{}, errors.Errorf("component %q out of order in device name %q", segment, name)
			}
			seen = sawJob
			if value != "*" {
				p.Job = value
				p.HasJob = true
			}
		case "replica":
			if seen >= sawReplica {
				return ParsedName{}, errors.Errorf("component %q out of order in device name %q", segment, name)
			}
			seen = sawReplica
			if err := parseWildcardInt(value, &p.Replica, &p.HasReplica); err != nil {
				return ParsedName{}, errors.WithMessagef(err, "parsing replica in device name %q", name)
			}
		case "task":
			if seen >= sawTask {
				return ParsedName{}, errors.Errorf("component %q out of order in device name %q", segment, name)
			}
			seen = sawTask
			if err := parseWildcardInt(value, &p.Task, &p.HasTask); err != nil {
				return ParsedName{}, errors.WithMessagef(err, "parsing task in device name %q", name)
			}
		case "device":
			if seen >= sawDevice {
				return ParsedName{}, errors.Errorf("component %q out of order in device name %q", segment, name)
			}
			seen = sawDevice
			deviceType, id, found := strings.Cut(value, ":")
			if !found || deviceType == "" {
				return ParsedName{}, errors.Errorf("malformed device component %q in device name %q", segment, name)
			}
			if deviceType != "*" {
				p.Type = DeviceType(deviceType)
				p.HasType = true
			}
			if err := parseWildcardInt(id, &p.ID, &p.HasID); err != nil {
				return ParsedName{}, errors.WithMessagef(err, "parsing device id in device name %q", name)
			}
		case "cpu", "CPU", "gpu", "GPU":
			// Legacy short form, e.g. "/cpu:0".
			if seen >= sawDevice {
				return ParsedName{}, errors.Errorf("component %q out of order in device name %q", segment, name)
			}
			seen = sawDevice
			p.Type = DeviceType(strings.ToUpper(key))
			p.HasType = true
			if err := parseWildcardInt(value, &p.ID, &p.HasID); err != nil {
				return ParsedName{}, errors.WithMessagef(err, "parsing device id in device name %q", name)
			}
		default:
			return ParsedName{}, errors.Errorf("unknown component %q in device name %q", segment, name)
		}
	}
	return p, nil
}

// parseWildcardInt parses value into *out, or leaves *has false if value is
// the wildcard "*". Values must be non-negative.
func parseWildcardInt(value string, out *int, has *bool) error {
	if value == "*" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return errors.Errorf("expected a non-negative number or '*', got %q", value)
	}
	*out = n
	*has = true
	return nil
}

// DeviceNameToDeviceType extracts the device type from a fully-assigned
// device name. Assigned names always carry an explicit type, so both a parse
// failure and a wildcard type are reported as a malformed name.
func DeviceNameToDeviceType(name string) (DeviceType, error) {
	parsed, err := ParseFullName(name)
	if err != nil {
		return "", errors.WithMessagef(err, "malformed assigned device %q", name)
	}
	if !parsed.HasType {
		return "", errors.Errorf("malformed assigned device %q: no device type", name)
	}
	return parsed.Type, nil
}
