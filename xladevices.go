// Package xladevices resolves which single device should host a JIT-compiled
// unit of work, given the set of candidate devices assigned to a computation.
//
// Among its pieces:
//
//   - DeviceSet: a growable bitset of DeviceIds.
//   - DeviceInfoCache: interns device names into DeviceIds and memoizes the
//     per-device classification (CPU, GPU or unknown-class) and the
//     compilation backend registered for the device type (see the registry
//     sub-package).
//   - PickDevice / CanPickDevice: the conflict-resolution policy. GPU beats
//     unknown-class beats CPU, at most one device per class, and some class
//     mixtures are rejected outright (see PickDevice).
//
// Typical use: intern the device names assigned to a cluster's nodes with
// DeviceInfoCache.GetIdFor, collect the ids in a DeviceSet, and call
// PickDevice -- or CanPickDevice when probing whether a cluster is placeable
// at all.
//
// None of the types here lock internally: concurrent mutation of a DeviceSet
// or a DeviceInfoCache must be serialized by the caller. Reads (including
// picking) may run concurrently with each other, but not with a mutation of
// the same instance.
package xladevices
