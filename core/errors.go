package core

import "github.com/cockroachdb/errors"

// Every failure in the bootstrap sequence is fatal. Errors are wrapped
// with call site context on the way up and matched with errors.Is; no
// stage retries or recovers locally.
var (
	// ErrConfigurationUnsatisfiable marks a requested layer or
	// extension that the host does not provide.
	ErrConfigurationUnsatisfiable = errors.New("requested configuration unavailable on host")

	// ErrExtensionUnavailable marks an optional entry point that could
	// not be resolved by name.
	ErrExtensionUnavailable = errors.New("extension entry point unavailable")

	// ErrBackendCreationFailed marks a non success result from
	// instance creation.
	ErrBackendCreationFailed = errors.New("instance creation failed")

	// ErrNoDevicesFound marks an empty physical device enumeration.
	ErrNoDevicesFound = errors.New("no physical devices found")

	// ErrNoSuitableDevice marks an enumeration where no candidate
	// satisfied the capability predicate.
	ErrNoSuitableDevice = errors.New("no physical device satisfies requirements")

	// ErrDeviceCreationFailed marks a non success result from logical
	// device creation.
	ErrDeviceCreationFailed = errors.New("logical device creation failed")
)
