package core

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

// Entry point names of the debug report bridge. They live in
// VK_EXT_debug_report and must be resolved at runtime.
const (
	CreateDebugReportEntryPoint  = "vkCreateDebugReportCallbackEXT"
	DestroyDebugReportEntryPoint = "vkDestroyDebugReportCallbackEXT"
)

// DebugReportFlags classifies the severity of a diagnostic report.
type DebugReportFlags uint32

// Report severity bits.
const (
	DebugReportInformation DebugReportFlags = 1 << iota
	DebugReportWarning
	DebugReportPerformanceWarning
	DebugReportError
	DebugReportDebug
)

// DebugReportObjectType tags the kind of API object a report refers to.
type DebugReportObjectType int32

// DebugCallback receives diagnostic reports from the validation layers.
// Implementations must only observe and report; returning false tells
// the backend not to abort the triggering call, and there is no reason
// to ever return true here.
type DebugCallback func(flags DebugReportFlags, objectType DebugReportObjectType,
	object uint64, location uint, messageCode int32,
	layerPrefix, message string) bool

// CreateDebugReportFunc is the resolved type of the install entry point.
type CreateDebugReportFunc func(instance InstanceHandle, flags DebugReportFlags, callback DebugCallback) (DiagnosticHandle, error)

// DestroyDebugReportFunc is the resolved type of the removal entry
// point.
type DestroyDebugReportFunc func(instance InstanceHandle, handle DiagnosticHandle)

// SetupDebugReporter installs a diagnostic callback on the instance. A
// nil callback installs DefaultDebugCallback.
//
// Both entry points are extension level operations resolved by name, so
// setup fails with ErrExtensionUnavailable on hosts that do not carry
// the debug report extension. Callers that did not ask for diagnostics
// simply skip the bridge; callers that did treat the error as fatal.
func SetupDebugReporter(instance *Instance, callback DebugCallback) (*DebugReporter, error) {
	if callback == nil {
		callback = DefaultDebugCallback
	}

	resolver := instance.backend.Resolver(instance.handle)

	createSym, err := resolver.Lookup(CreateDebugReportEntryPoint)
	if err != nil {
		return nil, err
	}
	create, ok := createSym.(CreateDebugReportFunc)
	if !ok {
		return nil, errors.Wrapf(ErrExtensionUnavailable, "core: %s resolved to unexpected type %T", CreateDebugReportEntryPoint, createSym)
	}

	destroySym, err := resolver.Lookup(DestroyDebugReportEntryPoint)
	if err != nil {
		return nil, err
	}
	destroy, ok := destroySym.(DestroyDebugReportFunc)
	if !ok {
		return nil, errors.Wrapf(ErrExtensionUnavailable, "core: %s resolved to unexpected type %T", DestroyDebugReportEntryPoint, destroySym)
	}

	handle, err := create(instance.handle, DebugReportError|DebugReportWarning|DebugReportPerformanceWarning, callback)
	if err != nil {
		return nil, errors.Wrap(err, "core: install debug report callback")
	}

	return &DebugReporter{
		instance: instance,
		handle:   handle,
		destroy:  destroy,
	}, nil
}

// DebugReporter is an installed diagnostic hook, bound 1:1 to its
// instance and destroyed before it.
type DebugReporter struct {
	instance *Instance
	handle   DiagnosticHandle
	destroy  DestroyDebugReportFunc
}

// Destroy removes the callback. Safe on a nil reporter and safe to call
// more than once.
func (r *DebugReporter) Destroy() {
	if r == nil || r.destroy == nil {
		return
	}
	r.destroy(r.instance.handle, r.handle)
	r.destroy = nil
	r.handle = nil
}

// DefaultDebugCallback reports through logrus at a level mapped from the
// severity. It never aborts the triggering call.
func DefaultDebugCallback(flags DebugReportFlags, objectType DebugReportObjectType,
	object uint64, location uint, messageCode int32,
	layerPrefix, message string) bool {

	entry := log.WithFields(log.Fields{
		"layer":  layerPrefix,
		"code":   messageCode,
		"object": object,
	})

	switch {
	case flags&DebugReportError != 0:
		entry.Error(message)
	case flags&(DebugReportWarning|DebugReportPerformanceWarning) != 0:
		entry.Warning(message)
	case flags&DebugReportDebug != 0:
		entry.Debug(message)
	default:
		entry.Info(message)
	}
	return false
}
