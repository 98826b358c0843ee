// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"log/slog"
	"path/filepath"

	"github.com/videowall-foundation/videowall/lib/clock"
)

// Module is one named HUD probe. Get returns the module's formatted
// status line and must never propagate a failure: on any internal
// error it returns the degraded form "<name> N/A".
type Module interface {
	Name() string
	Get() string
}

// Degraded returns the substitute string shown for a module that is
// missing, erroring, or panicking.
func Degraded(name string) string { return name + " N/A" }

// Registry builds and refreshes the module set for a profile session.
type Registry struct {
	logger   *slog.Logger
	clock    clock.Clock
	procRoot string
}

// NewRegistry returns a Registry reading from /proc. The clock feeds
// the "clock" module; tests inject a fake.
func NewRegistry(logger *slog.Logger, clk clock.Clock) *Registry {
	return &Registry{logger: logger, clock: clk, procRoot: "/proc"}
}

// NewRegistryWithProcRoot reads kernel counters from an alternate
// directory tree. Used by tests with fixture files.
func NewRegistryWithProcRoot(logger *slog.Logger, clk clock.Clock, procRoot string) *Registry {
	return &Registry{logger: logger, clock: clk, procRoot: procRoot}
}

// builtins is the static module table. Modules are instantiated per
// Build call so sampling state (previous CPU and network counters)
// starts fresh with each profile session.
var builtins = map[string]func(r *Registry) Module{
	"clock":  func(r *Registry) Module { return &clockModule{clock: r.clock} },
	"cpu":    func(r *Registry) Module { return &cpuModule{statPath: r.proc("stat")} },
	"mem":    func(r *Registry) Module { return &memModule{meminfoPath: r.proc("meminfo")} },
	"uptime": func(r *Registry) Module { return &uptimeModule{uptimePath: r.proc("uptime")} },
	"net":    func(r *Registry) Module { return &netModule{devPath: r.proc("net/dev")} },
}

func (r *Registry) proc(name string) string {
	return filepath.Join(r.procRoot, name)
}

// Build instantiates the requested modules. Unknown names are logged
// and omitted; Refresh later reports them as degraded rather than
// failing the set.
func (r *Registry) Build(names []string) map[string]Module {
	modules := make(map[string]Module, len(names))
	for _, name := range names {
		constructor, ok := builtins[name]
		if !ok {
			r.logger.Warn("unknown telemetry module", "module", name)
			continue
		}
		modules[name] = constructor(r)
	}
	return modules
}

// Refresh produces one output string per requested name, in a map
// keyed by name. Every requested name is present in the result: a
// name with no module, or whose module panics, yields the degraded
// form. The per-module recover boundary is the isolation property the
// HUD depends on — one faulty module cannot blank the others.
func (r *Registry) Refresh(modules map[string]Module, names []string) map[string]string {
	outputs := make(map[string]string, len(names))
	for _, name := range names {
		module, ok := modules[name]
		if !ok {
			outputs[name] = Degraded(name)
			continue
		}
		outputs[name] = r.safeGet(module)
	}
	return outputs
}

func (r *Registry) safeGet(module Module) (output string) {
	defer func() {
		if fault := recover(); fault != nil {
			r.logger.Warn("telemetry module panicked",
				"module", module.Name(), "fault", fault)
			output = Degraded(module.Name())
		}
	}()
	return module.Get()
}
