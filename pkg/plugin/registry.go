package plugin

import (
	"os"
	"sync"

	"github.com/justyntemme/flpgo/pkg/framework/debug"
)

// Factory builds one plugin instance. host and tag belong to that
// instance for its whole life.
type Factory func(host *Host, tag int) (Plugin, error)

// globalFactory is set once from the plugin binary's init.
var globalFactory Factory

// Register sets the factory the host entry point uses. Call it from an
// init function of the main package.
func Register(f Factory) {
	globalFactory = f
}

// Config tunes wrapper behavior shared by all instances.
type Config struct {
	// LogFile, when set, routes wrapper logging to a file. Hosted
	// plugins have no useful stderr.
	LogFile string
	// LogLevel is the minimum level to record.
	LogLevel debug.LogLevel
}

// SetConfig applies wrapper configuration. Call before the host creates
// instances.
func SetConfig(cfg Config) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			debug.SetOutput(f)
			debug.SetPrefix("flp")
		}
	}
	debug.SetLevel(cfg.LogLevel)
}

var (
	instances   = make(map[uintptr]*instance)
	instancesMu sync.RWMutex
	nextID      uintptr = 1
)

func registerInstance(in *instance) uintptr {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	id := nextID
	nextID++
	instances[id] = in
	return id
}

func unregisterInstance(id uintptr) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	delete(instances, id)
}

func getInstance(id uintptr) *instance {
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return instances[id]
}

// recoverPanic keeps plugin panics from unwinding into host code.
func recoverPanic(operation string) {
	if r := recover(); r != nil {
		debug.Error("panic in %s: %v", operation, r)
	}
}
