// Package observability provides hooks for logging and instrumentation.
//
// Libraries emit events through the registered hooks; the defaults do
// nothing. The CLI registers its own implementations at startup:
//
//	func main() {
//	    observability.SetLoadHooks(&myLoadHooks{})
//	    observability.SetCommandHooks(&myCommandHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Loader().OnLoadStart(ctx, "cargo metadata")
//	// ... resolve and normalize ...
//	observability.Loader().OnLoadComplete(ctx, "cargo metadata", count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from dependency loading.
type LoadHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, count int, duration time.Duration, err error)
}

// =============================================================================
// Command Hooks
// =============================================================================

// CommandHooks receives events from external commands (e.g., cargo).
type CommandHooks interface {
	// OnExec records a command about to run.
	OnExec(ctx context.Context, name string, args []string)

	// OnExit records a finished command. err is nil on a zero exit status.
	OnExit(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnLoadStart(context.Context, string)                               {}
func (NoopLoadHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}

// NoopCommandHooks is a no-op implementation of CommandHooks.
type NoopCommandHooks struct{}

func (NoopCommandHooks) OnExec(context.Context, string, []string)             {}
func (NoopCommandHooks) OnExit(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loadHooks    LoadHooks    = NoopLoadHooks{}
	commandHooks CommandHooks = NoopCommandHooks{}
	hooksMu      sync.RWMutex
)

// SetLoadHooks registers custom load hooks. A nil value is ignored.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// SetCommandHooks registers custom command hooks. A nil value is ignored.
func SetCommandHooks(h CommandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		commandHooks = h
	}
}

// Loader returns the registered load hooks.
func Loader() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Command returns the registered command hooks.
func Command() CommandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return commandHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loadHooks = NoopLoadHooks{}
	commandHooks = NoopCommandHooks{}
}
