package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLoadHooks{}
	l.OnLoadStart(ctx, "cargo metadata")
	l.OnLoadComplete(ctx, "cargo metadata", 12, time.Second, nil)

	c := NoopCommandHooks{}
	c.OnExec(ctx, "cargo", []string{"metadata", "--format-version", "1"})
	c.OnExit(ctx, "cargo", time.Second, errors.New("exit status 101"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Loader().(NoopLoadHooks); !ok {
		t.Error("Loader() should return NoopLoadHooks by default")
	}
	if _, ok := Command().(NoopCommandHooks); !ok {
		t.Error("Command() should return NoopCommandHooks by default")
	}

	customLoad := &testLoadHooks{}
	SetLoadHooks(customLoad)
	if Loader() != customLoad {
		t.Error("SetLoadHooks should set custom hooks")
	}

	customCommand := &testCommandHooks{}
	SetCommandHooks(customCommand)
	if Command() != customCommand {
		t.Error("SetCommandHooks should set custom hooks")
	}

	Reset()
	if _, ok := Loader().(NoopLoadHooks); !ok {
		t.Error("Reset should restore NoopLoadHooks")
	}
	if _, ok := Command().(NoopCommandHooks); !ok {
		t.Error("Reset should restore NoopCommandHooks")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetLoadHooks(nil)
	SetCommandHooks(nil)

	if _, ok := Loader().(NoopLoadHooks); !ok {
		t.Error("SetLoadHooks(nil) should keep the previous hooks")
	}
	if _, ok := Command().(NoopCommandHooks); !ok {
		t.Error("SetCommandHooks(nil) should keep the previous hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &testLoadHooks{}
	SetLoadHooks(h)

	ctx := context.Background()
	Loader().OnLoadStart(ctx, "Cargo.lock")
	Loader().OnLoadComplete(ctx, "Cargo.lock", 3, time.Millisecond, nil)

	if h.started != 1 || h.completed != 1 {
		t.Errorf("got started=%d completed=%d, want 1/1", h.started, h.completed)
	}
	if h.lastCount != 3 {
		t.Errorf("lastCount = %d, want 3", h.lastCount)
	}
}

type testLoadHooks struct {
	started, completed int
	lastCount          int
}

func (h *testLoadHooks) OnLoadStart(context.Context, string) { h.started++ }
func (h *testLoadHooks) OnLoadComplete(_ context.Context, _ string, count int, _ time.Duration, _ error) {
	h.completed++
	h.lastCount = count
}

type testCommandHooks struct{}

func (*testCommandHooks) OnExec(context.Context, string, []string)             {}
func (*testCommandHooks) OnExit(context.Context, string, time.Duration, error) {}
