package lifecycle

import (
	"errors"
	"testing"
)

// TestDeliveryOrder verifies handlers run synchronously in registration order.
func TestDeliveryOrder(t *testing.T) {
	d := New()
	defer d.Close()

	var order []string
	for _, id := range []string{"view-transform", "frustum", "shader"} {
		id := id
		if err := d.Subscribe(id, func(sig Signal) error {
			order = append(order, id)
			return nil
		}); err != nil {
			t.Fatalf("Subscribe %s failed: %v", id, err)
		}
	}

	if err := d.Publish(ShaderRendering); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	want := []string{"view-transform", "frustum", "shader"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d deliveries, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Delivery %d: got %s, want %s", i, order[i], want[i])
		}
	}
}

// TestHandlerErrorDoesNotStopDelivery verifies a failing handler is skipped
// over, not fatal to the fan-out.
func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := New()
	defer d.Close()

	boom := errors.New("export failed")
	reached := false

	_ = d.Subscribe("failing", func(Signal) error { return boom })
	_ = d.Subscribe("after", func(Signal) error {
		reached = true
		return nil
	})

	err := d.Publish(ShaderRendering)
	if !errors.Is(err, boom) {
		t.Errorf("Expected handler error surfaced, got %v", err)
	}
	if !reached {
		t.Errorf("Expected delivery to continue past failing handler")
	}
}

// TestSubscribeDuplicate verifies duplicate registration is rejected.
func TestSubscribeDuplicate(t *testing.T) {
	d := New()
	defer d.Close()

	h := func(Signal) error { return nil }
	if err := d.Subscribe("x", h); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if err := d.Subscribe("x", h); !errors.Is(err, ErrHandlerExists) {
		t.Errorf("Expected ErrHandlerExists, got %v", err)
	}
}

// TestUnsubscribe verifies removal and not-found handling.
func TestUnsubscribe(t *testing.T) {
	d := New()
	defer d.Close()

	calls := 0
	_ = d.Subscribe("x", func(Signal) error {
		calls++
		return nil
	})

	if err := d.Unsubscribe("x"); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if err := d.Unsubscribe("x"); !errors.Is(err, ErrHandlerNotFound) {
		t.Errorf("Expected ErrHandlerNotFound, got %v", err)
	}

	_ = d.Publish(ShaderRendering)
	if calls != 0 {
		t.Errorf("Expected no delivery after unsubscribe, got %d", calls)
	}
}

// TestStats verifies delivered/failed counters.
func TestStats(t *testing.T) {
	d := New()
	defer d.Close()

	fail := true
	_ = d.Subscribe("x", func(Signal) error {
		if fail {
			return errors.New("nope")
		}
		return nil
	})

	_ = d.Publish(ShaderActivated)
	fail = false
	_ = d.Publish(ShaderRendering)
	_ = d.Publish(ShaderDeactivated)

	stats, err := d.Stats("x")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Delivered != 2 {
		t.Errorf("Expected 2 delivered, got %d", stats.Delivered)
	}
	if stats.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", stats.Failed)
	}

	if _, err := d.Stats("missing"); !errors.Is(err, ErrHandlerNotFound) {
		t.Errorf("Expected ErrHandlerNotFound, got %v", err)
	}
}

// TestClosed verifies operations after Close fail cleanly.
func TestClosed(t *testing.T) {
	d := New()
	d.Close()
	d.Close() // idempotent

	if err := d.Subscribe("x", func(Signal) error { return nil }); !errors.Is(err, ErrDispatcherClosed) {
		t.Errorf("Expected ErrDispatcherClosed on Subscribe, got %v", err)
	}
	if err := d.Publish(ShaderRendering); !errors.Is(err, ErrDispatcherClosed) {
		t.Errorf("Expected ErrDispatcherClosed on Publish, got %v", err)
	}
}

// TestSignalString verifies signal names used in error context.
func TestSignalString(t *testing.T) {
	cases := map[Signal]string{
		SceneCompileBegin: "scene-compile-begin",
		ShaderActivated:   "shader-activated",
		ShaderRendering:   "shader-rendering",
		ShaderDeactivated: "shader-deactivated",
		Signal(99):        "unknown",
	}
	for sig, want := range cases {
		if got := sig.String(); got != want {
			t.Errorf("Signal(%d).String() = %q, want %q", sig, got, want)
		}
	}
}
