package hooks

import (
	"testing"

	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

func TestUnits_DiscoveryDefaults(t *testing.T) {
	reg := hook.Discover(Units(), hook.Options{Quiet: true})

	// The four production hooks, without the self-test unit.
	if reg.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", reg.Len())
	}
	for _, name := range []string{"BashGuard", "ToolAudit", "WorkspaceBrief", "SecretGate"} {
		if _, err := reg.Get(name); err != nil {
			t.Errorf("Get(%q) error = %v", name, err)
		}
	}
	if _, err := reg.Get("EchoNotification"); err == nil {
		t.Error("self-test hooks must be excluded by default")
	}
}

func TestUnits_IncludeSelfTests(t *testing.T) {
	reg := hook.Discover(Units(), hook.Options{Quiet: true, IncludeSelfTests: true})

	if reg.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", reg.Len())
	}
	for _, name := range []string{"EchoNotification", "AlwaysFail"} {
		if _, err := reg.Get(name); err != nil {
			t.Errorf("Get(%q) error = %v", name, err)
		}
	}
}

func TestUnits_DiscoveryOrderIsStable(t *testing.T) {
	first := hook.Discover(Units(), hook.Options{Quiet: true, IncludeSelfTests: true})
	second := hook.Discover(Units(), hook.Options{Quiet: true, IncludeSelfTests: true})

	a, b := first.List(), second.List()
	if len(a) != len(b) {
		t.Fatalf("listing lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			t.Fatalf("kind order differs at %d: %s vs %s", i, a[i].Kind, b[i].Kind)
		}
		if len(a[i].Hooks) != len(b[i].Hooks) {
			t.Fatalf("bucket %s lengths differ", a[i].Kind)
		}
		for j := range a[i].Hooks {
			if a[i].Hooks[j].Name != b[i].Hooks[j].Name {
				t.Errorf("bucket %s order differs at %d: %s vs %s",
					a[i].Kind, j, a[i].Hooks[j].Name, b[i].Hooks[j].Name)
			}
		}
	}
}
