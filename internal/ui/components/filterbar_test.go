package components_test

import (
	"strings"
	"testing"

	"healthlog/internal/modules/record/domain"
	"healthlog/internal/ui/components"
)

func TestFilterBarSingleActiveButton(t *testing.T) {
	t.Parallel()
	fb := components.NewFilterBar(domain.WindowAll)
	if fb.Active() != domain.WindowAll {
		t.Fatalf("expected all window active, got %v", fb.Active())
	}
	if !fb.Select(domain.Window30) || fb.Active() != domain.Window30 {
		t.Fatalf("expected 30d active")
	}
	if fb.Select(domain.Window{Days: 14}) {
		t.Fatalf("unknown window must be rejected")
	}
	if fb.Active() != domain.Window30 {
		t.Fatalf("rejected select must not change the active button")
	}
}

func TestFilterBarKeys(t *testing.T) {
	t.Parallel()
	fb := components.NewFilterBar(domain.WindowAll)
	want := map[string]domain.Window{"1": domain.Window7, "2": domain.Window30, "3": domain.Window90, "4": domain.WindowAll}
	for key, w := range want {
		got, ok := fb.Key(key)
		if !ok || got != w {
			t.Fatalf("key %s: expected %v, got %v (%t)", key, w, got, ok)
		}
	}
	for _, key := range []string{"0", "5", "a", ""} {
		if _, ok := fb.Key(key); ok {
			t.Fatalf("key %q should not map to a window", key)
		}
	}
}

func TestFilterBarViewListsEveryWindow(t *testing.T) {
	t.Parallel()
	view := components.NewFilterBar(domain.Window7).View()
	for _, label := range []string{"7 days", "30 days", "90 days", "All"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %q in %q", label, view)
		}
	}
}

func TestFilterBarReflectsEveryPresetWindow(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"7d", "30d", "90d", "all"} {
		w, err := domain.ParsePresetWindow(name)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		if got := components.NewFilterBar(w).Active(); got != w {
			t.Fatalf("bar highlights %v while the window is %v", got, w)
		}
	}
}
