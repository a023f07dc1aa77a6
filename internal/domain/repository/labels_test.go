package repository

import "testing"

func TestNormalizeWindow(t *testing.T) {
	if got := NormalizeWindow(""); got != Window1Y {
		t.Fatalf("empty: got %s", got)
	}
	if got := NormalizeWindow("2Y"); got != Window2Y {
		t.Fatalf("2Y: got %s", got)
	}
	if got := NormalizeWindow("all"); got != Window1Y {
		t.Fatalf("'all' must not be requestable, got %s", got)
	}
	if got := NormalizeWindow("bogus"); got != Window1Y {
		t.Fatalf("bogus: got %s", got)
	}
}

func TestNormalizeMode(t *testing.T) {
	if got := NormalizeMode("band6m_pct"); got != ModeBand6MPct {
		t.Fatalf("got %s", got)
	}
	if got := NormalizeMode("nope"); got != ModeRaw {
		t.Fatalf("got %s", got)
	}
}

func TestNormalizePreset(t *testing.T) {
	if got := NormalizePreset("30D"); got != Preset30D {
		t.Fatalf("got %s", got)
	}
	if got := NormalizePreset(""); got != PresetMax {
		t.Fatalf("got %s", got)
	}
	if got := NormalizePreset("5Y"); got != PresetMax {
		t.Fatalf("got %s", got)
	}
}

func TestPresetsOrder(t *testing.T) {
	ps := Presets()
	if len(ps) != 6 {
		t.Fatalf("expected 6 presets, got %d", len(ps))
	}
	if ps[0] != Preset7D || ps[len(ps)-1] != PresetMax {
		t.Fatalf("unexpected order: %v", ps)
	}
}
