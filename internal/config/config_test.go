package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	Load()
	if got := GetStarCount(); got != 400 {
		t.Errorf("default star count = %d, want 400", got)
	}
	if w, h := GetWindowSize(); w != 900 || h != 600 {
		t.Errorf("default window size = %dx%d, want 900x600", w, h)
	}
	if !GetVSync() {
		t.Error("vsync should default on")
	}
	if GetOverlayEnabled() {
		t.Error("overlay should default off")
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	Load()
	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative limit clamped to %d, want 0", got)
	}
	SetFPSLimit(100000)
	if got := GetFPSLimit(); got != 480 {
		t.Errorf("huge limit clamped to %d, want 480", got)
	}
	SetFPSLimit(120)
	if got := GetFPSLimit(); got != 120 {
		t.Errorf("limit = %d, want 120", got)
	}
}
