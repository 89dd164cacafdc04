package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Settings come from viper defaults overridden by NIGHTSKY_* env vars,
// e.g. NIGHTSKY_STARS_COUNT=800. Load must run before any getter.

// RenderSettings holds the runtime-mutable render configuration
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalRenderSettings = &RenderSettings{}

// Load installs defaults and binds the environment
func Load() {
	viper.SetEnvPrefix("NIGHTSKY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("stars.count", 400)
	viper.SetDefault("stars.seed", 0)

	viper.SetDefault("window.title", "nightsky")
	viper.SetDefault("window.width", 900)
	viper.SetDefault("window.height", 600)

	viper.SetDefault("render.vsync", true)
	viper.SetDefault("render.fpsLimit", 60)

	viper.SetDefault("overlay.enabled", false)
	viper.SetDefault("overlay.fontPath", "assets/fonts/OpenSans-Regular.ttf")

	viper.SetDefault("logLevel", "info")

	globalRenderSettings.mu.Lock()
	globalRenderSettings.fpsLimit = viper.GetInt("render.fpsLimit")
	globalRenderSettings.mu.Unlock()
}

// GetStarCount returns the initial star count, clamped to non-negative
func GetStarCount() int {
	n := viper.GetInt("stars.count")
	if n < 0 {
		n = 0
	}
	return n
}

// GetSeed returns the RNG seed; zero means time-seeded
func GetSeed() int64 {
	return viper.GetInt64("stars.seed")
}

// GetWindowTitle returns the surface identifier
func GetWindowTitle() string {
	return viper.GetString("window.title")
}

// GetWindowSize returns the initial window size in screen coordinates
func GetWindowSize() (int, int) {
	w := viper.GetInt("window.width")
	h := viper.GetInt("window.height")
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// GetVSync reports whether the loop syncs to the display refresh
func GetVSync() bool {
	return viper.GetBool("render.vsync")
}

// GetFPSLimit returns the CPU frame cap used when vsync is off.
// Zero or negative disables limiting.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the CPU frame cap, clamped to a sane range
func SetFPSLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}
	globalRenderSettings.mu.Lock()
	globalRenderSettings.fpsLimit = limit
	globalRenderSettings.mu.Unlock()
}

// GetOverlayEnabled reports whether the debug overlay is drawn
func GetOverlayEnabled() bool {
	return viper.GetBool("overlay.enabled")
}

// GetOverlayFontPath returns the TTF path baked into the overlay atlas
func GetOverlayFontPath() string {
	return viper.GetString("overlay.fontPath")
}

// GetLogLevel returns the zerolog level name
func GetLogLevel() string {
	return viper.GetString("logLevel")
}
