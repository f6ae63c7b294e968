package config

import (
	"encoding/json"
	"os"

	"github.com/HaPhanBaoMinh/ktoast/help"
)

// Config holds every tunable the animation uses. It is built once at
// startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	// Feed
	FeedURL      string  `json:"feedUrl"`
	FallbackFile string  `json:"fallbackFile"`
	PollSeconds  float64 `json:"pollSeconds"`

	// Sizing
	MaxCPUToast float64 `json:"maxCpuToast"` // millicores mapped to a fully browned toast
	MinSize     int     `json:"minSize"`     // sprite size in rows
	MaxSize     int     `json:"maxSize"`

	// Flight
	DurationMin float64 `json:"durationMin"` // seconds per leg
	DurationMax float64 `json:"durationMax"`
	FrameRate   int     `json:"frameRate"`

	// Stagger, seconds per list index
	PodStagger  float64 `json:"podStagger"`
	NodeStagger float64 `json:"nodeStagger"`

	// Easter eggs, each "1 in N legs"; 0 disables
	ZoomiesFrequency float64 `json:"zoomiesFrequency"`
	CopsFrequency    float64 `json:"copsFrequency"`
	CopsEnabled      bool    `json:"copsEnabled"`
	ButterChance     float64 `json:"butterChance"`
	ButterMaxSlices  int     `json:"butterMaxSlices"`
	SirenCount       int     `json:"sirenCount"`

	// Seasonal theming
	Theme            string   `json:"theme"` // "" = off
	SpecialFrequency float64  `json:"specialFrequency"`
	ThemedVariants   []string `json:"themedVariants"`
}

// Default returns the built-in parameter table. A config file overrides
// individual keys; everything else keeps these values.
func Default() *Config {
	return &Config{
		FallbackFile:     "metrics.json",
		PollSeconds:      30,
		MaxCPUToast:      500,
		MinSize:          3,
		MaxSize:          8,
		DurationMin:      20,
		DurationMax:      60,
		FrameRate:        30,
		PodStagger:       1.5,
		NodeStagger:      5,
		ZoomiesFrequency: 10,
		CopsFrequency:    5,
		CopsEnabled:      true,
		ButterChance:     8,
		ButterMaxSlices:  4,
		SirenCount:       3,
		SpecialFrequency: 0.1,
		ThemedVariants:   []string{"gingerbread", "candycane", "snowman"},
	}
}

// Load reads a JSON overrides file on top of the defaults. A missing or
// malformed file leaves the defaults in effect, per the degrade-only
// error policy.
func Load(path string) *Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	b, err := os.ReadFile(path)
	if err != nil {
		help.Dbg("config: %s not readable, using defaults: %v", path, err)
		return cfg
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		help.Dbg("config: %s not valid JSON, using defaults: %v", path, err)
		return Default()
	}
	return cfg
}

// Themed reports whether seasonal variant selection is active.
func (c *Config) Themed() bool {
	return c.Theme != "" && len(c.ThemedVariants) > 0
}
