package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fenrel/daygrid/internal/gesture"
)

type TimingConfig struct {
	StillnessMs     int `mapstructure:"stillness_ms"`
	HoldMs          int `mapstructure:"hold_ms"`
	ScrollCancelPx  int `mapstructure:"scroll_cancel_px"`
	DragThresholdPx int `mapstructure:"drag_threshold_px"`
}

type GhostConfig struct {
	TapMs           int `mapstructure:"tap_ms"`
	ScrollCancelPx  int `mapstructure:"scroll_cancel_px"`
	DragThresholdPx int `mapstructure:"drag_threshold_px"`
}

type GestureConfig struct {
	Modality string       `mapstructure:"modality"` // precise | coarse
	Create   TimingConfig `mapstructure:"create"`
	Adjust   TimingConfig `mapstructure:"adjust"`
	Ghost    GhostConfig  `mapstructure:"ghost"`
}

type GridConfig struct {
	CellHeightPx int `mapstructure:"cell_height_px"` // one terminal row in virtual pixels
	RowsPerHour  int `mapstructure:"rows_per_hour"`
	SnapMinutes  int `mapstructure:"snap_minutes"`
}

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "17:30"
	Workdays []string `mapstructure:"workdays"` // ["Mon",...]
	Timezone string   `mapstructure:"timezone"` // optional IANA name
}

type Config struct {
	Theme    string         `mapstructure:"theme"`
	LogLevel string         `mapstructure:"log_level"`
	Grid     GridConfig     `mapstructure:"grid"`
	Gestures GestureConfig  `mapstructure:"gestures"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	g := gesture.DefaultConfig()
	return Config{
		Theme:    "default",
		LogLevel: "info",
		Grid: GridConfig{
			CellHeightPx: 16,
			RowsPerHour:  2,
			SnapMinutes:  15,
		},
		Gestures: GestureConfig{
			Modality: "precise",
			Create: TimingConfig{
				StillnessMs:     int(g.Create.Stillness / time.Millisecond),
				HoldMs:          int(g.Create.Hold / time.Millisecond),
				ScrollCancelPx:  g.Create.ScrollCancelPx,
				DragThresholdPx: g.Create.DragThresholdPx,
			},
			Adjust: TimingConfig{
				StillnessMs:     int(g.Adjust.Stillness / time.Millisecond),
				HoldMs:          int(g.Adjust.Hold / time.Millisecond),
				ScrollCancelPx:  g.Adjust.ScrollCancelPx,
				DragThresholdPx: g.Adjust.DragThresholdPx,
			},
			Ghost: GhostConfig{
				TapMs:           int(g.Ghost.Tap / time.Millisecond),
				ScrollCancelPx:  g.Ghost.ScrollCancelPx,
				DragThresholdPx: g.Ghost.DragThresholdPx,
			},
		},
		Reminder: ReminderConfig{
			Enabled:  true,
			Time:     "17:30",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		},
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "daygrid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	setDefaults(v, cfg)

	_ = v.ReadInConfig() // a missing file just means defaults
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	for i, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) >= 3 {
			cfg.Reminder.Workdays[i] = strings.Title(strings.ToLower(d[:3]))
		}
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("grid.cell_height_px", cfg.Grid.CellHeightPx)
	v.SetDefault("grid.rows_per_hour", cfg.Grid.RowsPerHour)
	v.SetDefault("grid.snap_minutes", cfg.Grid.SnapMinutes)
	v.SetDefault("gestures.modality", cfg.Gestures.Modality)
	v.SetDefault("gestures.create.stillness_ms", cfg.Gestures.Create.StillnessMs)
	v.SetDefault("gestures.create.hold_ms", cfg.Gestures.Create.HoldMs)
	v.SetDefault("gestures.create.scroll_cancel_px", cfg.Gestures.Create.ScrollCancelPx)
	v.SetDefault("gestures.create.drag_threshold_px", cfg.Gestures.Create.DragThresholdPx)
	v.SetDefault("gestures.adjust.stillness_ms", cfg.Gestures.Adjust.StillnessMs)
	v.SetDefault("gestures.adjust.hold_ms", cfg.Gestures.Adjust.HoldMs)
	v.SetDefault("gestures.adjust.scroll_cancel_px", cfg.Gestures.Adjust.ScrollCancelPx)
	v.SetDefault("gestures.adjust.drag_threshold_px", cfg.Gestures.Adjust.DragThresholdPx)
	v.SetDefault("gestures.ghost.tap_ms", cfg.Gestures.Ghost.TapMs)
	v.SetDefault("gestures.ghost.scroll_cancel_px", cfg.Gestures.Ghost.ScrollCancelPx)
	v.SetDefault("gestures.ghost.drag_threshold_px", cfg.Gestures.Ghost.DragThresholdPx)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)
}

// EngineConfig translates the file-level settings into the gesture
// engine's config. Non-positive values fall back to engine defaults, so
// a partially written config file cannot zero out a timer.
func (c Config) EngineConfig() gesture.Config {
	g := gesture.DefaultConfig()
	if strings.EqualFold(c.Gestures.Modality, "coarse") {
		g.Modality = gesture.ModalityCoarse
	}
	applyTimings(&g.Create, c.Gestures.Create)
	applyTimings(&g.Adjust, c.Gestures.Adjust)
	if c.Gestures.Ghost.TapMs > 0 {
		g.Ghost.Tap = time.Duration(c.Gestures.Ghost.TapMs) * time.Millisecond
	}
	if c.Gestures.Ghost.ScrollCancelPx > 0 {
		g.Ghost.ScrollCancelPx = c.Gestures.Ghost.ScrollCancelPx
	}
	if c.Gestures.Ghost.DragThresholdPx > 0 {
		g.Ghost.DragThresholdPx = c.Gestures.Ghost.DragThresholdPx
	}
	return g
}

func applyTimings(dst *gesture.Timings, src TimingConfig) {
	if src.StillnessMs > 0 {
		dst.Stillness = time.Duration(src.StillnessMs) * time.Millisecond
	}
	if src.HoldMs > 0 {
		dst.Hold = time.Duration(src.HoldMs) * time.Millisecond
	}
	if src.ScrollCancelPx > 0 {
		dst.ScrollCancelPx = src.ScrollCancelPx
	}
	if src.DragThresholdPx > 0 {
		dst.DragThresholdPx = src.DragThresholdPx
	}
}

// Location resolves the reminder timezone, defaulting to local time.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
