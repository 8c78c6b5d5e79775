// Package config loads refreshdemo scenario files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the newest scenario format this build understands.
const SupportedVersion = "v1.1.0"

// Scenario describes a scroll container, the behaviors attached to it and
// the gestures replayed against it.
type Scenario struct {
	Version       string          `yaml:"version,omitempty"`
	Name          string          `yaml:"name,omitempty"`
	Viewport      Size            `yaml:"viewport"`
	ContentHeight float64         `yaml:"content_height"`
	Inset         Insets          `yaml:"inset"`
	SafeAreaTop   float64         `yaml:"safe_area_top,omitempty"`
	PullToRefresh *RefreshConfig  `yaml:"pull_to_refresh,omitempty"`
	LoadMore      *LoadMoreConfig `yaml:"load_more,omitempty"`
	Log           LogConfig       `yaml:"log"`
	Steps         []Step          `yaml:"steps"`
}

// Size is a width/height pair in points.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Insets holds the container's initial content inset.
type Insets struct {
	Top    float64 `yaml:"top,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
}

// RefreshConfig enables pull-to-refresh.
type RefreshConfig struct {
	Height   float64       `yaml:"height,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	// Boundary is "idle" (default) or "pulling".
	Boundary string `yaml:"boundary,omitempty"`
	// Indicator is "spinner" (default) or "text".
	Indicator string `yaml:"indicator,omitempty"`
}

// LoadMoreConfig enables load-more.
type LoadMoreConfig struct {
	Height  float64 `yaml:"height,omitempty"`
	Enabled *bool   `yaml:"enabled,omitempty"`
}

// IsEnabled reports the initial enabled flag, defaulting to true.
func (c *LoadMoreConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// Step is one scripted action. Exactly one field must be set.
type Step struct {
	Drag           []float64     `yaml:"drag,omitempty"`
	Release        bool          `yaml:"release,omitempty"`
	Scroll         []float64     `yaml:"scroll,omitempty"`
	Pump           time.Duration `yaml:"pump,omitempty"`
	Settle         bool          `yaml:"settle,omitempty"`
	StartRefresh   bool          `yaml:"start_refresh,omitempty"`
	StopRefresh    bool          `yaml:"stop_refresh,omitempty"`
	StartLoadMore  bool          `yaml:"start_load_more,omitempty"`
	StopLoadMore   bool          `yaml:"stop_load_more,omitempty"`
	ContentHeight  float64       `yaml:"content_height,omitempty"`
	EnableLoadMore *bool         `yaml:"enable_load_more,omitempty"`
}

// Kind names the action a step performs, or "" when none or several are set.
func (s Step) Kind() string {
	var kinds []string
	add := func(set bool, name string) {
		if set {
			kinds = append(kinds, name)
		}
	}
	add(len(s.Drag) > 0, "drag")
	add(s.Release, "release")
	add(len(s.Scroll) > 0, "scroll")
	add(s.Pump > 0, "pump")
	add(s.Settle, "settle")
	add(s.StartRefresh, "start_refresh")
	add(s.StopRefresh, "stop_refresh")
	add(s.StartLoadMore, "start_load_more")
	add(s.StopLoadMore, "stop_load_more")
	add(s.ContentHeight > 0, "content_height")
	add(s.EnableLoadMore != nil, "enable_load_more")
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("scenario %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario, fills in defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	s.Version = strings.TrimSpace(s.Version)
	if s.Version == "" {
		s.Version = "v1"
	}
	if s.Viewport.Width <= 0 {
		s.Viewport.Width = 320
	}
	if s.Viewport.Height <= 0 {
		s.Viewport.Height = 568
	}
	if s.ContentHeight <= 0 {
		s.ContentHeight = 1000
	}
	if s.PullToRefresh != nil {
		if s.PullToRefresh.Boundary == "" {
			s.PullToRefresh.Boundary = "idle"
		}
		if s.PullToRefresh.Indicator == "" {
			s.PullToRefresh.Indicator = "spinner"
		}
	}
}

// Validate checks the scenario for unsupported versions and malformed steps.
func (s *Scenario) Validate() error {
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("invalid scenario version %q (want e.g. v1 or v1.1.0)", s.Version)
	}
	if semver.Major(s.Version) != semver.Major(SupportedVersion) || semver.Compare(s.Version, SupportedVersion) > 0 {
		return fmt.Errorf("scenario version %s is not supported (newest supported: %s)", s.Version, SupportedVersion)
	}
	if s.PullToRefresh == nil && s.LoadMore == nil {
		return fmt.Errorf("scenario enables neither pull_to_refresh nor load_more")
	}
	if p := s.PullToRefresh; p != nil {
		if p.Height < 0 || p.Duration < 0 {
			return fmt.Errorf("pull_to_refresh: height and duration must not be negative")
		}
		switch p.Boundary {
		case "idle", "pulling":
		default:
			return fmt.Errorf("pull_to_refresh: unknown boundary %q (use idle or pulling)", p.Boundary)
		}
		switch p.Indicator {
		case "spinner", "text":
		default:
			return fmt.Errorf("pull_to_refresh: unknown indicator %q (use spinner or text)", p.Indicator)
		}
	}
	if s.LoadMore != nil && s.LoadMore.Height < 0 {
		return fmt.Errorf("load_more: height must not be negative")
	}
	for i, step := range s.Steps {
		if step.Kind() == "" {
			return fmt.Errorf("step %d: exactly one action must be set", i+1)
		}
	}
	return nil
}
