// Package config reads environment settings and the optional planner
// defaults file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// File is the optional YAML configuration carrying data paths and default
// planning parameters. Zero fields fall back to built-in defaults.
type File struct {
	Port       string `yaml:"port"`
	DBPath     string `yaml:"db_path"`
	CoursePath string `yaml:"course_path"`
	StopsPath  string `yaml:"stops_path"`

	Defaults Defaults `yaml:"defaults"`
}

type Defaults struct {
	MarathonHours   int     `yaml:"marathon_hours"`
	MarathonMinutes int     `yaml:"marathon_minutes"`
	PaceMinutes     int     `yaml:"pace_minutes"`
	PaceSeconds     int     `yaml:"pace_seconds"`
	TimePerStop     int     `yaml:"time_per_stop_minutes"`
	MinStops        int     `yaml:"min_stops"`
	MaxStops        int     `yaml:"max_stops"`
	MaxGapKm        float64 `yaml:"max_gap_km"`
}

// LoadFile parses the config file at path. A missing file is not an error;
// built-in defaults apply.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("load config: parse %q: %w", path, err)
	}
	return &f, nil
}

// Params merges the file's defaults over the built-in planning defaults and
// validates the result, so a bad config file fails at startup.
func (f *File) Params() (domain.PlanningParams, error) {
	p := domain.DefaultPlanningParams()
	d := f.Defaults

	if d.MarathonHours != 0 {
		p.GoalHours = d.MarathonHours
		p.GoalMinutes = d.MarathonMinutes
	}
	if d.PaceMinutes != 0 {
		p.PaceMinutes = d.PaceMinutes
		p.PaceSeconds = d.PaceSeconds
	}
	if d.TimePerStop != 0 {
		p.DwellMinutes = d.TimePerStop
	}
	if d.MinStops != 0 {
		p.MinStops = d.MinStops
	}
	if d.MaxStops != 0 {
		p.MaxStops = d.MaxStops
	}
	if d.MaxGapKm != 0 {
		p.MaxGapKm = d.MaxGapKm
	}

	if err := p.Validate(); err != nil {
		return domain.PlanningParams{}, fmt.Errorf("config defaults: %w", err)
	}
	return p, nil
}
