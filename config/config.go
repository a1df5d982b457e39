// SPDX-License-Identifier: EPL-2.0

package config

import (
	"strings"
	"time"

	"github.com/ik5/goscope"
	"github.com/ik5/goscope/scale"
	"github.com/ik5/goscope/trigger"
)

// Capture selects the input device and its nominal sample rate.
type Capture struct {
	SampleRate uint32 `yaml:"sample_rate"`
	Device     string `yaml:"device"`
}

// Display holds the on-screen grid and rendering limits.
type Display struct {
	DivisionsH  int      `yaml:"divisions_h"`
	DivisionsV  int      `yaml:"divisions_v"`
	MaxPoints   int      `yaml:"max_points"`
	TimePerDiv  Duration `yaml:"time_per_div"`
	VoltsPerDiv float64  `yaml:"volts_per_div"`
}

// Trigger mirrors trigger.Settings with a textual edge.
type Trigger struct {
	Enabled        bool    `yaml:"enabled"`
	Edge           string  `yaml:"edge"`
	Level          float64 `yaml:"level"`
	HoldoffSamples int     `yaml:"holdoff_samples"`
}

// Config is the full file shape. Zero or missing fields fall back to
// the defaults during Validate.
type Config struct {
	Capture         Capture `yaml:"capture"`
	ChannelCapacity int     `yaml:"channel_capacity"`
	HistoryLen      int     `yaml:"history_len"`
	Display         Display `yaml:"display"`
	Trigger         Trigger `yaml:"trigger"`
}

// Default returns a configuration equivalent to goscope.DefaultOptions.
func Default() *Config {
	sc := scale.Default()
	tr := trigger.DefaultSettings()

	return &Config{
		Capture: Capture{
			SampleRate: goscope.DefaultSampleRate,
		},
		ChannelCapacity: 0,
		Display: Display{
			DivisionsH:  sc.DivisionsH,
			DivisionsV:  sc.DivisionsV,
			MaxPoints:   0,
			TimePerDiv:  Duration(sc.TimePerDiv),
			VoltsPerDiv: sc.VoltsPerDiv,
		},
		Trigger: Trigger{
			Enabled:        tr.Enabled,
			Edge:           edgeName(tr.Edge),
			Level:          tr.Level,
			HoldoffSamples: trigger.DefaultHoldoff,
		},
	}
}

// Validate fills missing values with defaults and clamps out-of-range
// ones instead of rejecting them. Only an unknown trigger edge is an
// error.
func (c *Config) Validate() error {
	if c.Capture.SampleRate == 0 {
		c.Capture.SampleRate = goscope.DefaultSampleRate
	}
	if c.Display.DivisionsH <= 0 {
		c.Display.DivisionsH = scale.DefaultDivisionsH
	}
	if c.Display.DivisionsV <= 0 {
		c.Display.DivisionsV = scale.DefaultDivisionsV
	}
	if c.Display.TimePerDiv <= 0 {
		c.Display.TimePerDiv = Duration(scale.Default().TimePerDiv)
	}
	if c.Display.VoltsPerDiv <= 0 {
		c.Display.VoltsPerDiv = scale.Default().VoltsPerDiv
	}
	if c.Trigger.Edge == "" {
		c.Trigger.Edge = edgeName(trigger.Rising)
	}
	if _, err := parseEdge(c.Trigger.Edge); err != nil {
		return err
	}
	if c.Trigger.HoldoffSamples <= 0 {
		c.Trigger.HoldoffSamples = trigger.DefaultHoldoff
	}

	sc := scale.Settings{
		TimePerDiv:  time.Duration(c.Display.TimePerDiv),
		VoltsPerDiv: c.Display.VoltsPerDiv,
		DivisionsH:  c.Display.DivisionsH,
		DivisionsV:  c.Display.DivisionsV,
	}
	sc = sc.Clamp()
	c.Display.TimePerDiv = Duration(sc.TimePerDiv)
	c.Display.VoltsPerDiv = sc.VoltsPerDiv

	return nil
}

// Options maps the validated configuration onto scope options.
func (c *Config) Options() (goscope.Options, error) {
	edge, err := parseEdge(c.Trigger.Edge)
	if err != nil {
		return goscope.Options{}, err
	}

	opts := goscope.DefaultOptions()
	opts.SampleRate = int(c.Capture.SampleRate)
	opts.ChannelCapacity = c.ChannelCapacity
	opts.HistoryLen = c.HistoryLen
	opts.MaxPoints = c.Display.MaxPoints
	opts.HoldoffSamples = c.Trigger.HoldoffSamples
	opts.Scale = scale.Settings{
		TimePerDiv:  time.Duration(c.Display.TimePerDiv),
		VoltsPerDiv: c.Display.VoltsPerDiv,
		DivisionsH:  c.Display.DivisionsH,
		DivisionsV:  c.Display.DivisionsV,
	}.Clamp()
	opts.Trigger = trigger.Settings{
		Enabled: c.Trigger.Enabled,
		Edge:    edge,
		Level:   c.Trigger.Level,
	}.Clamped()

	return opts, nil
}

func parseEdge(name string) (trigger.Edge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rising":
		return trigger.Rising, nil
	case "falling":
		return trigger.Falling, nil
	}

	return trigger.Rising, NewBadEdgeError(name)
}

func edgeName(e trigger.Edge) string {
	if e == trigger.Falling {
		return "falling"
	}

	return "rising"
}
