// SPDX-License-Identifier: EPL-2.0

// Package config loads the scope's YAML configuration file.
//
// Every field has a sensible default, so an empty file (or no file at
// all, via Default) yields a working instrument. Out-of-range values
// are clamped during validation rather than rejected: configuration
// mirrors the front panel, where every knob position is legal.
//
//	capture:
//	  sample_rate: 48000
//	  device: ""          # empty selects the default input device
//	channel_capacity: 8192
//	history_len: 0        # samples; 0 sizes for the widest window
//	display:
//	  divisions_h: 10
//	  divisions_v: 8
//	  max_points: 4096
//	  time_per_div: 1ms
//	  volts_per_div: 0.5
//	trigger:
//	  enabled: true
//	  edge: rising
//	  level: 0.0
//	  holdoff_samples: 1024
package config
