// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
)

var (
	ErrBadEdge = errors.New(`trigger edge must be "rising" or "falling"`)
)

func NewBadEdgeError(name string) error {
	return fmt.Errorf("%w, got %q", ErrBadEdge, name)
}

func NewReadError(configPath string, err error) error {
	return fmt.Errorf("failed to read config file %q: %w", configPath, err)
}

func NewParseError(configPath string, err error) error {
	return fmt.Errorf("failed to parse config file %q: %w", configPath, err)
}
