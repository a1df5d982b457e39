// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"errors"
	"fmt"
)

var (
	ErrNilSink        = errors.New("capture sink must not be nil")
	ErrClosed         = errors.New("capture session is closed")
	ErrAlreadyStarted = errors.New("capture session already started")
	ErrNotStarted     = errors.New("capture session not started")
	ErrNoSuchDevice   = errors.New("no capture device matches the requested name")
)

func NewNoSuchDeviceError(name string) error {
	return fmt.Errorf("%w: %q", ErrNoSuchDevice, name)
}
