// SPDX-License-Identifier: EPL-2.0

package channel

import "errors"

var (
	// ErrOverrun reports that a Push displaced the oldest unread sample.
	// It is informational: the pushed sample was stored and the producer
	// does not need to act on it.
	ErrOverrun = errors.New("channel overrun: oldest sample dropped")
)
