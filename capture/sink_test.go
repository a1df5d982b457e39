// SPDX-License-Identifier: EPL-2.0

package capture_test

import (
	"github.com/ik5/goscope"
	"github.com/ik5/goscope/capture"
)

// The scope's producer entry point is the canonical sink.
var _ capture.Sink = (*goscope.Scope)(nil)
