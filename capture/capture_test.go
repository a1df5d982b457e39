// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	require.Equal(t, uint32(48000), cfg.SampleRate)
	require.Equal(t, uint32(1), cfg.Channels)
	require.Empty(t, cfg.Device)

	cfg = Config{SampleRate: 44100, Channels: 2, Device: "usb"}.withDefaults()
	require.Equal(t, uint32(44100), cfg.SampleRate)
	require.Equal(t, uint32(2), cfg.Channels)
}

func TestOpenRejectsNilSink(t *testing.T) {
	sess, err := Open(Config{}, nil)
	require.Nil(t, sess)
	require.ErrorIs(t, err, ErrNilSink)
}

func TestNoSuchDeviceError(t *testing.T) {
	err := NewNoSuchDeviceError("USB Audio")
	require.ErrorIs(t, err, ErrNoSuchDevice)
	require.Contains(t, err.Error(), "USB Audio")
}
