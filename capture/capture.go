// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"encoding/binary"
	"math"
	"strings"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/ik5/goscope/utils"
)

// Sink receives mono samples from the audio callback context. It must
// not block. The slice is reused between calls, so implementations
// must copy what they keep.
type Sink interface {
	OnSamples(buf []float32, sampleRate uint32)
}

// Config selects the capture device and stream shape. Zero values
// pick the defaults.
type Config struct {
	// SampleRate in Hz. Default 48000.
	SampleRate uint32

	// Channels requested from the device; anything above one is mixed
	// down to mono before reaching the sink. Default 1.
	Channels uint32

	// Device is a case-insensitive substring of the device name.
	// Empty selects the system default capture device.
	Device string
}

func (c Config) withDefaults() Config {
	if c.SampleRate == 0 {
		c.SampleRate = 48000
	}
	if c.Channels == 0 {
		c.Channels = 1
	}
	return c
}

// Session is a running or stopped capture stream bound to one Sink.
type Session struct {
	cfg  Config
	sink Sink

	ctx    *malgo.AllocatedContext
	device *malgo.Device
	devID  malgo.DeviceID

	// Callback scratch, touched only from the audio callback context.
	frames []float32
	mono   []float32

	mu      sync.Mutex
	started bool
	closed  bool
}

// Open initializes the audio backend and the capture device without
// starting the stream. The caller owns the session and must Close it.
func Open(cfg Config, sink Sink) (*Session, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	cfg = cfg.withDefaults()

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg, sink: sink, ctx: ctx}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = cfg.Channels
	deviceConfig.SampleRate = cfg.SampleRate
	deviceConfig.Alsa.NoMMap = 1

	if cfg.Device != "" {
		err = s.resolveDevice(cfg.Device)
		if err != nil {
			s.teardownContext()
			return nil, err
		}
		deviceConfig.Capture.DeviceID = s.devID.Pointer()
	}

	callbacks := malgo.DeviceCallbacks{
		Data: s.onRecv,
		Stop: s.onStop,
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		s.teardownContext()
		return nil, err
	}
	s.device = device

	return s, nil
}

// Start begins delivering samples to the sink.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	err := s.device.Start()
	if err != nil {
		return err
	}
	s.started = true

	return nil
}

// Stop pauses the stream. The session can be started again.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if !s.started {
		return ErrNotStarted
	}

	err := s.device.Stop()
	if err != nil {
		return err
	}
	s.started = false

	return nil
}

// Close stops the stream and releases the device and backend context.
// Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.started = false

	if s.device != nil {
		s.device.Uninit()
		s.device = nil
	}
	s.teardownContext()

	return nil
}

// SampleRate reports the configured stream rate in Hz.
func (s *Session) SampleRate() uint32 { return s.cfg.SampleRate }

// onRecv runs on the miniaudio callback thread. It decodes the F32
// frames, mixes them down to mono and forwards them to the sink.
func (s *Session) onRecv(_, input []byte, frameCount uint32) {
	channels := int(s.cfg.Channels)
	want := int(frameCount) * channels
	if want == 0 || len(input) < want*4 {
		return
	}

	if cap(s.frames) < want {
		s.frames = make([]float32, want)
		s.mono = make([]float32, int(frameCount))
	}
	frames := s.frames[:want]
	for i := range frames {
		bits := binary.LittleEndian.Uint32(input[i*4:])
		frames[i] = math.Float32frombits(bits)
	}

	if channels <= 1 {
		s.sink.OnSamples(frames, s.cfg.SampleRate)
		return
	}

	mono := s.mono[:int(frameCount)]
	n := utils.MixMono(mono, frames, channels)
	s.sink.OnSamples(mono[:n], s.cfg.SampleRate)
}

// onStop fires when the backend halts the stream on its own, e.g. the
// device was unplugged. The session stays valid; the scope keeps
// publishing from whatever was captured.
func (s *Session) onStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Running reports whether the stream is currently delivering samples.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *Session) resolveDevice(name string) error {
	infos, err := s.ctx.Devices(malgo.Capture)
	if err != nil {
		return err
	}

	needle := strings.ToLower(name)
	for _, info := range infos {
		if strings.Contains(strings.ToLower(info.Name()), needle) {
			s.devID = info.ID
			return nil
		}
	}

	return NewNoSuchDeviceError(name)
}

func (s *Session) teardownContext() {
	if s.ctx == nil {
		return
	}
	_ = s.ctx.Uninit()
	s.ctx.Free()
	s.ctx = nil
}

// Devices lists the names of the available capture devices.
func Devices() ([]string, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names, nil
}
