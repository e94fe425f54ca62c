package capture

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
)

// MicSource captures mono 16-bit PCM from the default input device via
// miniaudio.
type MicSource struct {
	mu         sync.Mutex
	sampleRate int
	ctx        *malgo.AllocatedContext
	device     *malgo.Device
}

func NewMicSource(sampleRate int) *MicSource {
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	return &MicSource{sampleRate: sampleRate}
}

func (m *MicSource) SampleRate() int { return m.sampleRate }
func (m *MicSource) Channels() int   { return 1 }

func (m *MicSource) Start(onChunk func([]byte)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device != nil {
		return ErrBusy
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("capture: init audio context: %w", err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = 1
	cfg.SampleRate = uint32(m.sampleRate)
	cfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			chunk := make([]byte, len(input))
			copy(chunk, input)
			onChunk(chunk)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("capture: open input device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("capture: start input device: %w", err)
	}

	m.ctx = ctx
	m.device = device
	return nil
}

func (m *MicSource) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device == nil {
		return nil
	}
	m.device.Uninit()
	m.device = nil
	err := m.ctx.Uninit()
	m.ctx.Free()
	m.ctx = nil
	return err
}
