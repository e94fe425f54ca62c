package capture

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

type fakeSource struct {
	onChunk  func([]byte)
	startErr error
	stopErr  error
	started  int
	stopped  int
}

func (f *fakeSource) Start(onChunk func([]byte)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.onChunk = onChunk
	f.started++
	return nil
}

func (f *fakeSource) Stop() error {
	f.stopped++
	return f.stopErr
}

func (f *fakeSource) SampleRate() int { return 16000 }
func (f *fakeSource) Channels() int   { return 1 }

func TestRecorderStateMachine(t *testing.T) {
	src := &fakeSource{}
	r := NewRecorder(src)

	if r.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", r.Phase())
	}

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if r.Phase() != PhaseRecording {
		t.Fatalf("phase = %s, want recording", r.Phase())
	}

	if err := r.Start(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Start = %v, want ErrBusy", err)
	}

	src.onChunk([]byte{1, 2})
	src.onChunk([]byte{3, 4})

	clip, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if r.Phase() != PhaseProcessing {
		t.Fatalf("phase = %s, want processing", r.Phase())
	}
	if clip.MimeType != "audio/wav" {
		t.Fatalf("mime = %q", clip.MimeType)
	}

	if err := r.Start(); !errors.Is(err, ErrBusy) {
		t.Fatalf("Start while processing = %v, want ErrBusy", err)
	}

	r.Finish()
	if r.Phase() != PhaseIdle {
		t.Fatalf("phase = %s after Finish, want idle", r.Phase())
	}
	if err := r.Start(); err != nil {
		t.Fatalf("Start after Finish: %v", err)
	}
}

func TestRecorderStopWithoutRecording(t *testing.T) {
	r := NewRecorder(&fakeSource{})
	if _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Fatalf("Stop from idle = %v, want ErrNotRecording", err)
	}
}

func TestRecorderStartErrorRevertsToIdle(t *testing.T) {
	src := &fakeSource{startErr: errors.New("no mic")}
	r := NewRecorder(src)

	if err := r.Start(); err == nil {
		t.Fatalf("expected source error")
	}
	if r.Phase() != PhaseIdle {
		t.Fatalf("phase = %s after failed start, want idle", r.Phase())
	}
}

func TestRecorderStopErrorRevertsToIdle(t *testing.T) {
	src := &fakeSource{stopErr: errors.New("device lost")}
	r := NewRecorder(src)
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := r.Stop(); err == nil {
		t.Fatalf("expected stop error")
	}
	if r.Phase() != PhaseIdle {
		t.Fatalf("phase = %s after failed stop, want idle", r.Phase())
	}
}

func TestRecorderIgnoresChunksAfterStop(t *testing.T) {
	src := &fakeSource{}
	r := NewRecorder(src)
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	src.onChunk([]byte{1, 2, 3, 4})

	clip, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	src.onChunk([]byte{9, 9})

	if len(clip.Audio) != 44+4 {
		t.Fatalf("clip size = %d, want header plus 4 pcm bytes", len(clip.Audio))
	}
}

func TestRecorderElapsed(t *testing.T) {
	src := &fakeSource{}
	r := NewRecorder(src)

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	current := base
	r.now = func() time.Time { return current }

	if r.Elapsed() != 0 {
		t.Fatalf("idle elapsed = %v, want 0", r.Elapsed())
	}

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	current = base.Add(3 * time.Second)
	if r.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v, want 3s", r.Elapsed())
	}

	clip, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if clip.Duration != 3*time.Second {
		t.Fatalf("duration = %v, want 3s", clip.Duration)
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6}
	wav := EncodeWAV(pcm, 16000, 1)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("len = %d, want %d", len(wav), 44+len(pcm))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Fatalf("bad riff header: %q %q", wav[0:4], wav[8:12])
	}
	if string(wav[12:16]) != "fmt " || string(wav[36:40]) != "data" {
		t.Fatalf("bad chunk markers: %q %q", wav[12:16], wav[36:40])
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != 16000 {
		t.Fatalf("sample rate = %d", got)
	}
	if got := binary.LittleEndian.Uint16(wav[22:24]); got != 1 {
		t.Fatalf("channels = %d", got)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != uint32(len(pcm)) {
		t.Fatalf("data size = %d, want %d", got, len(pcm))
	}
	if got := binary.LittleEndian.Uint32(wav[4:8]); got != uint32(36+len(pcm)) {
		t.Fatalf("riff size = %d, want %d", got, 36+len(pcm))
	}
}
