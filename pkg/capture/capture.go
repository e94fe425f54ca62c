// Package capture wraps microphone access behind an explicit
// Idle → Recording → Processing state machine so overlapping
// record/classify cycles are unrepresentable.
package capture

import (
	"errors"
	"sync"
	"time"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRecording
	PhaseProcessing
)

func (p Phase) String() string {
	switch p {
	case PhaseRecording:
		return "recording"
	case PhaseProcessing:
		return "processing"
	default:
		return "idle"
	}
}

var (
	// ErrBusy means a clip is already recording or being classified.
	ErrBusy = errors.New("capture: busy")
	// ErrNotRecording means Stop was called outside a recording.
	ErrNotRecording = errors.New("capture: not recording")
)

// Source delivers raw PCM chunks from an audio input.
type Source interface {
	// Start acquires the input and begins delivering chunks to onChunk.
	Start(onChunk func([]byte)) error
	// Stop releases the input. No chunks are delivered after Stop returns.
	Stop() error
	SampleRate() int
	Channels() int
}

// Clip is one assembled recording ready for classification.
type Clip struct {
	Audio    []byte
	MimeType string
	Duration time.Duration
}

// Recorder buffers chunks from a Source and assembles them into a Clip.
type Recorder struct {
	mu      sync.Mutex
	source  Source
	phase   Phase
	chunks  [][]byte
	started time.Time
	now     func() time.Time
}

func NewRecorder(source Source) *Recorder {
	return &Recorder{source: source, now: time.Now}
}

func (r *Recorder) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Elapsed reports how long the current recording has been running.
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseRecording {
		return 0
	}
	return r.now().Sub(r.started)
}

// Start acquires the audio input and begins buffering. Only legal from Idle.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.phase != PhaseIdle {
		r.mu.Unlock()
		return ErrBusy
	}
	r.phase = PhaseRecording
	r.chunks = nil
	r.started = r.now()
	r.mu.Unlock()

	if err := r.source.Start(r.onChunk); err != nil {
		r.mu.Lock()
		r.phase = PhaseIdle
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *Recorder) onChunk(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	r.mu.Lock()
	if r.phase == PhaseRecording {
		r.chunks = append(r.chunks, chunk)
	}
	r.mu.Unlock()
}

// Stop ends the recording, releases the input and assembles the buffered
// chunks into one WAV clip. The recorder enters Processing: no new
// recording may start until Finish is called.
func (r *Recorder) Stop() (Clip, error) {
	r.mu.Lock()
	if r.phase != PhaseRecording {
		r.mu.Unlock()
		return Clip{}, ErrNotRecording
	}
	r.phase = PhaseProcessing
	chunks := r.chunks
	r.chunks = nil
	elapsed := r.now().Sub(r.started)
	r.mu.Unlock()

	if err := r.source.Stop(); err != nil {
		r.mu.Lock()
		r.phase = PhaseIdle
		r.mu.Unlock()
		return Clip{}, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	pcm := make([]byte, 0, total)
	for _, c := range chunks {
		pcm = append(pcm, c...)
	}

	return Clip{
		Audio:    EncodeWAV(pcm, r.source.SampleRate(), r.source.Channels()),
		MimeType: "audio/wav",
		Duration: elapsed,
	}, nil
}

// Finish returns the recorder to Idle once classification completed or
// failed.
func (r *Recorder) Finish() {
	r.mu.Lock()
	if r.phase == PhaseProcessing {
		r.phase = PhaseIdle
	}
	r.mu.Unlock()
}
