// ABOUTME: Oto-based playback device implementation
// ABOUTME: Voices are oto players over looping in-memory PCM readers
package device

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/resample"
)

// Oto is a playback device backed by ebitengine/oto. The process gets a
// single oto context at a fixed sample rate and channel count; clips at
// other rates or layouts are converted when their buffer is created.
type Oto struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
	closed     bool
}

// NewOto opens an oto-backed device. oto allows one context per process;
// opening a second Oto device without closing the first fails at the oto
// layer.
func NewOto(sampleRate, channels int) (*Oto, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	log.Printf("Audio device initialized: %dHz, %d channels", sampleRate, channels)

	return &Oto{
		ctx:        ctx,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// NewBuffer converts the clip to the device's native layout and keeps the
// byte-encoded PCM resident for voices to read.
func (d *Oto) NewBuffer(pcm *audio.PCM) (Buffer, error) {
	if d.closed {
		return nil, fmt.Errorf("device is closed")
	}

	samples := resample.Clip(pcm.Samples, pcm.Channels, pcm.SampleRate, d.sampleRate)
	samples = convertChannels(samples, pcm.Channels, d.channels)

	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		data[2*i], data[2*i+1] = audio.SampleToBytes(s)
	}

	return &otoBuffer{device: d, data: data}, nil
}

// Close suspends the oto context. oto has no context teardown; suspending
// keeps the process quiet until a new device is opened.
func (d *Oto) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.ctx.Suspend()
}

type otoBuffer struct {
	device *Oto
	data   []byte
}

func (b *otoBuffer) NewVoice() (Voice, error) {
	if b.device.closed {
		return nil, ErrVoiceExhausted
	}

	src := &loopReader{data: b.data}
	player := b.device.ctx.NewPlayer(src)

	return &otoVoice{player: player, src: src, gain: 1.0}, nil
}

func (b *otoBuffer) Close() error {
	b.data = nil
	return nil
}

type otoVoice struct {
	player  *oto.Player
	src     *loopReader
	gain    float64
	paused  bool
	stopped bool
	started bool
	closed  bool
	posX    float64
	posY    float64
}

func (v *otoVoice) Play() {
	if v.closed {
		return
	}
	v.player.Play()
	v.started = true
	v.paused = false
	v.stopped = false
}

func (v *otoVoice) Pause() {
	if v.closed || !v.started {
		return
	}
	v.player.Pause()
	v.paused = true
}

func (v *otoVoice) Stop() {
	if v.closed {
		return
	}
	v.player.Pause()
	v.seekStart()
	v.stopped = true
	v.paused = false
}

func (v *otoVoice) Rewind() {
	if v.closed {
		return
	}
	v.player.Pause()
	v.seekStart()
	v.started = false
	v.paused = false
	v.stopped = false
}

func (v *otoVoice) seekStart() {
	if _, err := v.player.Seek(0, io.SeekStart); err != nil {
		log.Printf("Warning: voice seek failed: %v", err)
	}
}

func (v *otoVoice) SetGain(gain float64) {
	if v.closed {
		return
	}
	if gain < 0 {
		gain = 0
	} else if gain > 1 {
		gain = 1
	}
	v.gain = gain
	v.player.SetVolume(gain)
}

func (v *otoVoice) Gain() float64 { return v.gain }

func (v *otoVoice) SetLoop(loop bool) {
	if v.closed {
		return
	}
	v.src.setLoop(loop)
}

func (v *otoVoice) Loop() bool { return v.src.looping() }

func (v *otoVoice) SetPosition(x, y float64) {
	// Stored only; the oto backend does not spatialize.
	v.posX, v.posY = x, y
}

func (v *otoVoice) State() State {
	switch {
	case v.closed, v.stopped:
		return StateStopped
	case !v.started:
		return StateInitial
	case v.paused:
		return StatePaused
	case v.player.IsPlaying():
		return StatePlaying
	default:
		// Drained naturally.
		return StateStopped
	}
}

func (v *otoVoice) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	return v.player.Close()
}

// loopReader serves a resident PCM byte slice to an oto player,
// optionally wrapping around at the end. Loop state is guarded because
// oto reads from its own goroutine.
type loopReader struct {
	mu   sync.Mutex
	data []byte
	pos  int
	loop bool
}

func (r *loopReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pos >= len(r.data) {
		if !r.loop || len(r.data) == 0 {
			return 0, io.EOF
		}
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *loopReader) Seek(offset int64, whence int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(r.pos) + offset
	case io.SeekEnd:
		pos = int64(len(r.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position")
	}

	r.pos = int(pos)
	return pos, nil
}

func (r *loopReader) setLoop(loop bool) {
	r.mu.Lock()
	r.loop = loop
	r.mu.Unlock()
}

func (r *loopReader) looping() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loop
}

// convertChannels maps interleaved samples from src to dst channel
// counts. Mono is duplicated, extra channels are averaged down.
func convertChannels(samples []int16, src, dst int) []int16 {
	if src == dst || src == 0 || dst == 0 {
		return samples
	}

	frames := len(samples) / src
	out := make([]int16, 0, frames*dst)

	for f := 0; f < frames; f++ {
		frame := samples[f*src : (f+1)*src]
		if src == 1 {
			for c := 0; c < dst; c++ {
				out = append(out, frame[0])
			}
			continue
		}
		// Downmix by averaging, then spread across dst channels.
		var sum int
		for _, s := range frame {
			sum += int(s)
		}
		avg := int16(sum / src)
		for c := 0; c < dst; c++ {
			out = append(out, avg)
		}
	}

	return out
}
