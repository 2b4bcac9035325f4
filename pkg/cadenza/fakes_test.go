// ABOUTME: In-memory fakes for the device and loader collaborators
// ABOUTME: Drive engine tests without hardware or audio files
package cadenza

import (
	"errors"
	"fmt"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/device"
)

// fakeLoader counts decode calls per path and can fail on demand.
type fakeLoader struct {
	decodes   map[string]int
	failPaths map[string]bool
	truncate  bool
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		decodes:   make(map[string]int),
		failPaths: make(map[string]bool),
	}
}

func (l *fakeLoader) load(path string) (*audio.PCM, error) {
	l.decodes[path]++
	if l.failPaths[path] {
		return nil, errors.New("decode failed")
	}

	pcm := &audio.PCM{
		Samples:    make([]int16, 200),
		Channels:   2,
		SampleRate: 48000,
	}
	if l.truncate {
		pcm.FramesExpected = 150
	}
	return pcm, nil
}

// fakeDevice satisfies device.Device with pure in-memory state.
type fakeDevice struct {
	buffers    []*fakeBuffer
	exhausted  bool // next NewVoice fails
	failBuffer bool // next NewBuffer fails
	closed     bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{}
}

func (d *fakeDevice) NewBuffer(pcm *audio.PCM) (device.Buffer, error) {
	if d.failBuffer {
		return nil, fmt.Errorf("buffer upload failed")
	}
	b := &fakeBuffer{dev: d}
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

type fakeBuffer struct {
	dev    *fakeDevice
	voices []*fakeVoice
	closed bool
}

func (b *fakeBuffer) NewVoice() (device.Voice, error) {
	if b.dev.exhausted {
		return nil, device.ErrVoiceExhausted
	}
	v := &fakeVoice{gain: 1.0}
	b.voices = append(b.voices, v)
	return v, nil
}

func (b *fakeBuffer) Close() error {
	b.closed = true
	return nil
}

type fakeVoice struct {
	state  device.State
	gain   float64
	loop   bool
	x, y   float64
	closed bool
}

func (v *fakeVoice) Play() {
	if v.closed {
		return
	}
	v.state = device.StatePlaying
}

func (v *fakeVoice) Pause() {
	if v.closed || v.state != device.StatePlaying {
		return
	}
	v.state = device.StatePaused
}

func (v *fakeVoice) Stop() {
	if v.closed {
		return
	}
	v.state = device.StateStopped
}

func (v *fakeVoice) Rewind() {
	if v.closed {
		return
	}
	v.state = device.StateInitial
}

func (v *fakeVoice) SetGain(g float64) {
	if v.closed {
		return
	}
	v.gain = g
}

func (v *fakeVoice) Gain() float64 { return v.gain }

func (v *fakeVoice) SetLoop(loop bool) {
	if v.closed {
		return
	}
	v.loop = loop
}

func (v *fakeVoice) Loop() bool { return v.loop }

func (v *fakeVoice) SetPosition(x, y float64) { v.x, v.y = x, y }

func (v *fakeVoice) State() device.State {
	if v.closed {
		return device.StateStopped
	}
	return v.state
}

func (v *fakeVoice) Close() error {
	v.closed = true
	return nil
}

// finishPlayback simulates the natural end of a non-looping voice.
func (v *fakeVoice) finishPlayback() {
	if !v.closed {
		v.state = device.StateStopped
	}
}

// newTestEngine wires an initialized engine to fresh fakes.
func newTestEngine(t interface{ Fatalf(string, ...any) }) (*Engine, *fakeDevice, *fakeLoader) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	e := New(DefaultConfig(), WithDevice(dev), WithLoader(loader.load))
	if err := e.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return e, dev, loader
}
