// ABOUTME: Engine facade
// ABOUTME: Wires registry, cache, device and fade into the public API
package cadenza

import (
	"log"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/decode"
	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/device"
)

// Engine is the audio resource and playback-state manager. It exclusively
// owns the key registry, the buffer cache and every voice reachable
// through them; callers refer to audio by path or key only.
//
// An Engine must be driven from a single goroutine.
type Engine struct {
	cfg  Config
	dev  device.Device
	load LoadFunc

	registry *keyRegistry
	cache    *bufferCache

	music      *trackedVoice
	musicEntry *bufferEntry
	musicKey   Key

	musicVolume float64
	posX, posY  float64

	fade   fader
	finish func()

	initialized bool
}

// Option customizes an Engine before Init.
type Option func(*Engine)

// WithDevice substitutes the playback device. The default is an
// oto-backed device opened at Init.
func WithDevice(dev device.Device) Option {
	return func(e *Engine) { e.dev = dev }
}

// WithLoader substitutes the file decoder. The default is decode.LoadFile.
func WithLoader(load LoadFunc) Option {
	return func(e *Engine) { e.load = load }
}

// New creates an engine. Init must be called before playback.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:         cfg.withDefaults(),
		load:        decode.LoadFile,
		musicVolume: 1.0,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init acquires the playback device. Calling Init on an initialized
// engine fails with ErrAlreadyInitialized; Close tears the engine down
// for re-initialization. A device failure leaves the engine unusable
// until Init succeeds.
func (e *Engine) Init() error {
	if e.initialized {
		return ErrAlreadyInitialized
	}

	if e.dev == nil {
		dev, err := device.NewOto(e.cfg.SampleRate, e.cfg.Channels)
		if err != nil {
			return err
		}
		e.dev = dev
	}

	e.registry = newKeyRegistry()
	e.cache = newBufferCache(e.dev, e.load)
	e.initialized = true
	return nil
}

// Close stops every voice, releases every buffer and closes the device.
func (e *Engine) Close() error {
	if !e.initialized {
		return ErrNotInitialized
	}

	e.fade.cancel()
	e.clearMusic()
	e.cache.releaseAll()

	err := e.dev.Close()
	e.dev = nil
	e.initialized = false
	return err
}

// ResolveKey returns the stable key for path, allocating one on first
// sight. Keys index the Free*ByKey operations.
func (e *Engine) ResolveKey(path string) Key {
	if !e.initialized {
		return KeyInvalid
	}
	return e.registry.resolve(path)
}

// PlayMusic makes path the current music and starts it at the music
// volume. The prior music voice is stopped and destroyed unconditionally,
// also when the same path is requested again. On load or allocation
// failure there is no current music afterwards.
func (e *Engine) PlayMusic(path string) error {
	if !e.initialized {
		return ErrNotInitialized
	}

	key := e.registry.resolve(path)
	e.clearMusic()

	entry, err := e.cache.getOrLoad(key, path)
	if err != nil {
		return err
	}

	tv, err := e.cache.attach(entry, RoleMusic)
	if err != nil {
		return err
	}
	tv.voice.SetGain(e.musicVolume)
	tv.voice.SetPosition(e.posX, e.posY)

	e.music = tv
	e.musicEntry = entry
	e.musicKey = key

	tv.voice.Play()
	log.Printf("Playing music: %s (key %d, voice %s)", path, key, tv.id)
	return nil
}

// PlaySoundEffect plays path as a fire-and-forget effect voice. Any
// number of effect voices may share one buffer. Finished effect voices
// are reclaimed after each spawn.
func (e *Engine) PlaySoundEffect(path string) error {
	if !e.initialized {
		return ErrNotInitialized
	}

	key := e.registry.resolve(path)
	entry, err := e.cache.getOrLoad(key, path)
	if err != nil {
		return err
	}

	tv, err := e.cache.attach(entry, RoleEffect)
	if err != nil {
		return err
	}
	tv.voice.Play()

	e.cache.reclaimFinished()
	return nil
}

// FreeMusicByKey releases key's buffer, stopping and destroying every
// voice bound to it. If key is the current music, the current-music
// designation is cleared as well.
func (e *Engine) FreeMusicByKey(key Key) {
	if !e.initialized {
		return
	}
	if !e.cache.release(key) {
		return
	}
	e.registry.release(key)
	if key == e.musicKey {
		e.fade.cancel()
		e.music = nil
		e.musicEntry = nil
		e.musicKey = KeyInvalid
	}
}

// FreeSoundByKey releases key's buffer, stopping and destroying every
// voice bound to it. The current-music designation is not touched.
func (e *Engine) FreeSoundByKey(key Key) {
	if !e.initialized {
		return
	}
	if e.cache.release(key) {
		e.registry.release(key)
	}
}

// SetMusicVolume sets the remembered music volume on the 0-100 scale and
// applies it to the current music voice.
func (e *Engine) SetMusicVolume(volume int) {
	e.musicVolume = volumeToGain(volume)
	if e.music != nil {
		e.music.voice.SetGain(e.musicVolume)
	}
}

// GetMusicVolume reports the current music voice's gain on the 0-100
// scale, or the remembered music volume when nothing is playing.
func (e *Engine) GetMusicVolume() int {
	if e.music != nil {
		return gainToVolume(e.music.voice.Gain())
	}
	return gainToVolume(e.musicVolume)
}

// SetSoundVolume applies a 0-100 volume to every voice bound to path's
// buffer.
func (e *Engine) SetSoundVolume(path string, volume int) {
	if !e.initialized {
		return
	}
	gain := volumeToGain(volume)

	key := e.registry.resolve(path)
	entry, ok := e.cache.entries[key]
	if !ok {
		return
	}
	for _, tv := range entry.voices {
		tv.voice.SetGain(gain)
	}
}

// GetSoundVolume reports the gain of path's first live voice on the
// 0-100 scale, or 0 when the path has no cached buffer or no voices.
func (e *Engine) GetSoundVolume(path string) int {
	if !e.initialized {
		return 0
	}

	key := e.registry.resolve(path)
	entry, ok := e.cache.entries[key]
	if !ok || len(entry.voices) == 0 {
		return 0
	}
	return gainToVolume(entry.voices[0].voice.Gain())
}

// MaxVolume returns the upper bound of the external volume scale.
func (e *Engine) MaxVolume() int {
	return 100
}

// SetMusicPosition stores the music position and forwards it to the
// current music voice. The engine stores positions only; spatial math is
// out of scope.
func (e *Engine) SetMusicPosition(x, y float64) {
	e.posX, e.posY = x, y
	if e.music != nil {
		e.music.voice.SetPosition(x, y)
	}
}

// MusicType reports the audio format sniffed from path's extension.
func (e *Engine) MusicType(path string) audio.FileFormat {
	return audio.FormatFromPath(path)
}

// SetFinishMusicCallback registers the single subscriber notified when a
// fade to silence completes. The callback runs synchronously from Tick.
func (e *Engine) SetFinishMusicCallback(fn func()) {
	e.finish = fn
}

// ClearFinishMusicCallback unregisters the finish notification. Callers
// must unregister before their state goes away; the engine holds no
// lifetime contract with the subscriber.
func (e *Engine) ClearFinishMusicCallback() {
	e.finish = nil
}

// IsMusicPlaying reports whether the current music voice is actively
// playing.
func (e *Engine) IsMusicPlaying() bool {
	return e.music != nil && e.music.voice.State() == device.StatePlaying
}

// IsMusicPaused reports whether the current music voice is paused.
func (e *Engine) IsMusicPaused() bool {
	return e.music != nil && e.music.voice.State() == device.StatePaused
}

// clearMusic stops and destroys the current music voice and cancels any
// fade. The buffer stays cached.
func (e *Engine) clearMusic() {
	if e.music == nil {
		return
	}

	e.music.voice.Stop()
	e.music.voice.Close()
	if e.musicEntry != nil {
		e.cache.detach(e.musicEntry, e.music)
	}
	e.music = nil
	e.musicEntry = nil
	e.musicKey = KeyInvalid
	e.fade.cancel()
}
