// ABOUTME: Decoded buffer cache and voice pool
// ABOUTME: Loads clips once per key and reclaims finished voices
package cadenza

import (
	"fmt"
	"log"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/device"
)

// LoadFunc decodes an audio file into PCM. The default is decode.LoadFile;
// tests substitute fakes.
type LoadFunc func(path string) (*audio.PCM, error)

// bufferEntry is one cached device buffer and the voices bound to it.
type bufferEntry struct {
	buffer device.Buffer
	voices []*trackedVoice
}

// bufferCache owns every decoded buffer, keyed by registry key. A path is
// decoded at most once while its entry is cached.
type bufferCache struct {
	dev     device.Device
	load    LoadFunc
	entries map[Key]*bufferEntry
}

func newBufferCache(dev device.Device, load LoadFunc) *bufferCache {
	return &bufferCache{
		dev:     dev,
		load:    load,
		entries: make(map[Key]*bufferEntry),
	}
}

// getOrLoad returns the cached entry for key, decoding and uploading the
// file on first reference. A truncated decode is accepted with a warning;
// zero decoded frames is a load failure and leaves nothing registered.
func (c *bufferCache) getOrLoad(key Key, path string) (*bufferEntry, error) {
	if entry, ok := c.entries[key]; ok {
		return entry, nil
	}

	pcm, err := c.load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}
	if pcm.Truncated() {
		log.Printf("Warning: %s may be truncated: expected %d frames but decoded %d",
			path, pcm.FramesExpected, pcm.Frames())
	}

	buffer, err := c.dev.NewBuffer(pcm)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}

	entry := &bufferEntry{buffer: buffer}
	c.entries[key] = entry
	log.Printf("Loaded audio: %s (key %d, %d frames, %dHz, %dch)",
		path, key, pcm.Frames(), pcm.SampleRate, pcm.Channels)
	return entry, nil
}

// attach creates a voice on the entry's buffer and tracks it under the
// given role. On allocation failure no state is mutated.
func (c *bufferCache) attach(entry *bufferEntry, role VoiceRole) (*trackedVoice, error) {
	v, err := entry.buffer.NewVoice()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate voice: %w", err)
	}

	tv := newTrackedVoice(v, role)
	entry.voices = append(entry.voices, tv)
	return tv, nil
}

// detach removes tv from its entry's voice list without closing it.
func (c *bufferCache) detach(entry *bufferEntry, tv *trackedVoice) {
	for i, candidate := range entry.voices {
		if candidate == tv {
			entry.voices = append(entry.voices[:i], entry.voices[i+1:]...)
			return
		}
	}
}

// release stops and closes every voice bound to key's buffer, closes the
// buffer and removes the entry. Reports whether the key was cached.
func (c *bufferCache) release(key Key) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}

	for _, tv := range entry.voices {
		tv.voice.Stop()
		tv.voice.Close()
	}
	entry.voices = nil
	entry.buffer.Close()
	delete(c.entries, key)
	log.Printf("Released audio key %d", key)
	return true
}

// releaseAll tears down every entry. Used on engine close.
func (c *bufferCache) releaseAll() {
	for key := range c.entries {
		c.release(key)
	}
}

// reclaimFinished closes and removes every effect voice whose playback
// has stopped. Music voices are exempt by role; the buffers themselves
// stay cached. Called after spawning an effect and before bulk effect
// operations to bound the growth of one-shot voices.
func (c *bufferCache) reclaimFinished() int {
	reclaimed := 0
	for _, entry := range c.entries {
		kept := entry.voices[:0]
		for _, tv := range entry.voices {
			if tv.role != RoleMusic && tv.voice.State() == device.StateStopped {
				tv.voice.Close()
				reclaimed++
				continue
			}
			kept = append(kept, tv)
		}
		entry.voices = kept
	}
	if reclaimed > 0 {
		log.Printf("Reclaimed %d finished voices", reclaimed)
	}
	return reclaimed
}

// forEachEffect applies fn to every tracked effect voice.
func (c *bufferCache) forEachEffect(fn func(*trackedVoice)) {
	for _, entry := range c.entries {
		for _, tv := range entry.voices {
			if tv.role == RoleEffect {
				fn(tv)
			}
		}
	}
}
