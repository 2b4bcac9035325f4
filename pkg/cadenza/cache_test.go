// ABOUTME: Tests for the buffer cache and voice pool
// ABOUTME: Decode-once caching, release teardown and voice reclamation
package cadenza

import (
	"errors"
	"testing"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/device"
)

func TestGetOrLoadDecodesOnce(t *testing.T) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	c := newBufferCache(dev, loader.load)

	e1, err := c.getOrLoad(1, "a.wav")
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	e2, err := c.getOrLoad(1, "a.wav")
	if err != nil {
		t.Fatalf("cached load failed: %v", err)
	}

	if e1 != e2 {
		t.Error("cache hit returned a different entry")
	}
	if loader.decodes["a.wav"] != 1 {
		t.Errorf("expected exactly 1 decode, got %d", loader.decodes["a.wav"])
	}
}

func TestGetOrLoadFailureLeavesNothing(t *testing.T) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	loader.failPaths["bad.wav"] = true
	c := newBufferCache(dev, loader.load)

	_, err := c.getOrLoad(1, "bad.wav")
	if !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
	if len(c.entries) != 0 {
		t.Error("failed load left a cache entry")
	}
	if len(dev.buffers) != 0 {
		t.Error("failed load left a device buffer")
	}
}

func TestGetOrLoadBufferUploadFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.failBuffer = true
	loader := newFakeLoader()
	c := newBufferCache(dev, loader.load)

	_, err := c.getOrLoad(1, "a.wav")
	if !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
	if len(c.entries) != 0 {
		t.Error("failed upload left a cache entry")
	}
}

func TestGetOrLoadAcceptsTruncated(t *testing.T) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	loader.truncate = true
	c := newBufferCache(dev, loader.load)

	if _, err := c.getOrLoad(1, "short.wav"); err != nil {
		t.Fatalf("truncated clip should load, got %v", err)
	}
}

func TestReleaseStopsAndClosesVoices(t *testing.T) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	c := newBufferCache(dev, loader.load)

	entry, _ := c.getOrLoad(1, "a.wav")
	tv, err := c.attach(entry, RoleEffect)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	tv.voice.Play()

	if !c.release(1) {
		t.Fatal("release reported missing entry")
	}
	if !dev.buffers[0].closed {
		t.Error("buffer not closed")
	}
	if !dev.buffers[0].voices[0].closed {
		t.Error("voice not closed")
	}
	if c.release(1) {
		t.Error("second release found an entry")
	}
}

func TestReclaimFinishedKeepsMusicAndLive(t *testing.T) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	c := newBufferCache(dev, loader.load)

	entry, _ := c.getOrLoad(1, "a.wav")
	music, _ := c.attach(entry, RoleMusic)
	live, _ := c.attach(entry, RoleEffect)
	done, _ := c.attach(entry, RoleEffect)

	music.voice.Play()
	live.voice.Play()
	done.voice.Play()
	done.voice.(*fakeVoice).finishPlayback()

	// A stopped music voice must survive reclamation too: it is exempt by
	// role, not by state.
	music.voice.(*fakeVoice).finishPlayback()

	if got := c.reclaimFinished(); got != 1 {
		t.Fatalf("expected 1 reclaimed voice, got %d", got)
	}
	if len(entry.voices) != 2 {
		t.Fatalf("expected 2 tracked voices, got %d", len(entry.voices))
	}
	for _, tv := range entry.voices {
		if tv == done {
			t.Error("finished effect voice still tracked")
		}
	}
	if done.voice.State() != device.StateStopped {
		t.Error("reclaimed voice not stopped")
	}
}

func TestAttachFailureMutatesNothing(t *testing.T) {
	dev := newFakeDevice()
	loader := newFakeLoader()
	c := newBufferCache(dev, loader.load)

	entry, _ := c.getOrLoad(1, "a.wav")
	dev.exhausted = true

	if _, err := c.attach(entry, RoleEffect); err == nil {
		t.Fatal("expected allocation failure")
	}
	if len(entry.voices) != 0 {
		t.Error("failed attach left a tracked voice")
	}
}
