// ABOUTME: Path-to-key registry with a single-slot memo cache
// ABOUTME: Stable integer identities for audio file paths
package cadenza

// Key is a stable non-zero identity for an audio file path. KeyInvalid
// marks "no key".
type Key uint32

// KeyInvalid is the reserved zero key.
const KeyInvalid Key = 0

// keyMemo caches the most recently resolved (path, key) pair. The common
// access pattern is the same music path polled every frame; the memo
// answers that in O(1) instead of scanning the map. A released key must
// be evicted so the memo never serves a dead identity.
type keyMemo struct {
	path string
	key  Key
}

// keyRegistry associates paths with keys. Keys are allocated from a
// monotonic counter and never reused within a session, even after
// release.
type keyRegistry struct {
	next  Key
	paths map[Key]string
	memo  keyMemo
}

func newKeyRegistry() *keyRegistry {
	return &keyRegistry{
		next:  1,
		paths: make(map[Key]string),
	}
}

// resolve returns the key for path, allocating the next counter value on
// first sight. Resolving a known path never allocates a second key.
func (r *keyRegistry) resolve(path string) Key {
	if r.memo.key != KeyInvalid && r.memo.path == path {
		return r.memo.key
	}

	for key, p := range r.paths {
		if p == path {
			r.memo = keyMemo{path: path, key: key}
			return key
		}
	}

	key := r.next
	r.next++
	r.paths[key] = path
	r.memo = keyMemo{path: path, key: key}
	return key
}

// path returns the registered path for key.
func (r *keyRegistry) path(key Key) (string, bool) {
	p, ok := r.paths[key]
	return p, ok
}

// release drops the mapping for key. The key value is retired for the
// rest of the session; resolving the same path again yields a fresh key.
func (r *keyRegistry) release(key Key) {
	delete(r.paths, key)
	if r.memo.key == key {
		r.memo = keyMemo{}
	}
}
