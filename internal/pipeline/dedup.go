package pipeline

import (
	"crypto/sha256"
	"sync"
	"time"

	"github.com/fernwell/attune/internal/model"
)

// dedup remembers content hashes of processed reflections so replays of the
// same record (same id, timestamp, and text) are enriched only once per run.
type dedup struct {
	mu   sync.Mutex
	seen map[[sha256.Size]byte]struct{}
}

func newDedup() *dedup {
	return &dedup{seen: make(map[[sha256.Size]byte]struct{})}
}

// check returns true if the reflection was already seen, recording it
// otherwise.
func (d *dedup) check(ref model.Reflection) bool {
	key := hash(ref)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func hash(ref model.Reflection) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(ref.ID))
	h.Write([]byte{'|'})
	h.Write([]byte(ref.Timestamp.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{'|'})
	h.Write([]byte(ref.Text))
	var key [sha256.Size]byte
	h.Sum(key[:0])
	return key
}
