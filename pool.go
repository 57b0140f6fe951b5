package htmltok

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Reusable buffer pooling, narrowed from the donor's per-node-type pool
// family down to the one thing a tokenizer actually needs pooled: the
// append-only string buffer each Tokenizer accumulates text runs into
// before assigning it to a token field
// (spec.md §2 component 5, §9 "Buffer pool").

var builderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

func getBuilder() *strings.Builder {
	if statsEnabled {
		atomic.AddUint64(&poolStats.BufferGets, 1)
	}
	//nolint:revive // unchecked-type-assertion - pool always returns *strings.Builder
	return builderPool.Get().(*strings.Builder)
}

func putBuilder(b *strings.Builder) {
	if b == nil {
		return
	}
	if statsEnabled {
		atomic.AddUint64(&poolStats.BufferPuts, 1)
	}
	b.Reset()
	builderPool.Put(b)
}

// PoolStats reports how often the internal buffer pool has been drawn
// from and returned to. Collection is opt-in via EnablePoolStats, mirroring
// this codebase's existing pool-diagnostics convention elsewhere.
type PoolStats struct {
	BufferGets uint64
	BufferPuts uint64
}

var (
	statsEnabled bool
	poolStats    PoolStats
	statsMu      sync.RWMutex
)

// EnablePoolStats turns on buffer-pool usage tracking. It adds a small
// amount of overhead to every buffer get and put (one each per Tokenizer,
// in New and Dispose); call it once at process
// start if you want the diagnostics, not per-tokenizer.
func EnablePoolStats() {
	statsMu.Lock()
	statsEnabled = true
	statsMu.Unlock()
}

// DisablePoolStats turns buffer-pool usage tracking back off.
func DisablePoolStats() {
	statsMu.Lock()
	statsEnabled = false
	statsMu.Unlock()
}

// GetPoolStats returns the current buffer-pool counters.
func GetPoolStats() PoolStats {
	statsMu.RLock()
	defer statsMu.RUnlock()
	return PoolStats{
		BufferGets: atomic.LoadUint64(&poolStats.BufferGets),
		BufferPuts: atomic.LoadUint64(&poolStats.BufferPuts),
	}
}

// ResetPoolStats zeroes the buffer-pool counters.
func ResetPoolStats() {
	statsMu.Lock()
	defer statsMu.Unlock()
	atomic.StoreUint64(&poolStats.BufferGets, 0)
	atomic.StoreUint64(&poolStats.BufferPuts, 0)
}
