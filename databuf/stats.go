package databuf

import "sync/atomic"

// StashStats contains counters about a Stash.
// Fields are ordered largest to smallest for memory layout.
type StashStats struct {
	// Lifetime counters
	Allocations uint64 // Buffers handed out by Allocate or AllocateAndPrepare
	Commits     uint64 // Buffers added to the stash
	Rollbacks   uint64 // Transactions discarded because prepare failed
	Released    uint64 // Buffers given back to the recycle pool
	BytesHeld   uint64 // Sum of buffer sizes at commit time, reset by Close

	// Current state gauges
	Buffers int32 // Committed buffers
	Pending int32 // Buffers inside an unfinished transaction
}

// stashStatsCollector provides internal methods for updating stash stats.
// Not exported - stashes update their own stats.
type stashStatsCollector struct {
	stats StashStats
}

func (c *stashStatsCollector) recordAllocate() {
	atomic.AddUint64(&c.stats.Allocations, 1)
}

func (c *stashStatsCollector) recordBegin() {
	atomic.AddInt32(&c.stats.Pending, 1)
}

func (c *stashStatsCollector) recordEnd() {
	atomic.AddInt32(&c.stats.Pending, -1)
}

func (c *stashStatsCollector) recordCommit(size int) {
	atomic.AddUint64(&c.stats.Commits, 1)
	atomic.AddUint64(&c.stats.BytesHeld, uint64(size))
	atomic.AddInt32(&c.stats.Buffers, 1)
}

func (c *stashStatsCollector) recordRollback() {
	atomic.AddUint64(&c.stats.Rollbacks, 1)
}

func (c *stashStatsCollector) recordRelease() {
	atomic.AddUint64(&c.stats.Released, 1)
}

func (c *stashStatsCollector) recordClear() {
	atomic.StoreUint64(&c.stats.BytesHeld, 0)
	atomic.StoreInt32(&c.stats.Buffers, 0)
}

func (c *stashStatsCollector) snapshot() StashStats {
	return StashStats{
		Allocations: atomic.LoadUint64(&c.stats.Allocations),
		Commits:     atomic.LoadUint64(&c.stats.Commits),
		Rollbacks:   atomic.LoadUint64(&c.stats.Rollbacks),
		Released:    atomic.LoadUint64(&c.stats.Released),
		BytesHeld:   atomic.LoadUint64(&c.stats.BytesHeld),
		Buffers:     atomic.LoadInt32(&c.stats.Buffers),
		Pending:     atomic.LoadInt32(&c.stats.Pending),
	}
}
