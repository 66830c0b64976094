// Package repository defines the teacher-ranking store interface and errors.
package repository

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/okian/campusgen/pkg/metrics"
)

// Sharded, in-memory Store implementation.
//
// Writes hash the teacher id onto a shard so concurrent rating workers
// contend on separate locks. Reads assemble a consistent ordering on
// demand: mean score DESC, then teacherID ASC (deterministic).

// defaultShardCount balances lock contention against per-shard overhead
// for rosters in the tens to hundreds of teachers.
const defaultShardCount = 16

// aggregate holds one teacher's running totals.
type aggregate struct {
	sum      float64
	sessions int
}

type shard struct {
	mu         sync.RWMutex
	aggregates map[string]*aggregate
}

// ShardedStore implements Store over lock-striped shards.
type ShardedStore struct {
	shards     []*shard
	shardCount int
}

// NewShardedStore creates a ranking store with configuration options.
func NewShardedStore(opts ...Option) *ShardedStore {
	s := &ShardedStore{
		shardCount: defaultShardCount,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{aggregates: make(map[string]*aggregate)}
	}

	metrics.UpdateRankedTeachers(0)

	return s
}

func (s *ShardedStore) shardFor(teacherID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(teacherID)) //nolint:errcheck // fnv never fails
	return s.shards[h.Sum32()%uint32(s.shardCount)]
}

// Add folds one rated session's total score into the teacher's aggregate.
func (s *ShardedStore) Add(_ context.Context, teacherID string, totalScore float64) error {
	sh := s.shardFor(teacherID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	agg, ok := sh.aggregates[teacherID]
	if !ok {
		agg = &aggregate{}
		sh.aggregates[teacherID] = agg
	}
	agg.sum += totalScore
	agg.sessions++

	metrics.RecordRankingStoreUpdate()
	return nil
}

// Rank returns the current rank and aggregate for a teacher.
func (s *ShardedStore) Rank(ctx context.Context, teacherID string) (Entry, error) {
	ranked := s.ranked()
	for _, e := range ranked {
		if e.TeacherID == teacherID {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// TopN returns the top-N entries ordered by mean score desc.
func (s *ShardedStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}

	ranked := s.ranked()
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n], nil
}

// Count returns the number of teachers tracked.
func (s *ShardedStore) Count(_ context.Context) int {
	count := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		count += len(sh.aggregates)
		sh.mu.RUnlock()
	}
	return count
}

// ranked assembles the full ordering: mean score desc, teacher id asc on
// ties.
func (s *ShardedStore) ranked() []Entry {
	var entries []Entry
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id, agg := range sh.aggregates {
			entries = append(entries, Entry{
				TeacherID: id,
				MeanScore: agg.sum / float64(agg.sessions),
				TotalSum:  agg.sum,
				Sessions:  agg.sessions,
			})
		}
		sh.mu.RUnlock()
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].MeanScore != entries[j].MeanScore {
			return entries[i].MeanScore > entries[j].MeanScore
		}
		return entries[i].TeacherID < entries[j].TeacherID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	metrics.UpdateRankedTeachers(len(entries))
	return entries
}
