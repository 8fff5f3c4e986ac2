package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Entry is one applied action as seen by the outside world.
type Entry struct {
	// Move is the game's own move number; entries are ordered by it.
	Move     int       `json:"move"`
	Time     time.Time `json:"time"`
	GameID   string    `json:"gameID"`
	Seat     string    `json:"seat"`
	Identity string    `json:"identity"`
	Command  string    `json:"command"`
	Summary  string    `json:"summary"`
}

// Journal is an append-only log of applied actions per game. List returns
// entries in move order, whatever order they were appended in.
type Journal interface {
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, gameID string) ([]Entry, error)
}

type MemoryJournal struct {
	mu      sync.Mutex
	entries map[string][]Entry
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{entries: make(map[string][]Entry)}
}

func (j *MemoryJournal) Append(_ context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[e.GameID] = append(j.entries[e.GameID], e)
	return nil
}

func (j *MemoryJournal) List(_ context.Context, gameID string) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries[gameID]))
	copy(out, j.entries[gameID])
	sortByMove(out)
	return out, nil
}

// RedisJournal keeps each game's entries in a Redis list. Games only live as
// long as the process, so keys are scoped by run: a game id reused after a
// restart starts with an empty journal.
type RedisJournal struct {
	rdb *redis.Client
	run string
}

func NewRedisJournal(rdb *redis.Client, run string) *RedisJournal {
	return &RedisJournal{rdb: rdb, run: run}
}

// RunID names a process run by its start time.
func RunID(start time.Time) string {
	return start.UTC().Format("20060102_150405.000000000")
}

func journalKey(run, gameID string) string {
	return fmt.Sprintf("room:%s:journal:%s", gameID, run)
}

func (j *RedisJournal) Append(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("journal 序列化失败: %w", err)
	}
	if err := j.rdb.RPush(ctx, journalKey(j.run, e.GameID), data).Err(); err != nil {
		return fmt.Errorf("journal 写入失败 %s: %w", e.GameID, err)
	}
	return nil
}

func (j *RedisJournal) List(ctx context.Context, gameID string) ([]Entry, error) {
	raw, err := j.rdb.LRange(ctx, journalKey(j.run, gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("journal 读取失败 %s: %w", gameID, err)
	}
	out := make([]Entry, 0, len(raw))
	for _, s := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("journal 解析失败 %s: %w", gameID, err)
		}
		out = append(out, e)
	}
	sortByMove(out)
	return out, nil
}

func sortByMove(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
}
