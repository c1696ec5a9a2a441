// Package store owns the single UserState document. All reads and writes go
// through one mutex, so every mutation is a serialized read-modify-write of
// current state: an asynchronous completion can never clobber the document
// with a stale snapshot. Each committed mutation rewrites the whole JSON
// document under one fixed key.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"imokay/models"
	"imokay/utils"
)

// StateKey is the single slot holding the serialized UserState document.
// A format change silently breaks old documents; acceptable for single-user
// local data.
const StateKey = "imokay:user_state:v3"

// Store is the reducer-style state holder with an on-commit persistence hook.
type Store struct {
	mu      sync.Mutex
	state   *models.UserState
	rdb     *redis.Client // nil means in-memory only
	warning time.Duration
	alert   time.Duration
}

// New creates a Store. rdb may be nil, in which case state lives only in
// memory and is lost on restart.
func New(rdb *redis.Client, warning, alert time.Duration) *Store {
	return &Store{
		rdb:     rdb,
		warning: warning,
		alert:   alert,
	}
}

// Load reads the persisted document or seeds the first-launch state. Friend
// status caches are recomputed rather than trusted, and the unlock set is
// deduplicated.
func (s *Store) Load(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state *models.UserState
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, StateKey).Bytes()
		switch {
		case err == redis.Nil:
			// first launch
		case err != nil:
			utils.Sugar.Warnf("state load failed, starting from seed: %v", err)
		default:
			var loaded models.UserState
			if uerr := json.Unmarshal(raw, &loaded); uerr != nil {
				utils.Sugar.Warnf("stored state unreadable, starting from seed: %v", uerr)
			} else {
				state = &loaded
			}
		}
	}
	if state == nil {
		state = models.SeedState(now)
	}

	normalize(state, now, s.warning, s.alert)
	s.state = state
	s.persist(ctx)
	return nil
}

func normalize(state *models.UserState, now time.Time, warning, alert time.Duration) {
	if state.Level < 1 {
		state.Level = 1
	}
	if state.Messages == nil {
		state.Messages = map[string][]models.Message{}
	}
	state.UnlockedFeatures = utils.UniqueStrings(state.UnlockedFeatures)
	state.RefreshStatuses(now.UnixMilli(), warning, alert)
}

// View runs fn with read access to the current state. Friend status caches
// are recomputed first, so reads never see a stale classification. fn must
// not retain the pointer past its return.
func (s *Store) View(fn func(s *models.UserState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.RefreshStatuses(time.Now().UnixMilli(), s.warning, s.alert)
	fn(s.state)
}

// Update applies fn to the current state and commits the result: friend
// status caches are refreshed and the whole document is rewritten. fn always
// sees the state as of application time, never a captured snapshot.
func (s *Store) Update(ctx context.Context, fn func(s *models.UserState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
	s.state.RefreshStatuses(time.Now().UnixMilli(), s.warning, s.alert)
	s.persist(ctx)
}

// persist rewrites the document; failures are logged and the in-memory state
// stays authoritative. Callers hold the lock.
func (s *Store) persist(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(s.state)
	if err != nil {
		utils.Sugar.Errorf("state marshal failed: %v", err)
		return
	}
	wctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.rdb.Set(wctx, StateKey, b, 0).Err(); err != nil {
		utils.Sugar.Warnf("state persist failed: %v", err)
	}
}

// Snapshot returns a deep copy of the current state via JSON round-trip.
func (s *Store) Snapshot() (*models.UserState, error) {
	var b []byte
	var err error
	s.View(func(st *models.UserState) {
		b, err = json.Marshal(st)
	})
	if err != nil {
		return nil, err
	}
	var out models.UserState
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
