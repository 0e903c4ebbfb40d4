// Package playground ties the option store to the resolver for one session.
package playground

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

// memoLimit bounds the resolution cache; toggling back and forth between a
// handful of states is the common case.
const memoLimit = 64

// Stats counts how resolutions were obtained.
type Stats struct {
	Resolves int
	Hits     int
}

// Session owns the single live store and keeps its resolution current.
// Every store change re-resolves before the setter returns.
type Session struct {
	store     *options.Store
	current   resolve.Resolution
	memo      map[uint64]resolve.Resolution
	stats     Stats
	listeners []func(resolve.Resolution)
	log       *logger.Logger
}

// NewSession creates a session seeded with initial.
func NewSession(initial options.Config, log *logger.Logger) *Session {
	s := &Session{
		store: options.NewStore(initial),
		memo:  make(map[uint64]resolve.Resolution, memoLimit),
		log:   log,
	}
	s.current = s.lookup(initial)
	s.store.OnChange(s.refresh)
	return s
}

// Store exposes the store for the input layer to mutate.
func (s *Session) Store() *options.Store {
	return s.store
}

// Resolution returns the resolution of the latest configuration.
func (s *Session) Resolution() resolve.Resolution {
	return s.current
}

// Config returns the latest configuration.
func (s *Session) Config() options.Config {
	return s.store.Snapshot()
}

// OnResolve registers fn to run after every recomputation.
func (s *Session) OnResolve(fn func(resolve.Resolution)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Reset restores cfg, normally options.Defaults().
func (s *Session) Reset(cfg options.Config) {
	s.store.Replace(cfg)
}

// Stats returns resolve and cache hit counts.
func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) refresh(cfg options.Config) {
	s.current = s.lookup(cfg)
	for _, fn := range s.listeners {
		fn(s.current)
	}
}

func (s *Session) lookup(cfg options.Config) resolve.Resolution {
	key := Fingerprint(cfg)
	if res, ok := s.memo[key]; ok && res.Source == cfg {
		s.stats.Hits++
		return res
	}

	res := resolve.Resolve(cfg)
	s.stats.Resolves++
	if len(s.memo) >= memoLimit {
		clear(s.memo)
	}
	s.memo[key] = res

	if s.log.DebugEnabled() {
		s.log.WithFields(map[string]any{
			"fingerprint": fmt.Sprintf("%016x", key),
			"classes":     len(res.Classes),
		}).Debug("resolved button")
	}
	return res
}

// Fingerprint hashes every field of cfg.
func Fingerprint(cfg options.Config) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%#v", cfg)
	return d.Sum64()
}
