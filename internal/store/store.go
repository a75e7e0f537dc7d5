// Package store persists the daily build counters as plain-text files.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/buildstreak/internal/model"
)

// Clock returns the current time. The local calendar date of its result
// selects the counter file.
type Clock func() time.Time

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to pick today's file.
func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLock enables or disables the advisory lock around counter access.
func WithLock(enabled bool) Option {
	return func(s *Store) {
		s.lock = enabled
	}
}

// Store reads and writes one counter file per calendar day under a root directory.
type Store struct {
	root string
	now  Clock
	lock bool
}

// New returns a store rooted at root. The directory is expected to exist.
func New(root string, opts ...Option) *Store {
	s := &Store{root: root, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the counter file for the current local date.
func (s *Store) Path() string {
	return s.PathFor(s.now())
}

// PathFor returns the counter file for the local date of t.
func (s *Store) PathFor(t time.Time) string {
	return filepath.Join(s.root, DayFileName(t))
}

// Load returns today's counter. A missing file is created as zero; a file that
// does not decode cleanly is rewritten with what could be recovered.
func (s *Store) Load() (model.Counter, error) {
	path := s.Path()
	var counter model.Counter
	err := s.withLock(func() error {
		var err error
		counter, err = s.load(path)
		return err
	})
	return counter, err
}

// Save overwrites today's counter.
func (s *Store) Save(counter model.Counter) error {
	path := s.Path()
	return s.withLock(func() error {
		return s.write(path, counter)
	})
}

// Update loads today's counter, applies fn and saves the result.
func (s *Store) Update(fn func(*model.Counter)) (model.Counter, error) {
	path := s.Path()
	var counter model.Counter
	err := s.withLock(func() error {
		var err error
		counter, err = s.load(path)
		if err != nil {
			return err
		}
		fn(&counter)
		return s.write(path, counter)
	})
	if err != nil {
		return model.Counter{}, err
	}
	return counter, nil
}

// Reset zeroes today's counter without reading it first.
func (s *Store) Reset() error {
	return s.Save(model.Counter{})
}

func (s *Store) load(path string) (model.Counter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Counter{}, s.write(path, model.Counter{})
		}
		return model.Counter{}, fmt.Errorf("failed to read counter: %w", err)
	}
	counter, clean := decode(data)
	if !clean {
		if err := s.write(path, counter); err != nil {
			return model.Counter{}, fmt.Errorf("failed to repair counter: %w", err)
		}
	}
	return counter, nil
}

func (s *Store) write(path string, counter model.Counter) error {
	if err := os.WriteFile(path, encode(counter), 0o644); err != nil {
		return fmt.Errorf("failed to write counter: %w", err)
	}
	return nil
}

func (s *Store) withLock(fn func() error) error {
	if !s.lock {
		return fn()
	}
	unlock, err := lockFile(filepath.Join(s.root, lockFileName))
	if err != nil {
		return fmt.Errorf("failed to lock store: %w", err)
	}
	err = fn()
	if uerr := unlock(); uerr != nil && err == nil {
		err = fmt.Errorf("failed to unlock store: %w", uerr)
	}
	return err
}
