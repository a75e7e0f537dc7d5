// Package streak implements the build outcome operations over a counter store.
package streak

import (
	"fmt"
	"strconv"

	"github.com/verte-zerg/buildstreak/internal/model"
	"github.com/verte-zerg/buildstreak/internal/tmux"
)

// CounterStore is the storage used by the executor.
type CounterStore interface {
	Load() (model.Counter, error)
	Update(fn func(*model.Counter)) (model.Counter, error)
	Reset() error
}

// Executor runs build outcome operations against today's counter.
type Executor struct {
	store CounterStore
}

// New returns an executor backed by st.
func New(st CounterStore) *Executor {
	return &Executor{store: st}
}

// Success records a successful build.
func (e *Executor) Success() (model.Counter, error) {
	return e.store.Update(func(c *model.Counter) {
		c.Success++
	})
}

// Fail records a failed build.
func (e *Executor) Fail() (model.Counter, error) {
	return e.store.Update(func(c *model.Counter) {
		c.Fail++
	})
}

// Status returns today's counter.
func (e *Executor) Status() (model.Counter, error) {
	return e.store.Load()
}

// Reset zeroes today's counter.
func (e *Executor) Reset() error {
	return e.store.Reset()
}

// Render returns today's counter as a tmux segment.
func (e *Executor) Render() (string, error) {
	counter, err := e.store.Load()
	if err != nil {
		return "", err
	}
	return tmux.Render(counter), nil
}

// FormatStatus formats a counter as "<success> | <fail>".
func FormatStatus(c model.Counter) string {
	return fmt.Sprintf("%d | %d", c.Success, c.Fail)
}

// FormatNet formats the signed difference between successes and failures.
func FormatNet(c model.Counter) string {
	return strconv.Itoa(c.Net())
}
