package streak

import (
	"errors"
	"testing"
	"time"

	"github.com/verte-zerg/buildstreak/internal/model"
	"github.com/verte-zerg/buildstreak/internal/store"
)

type memStore struct {
	counter model.Counter
	loads   int
	err     error
}

func (m *memStore) Load() (model.Counter, error) {
	m.loads++
	return m.counter, m.err
}

func (m *memStore) Update(fn func(*model.Counter)) (model.Counter, error) {
	if m.err != nil {
		return model.Counter{}, m.err
	}
	fn(&m.counter)
	return m.counter, nil
}

func (m *memStore) Reset() error {
	if m.err != nil {
		return m.err
	}
	m.counter = model.Counter{}
	return nil
}

func TestSuccessSuccessFailScenario(t *testing.T) {
	st := store.New(t.TempDir(), store.WithClock(func() time.Time {
		return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	}))
	exec := New(st)
	for _, op := range []func() (model.Counter, error){exec.Success, exec.Success, exec.Fail} {
		if _, err := op(); err != nil {
			t.Fatalf("operation failed: %v", err)
		}
	}
	counter, err := exec.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got := FormatStatus(counter); got != "2 | 1" {
		t.Fatalf("unexpected status: %q", got)
	}
	segment, err := exec.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "#[fg=colour237,bg=colour234]#[bg=colour237,fg=colour255] 2 | 1 #[fg=colour234,bg=colour237]"
	if segment != want {
		t.Fatalf("unexpected segment: %q", segment)
	}
}

func TestResetDoesNotLoad(t *testing.T) {
	st := &memStore{counter: model.Counter{Success: 7, Fail: 2}}
	exec := New(st)
	if err := exec.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if st.loads != 0 {
		t.Fatalf("expected reset to skip load, got %d loads", st.loads)
	}
	if !st.counter.IsZero() {
		t.Fatalf("expected zero counter, got %+v", st.counter)
	}
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	exec := New(&memStore{err: boom})
	if _, err := exec.Success(); !errors.Is(err, boom) {
		t.Fatalf("success: expected %v, got %v", boom, err)
	}
	if _, err := exec.Fail(); !errors.Is(err, boom) {
		t.Fatalf("fail: expected %v, got %v", boom, err)
	}
	if _, err := exec.Status(); !errors.Is(err, boom) {
		t.Fatalf("status: expected %v, got %v", boom, err)
	}
	if _, err := exec.Render(); !errors.Is(err, boom) {
		t.Fatalf("render: expected %v, got %v", boom, err)
	}
}

func TestFormatNet(t *testing.T) {
	cases := map[model.Counter]string{
		{}:                    "0",
		{Success: 3, Fail: 1}: "2",
		{Success: 1, Fail: 4}: "-3",
	}
	for c, want := range cases {
		if got := FormatNet(c); got != want {
			t.Fatalf("FormatNet(%+v) = %q, want %q", c, got, want)
		}
	}
}
