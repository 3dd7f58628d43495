package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
)

type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Add(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func newTestStore(max int) (*Store, *fakeNow, *[]int) {
	clock := &fakeNow{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	counts := &[]int{}
	s := NewStore(func(string) *form.Controller { return form.New() }, Options{
		IdleTTL: time.Minute,
		Max:     max,
		Now:     clock.Now,
		OnCount: func(n int) { *counts = append(*counts, n) },
	})
	return s, clock, counts
}

func isClosed(c *form.Controller) bool {
	select {
	case <-c.Done():
		return true
	default:
		return false
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	s, _, counts := newTestStore(10)

	sess, created := s.GetOrCreate("")
	require.True(t, created)
	assert.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Controller)
	assert.NotNil(t, sess.View)

	again, created := s.GetOrCreate(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, again)

	other, created := s.GetOrCreate("unknown-id")
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, other.ID)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, *counts)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s, _, _ := newTestStore(10)
	a := s.Create()
	b := s.Create()

	a.Controller.UpdateField(appointment.FieldFullName, "Asha Rao")

	assert.Equal(t, "Asha Rao", a.Controller.State().Data.FullName)
	assert.Equal(t, "", b.Controller.State().Data.FullName)
}

func TestStore_SweepClosesIdleSessions(t *testing.T) {
	s, clock, _ := newTestStore(10)
	idle := s.Create()
	clock.Add(45 * time.Second)
	active := s.Create()

	clock.Add(30 * time.Second)
	_, ok := s.Get(active.ID)
	require.True(t, ok)

	assert.Equal(t, 1, s.Sweep())
	assert.True(t, isClosed(idle.Controller))
	assert.False(t, isClosed(active.Controller))

	_, ok = s.Get(idle.ID)
	assert.False(t, ok)
}

func TestStore_EvictsLeastRecentlySeen(t *testing.T) {
	s, clock, _ := newTestStore(2)
	first := s.Create()
	clock.Add(time.Second)
	second := s.Create()
	clock.Add(time.Second)
	s.Get(first.ID)

	third := s.Create()

	assert.Equal(t, 2, s.Len())
	assert.True(t, isClosed(second.Controller))
	assert.False(t, isClosed(first.Controller))
	assert.False(t, isClosed(third.Controller))
}

func TestStore_Close(t *testing.T) {
	s, _, counts := newTestStore(10)
	sess := s.Create()

	s.Close()

	assert.True(t, isClosed(sess.Controller))
	assert.Zero(t, s.Len())
	assert.Equal(t, 0, (*counts)[len(*counts)-1])

	late := s.Create()
	assert.True(t, isClosed(late.Controller))
	assert.Zero(t, s.Len())
}

func TestStore_RunStopsWithContext(t *testing.T) {
	s, _, _ := newTestStore(10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPageView_TakeScroll(t *testing.T) {
	v := &PageView{}

	_, _, ok := v.TakeScroll()
	assert.False(t, ok)

	v.ScrollIntoView(form.FormAnchor, true)
	anchor, smooth, ok := v.TakeScroll()
	assert.True(t, ok)
	assert.True(t, smooth)
	assert.Equal(t, form.FormAnchor, anchor)

	_, _, ok = v.TakeScroll()
	assert.False(t, ok)
}
