package shutdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type step struct {
	name string
	rec  *recorder
}

func (s step) Shutdown() { s.rec.add(s.name) }

type blocking struct{ release chan struct{} }

func (b blocking) Shutdown() { <-b.release }

func TestShutdownReverseOrderOnce(t *testing.T) {
	rec := &recorder{}
	m := NewManager(context.Background(), nil)
	m.Register("first", step{name: "first", rec: rec})
	m.Register("second", step{name: "second", rec: rec})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, rec.order)
	assert.ErrorIs(t, m.Context().Err(), context.Canceled)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownAbandonsSlowComponent(t *testing.T) {
	rec := &recorder{}
	release := make(chan struct{})
	defer close(release)

	m := NewManager(context.Background(), nil)
	m.stepTimeout = 20 * time.Millisecond
	m.Register("after", step{name: "after", rec: rec})
	m.Register("slow", blocking{release: release})

	m.Shutdown()

	assert.Equal(t, []string{"after"}, rec.order)
}

func TestManagerFollowsParentContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	m := NewManager(parent, nil)

	cancel()

	assert.ErrorIs(t, m.Context().Err(), context.Canceled)
}
