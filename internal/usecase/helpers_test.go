package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DRSN-tech/bakery-backend/internal/repository/memory"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

var errBackendDown = errors.New("backend down")

// flakyRepo делегирует в память, но может отказывать на запись.
type flakyRepo struct {
	*memory.StateRepo
	failPut bool
}

func (r *flakyRepo) Put(ctx context.Context, key string, value []byte) error {
	if r.failPut {
		return errBackendDown
	}
	return r.StateRepo.Put(ctx, key, value)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []EventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func newTestStore(t *testing.T) (*StateStore, *flakyRepo) {
	t.Helper()

	repo := &flakyRepo{StateRepo: memory.NewStateRepo()}
	return NewStateStore(repo, "bakery", logger.NewDiscardLogger()), repo
}

// sequenceIDs возвращает генератор, выдающий ids по порядку.
func sequenceIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}
