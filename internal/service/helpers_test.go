package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/model"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/pkg/database"
	"industrial-site-be/pkg/events"
	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	Kind         string
	ID           uuid.UUID
	Slug         string
	PreviousSlug string
	Action       events.Action
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) PublishContentChanged(_ context.Context, kind string, id uuid.UUID, slug, previousSlug string, action events.Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Kind: kind, ID: id, Slug: slug, PreviousSlug: previousSlug, Action: action})
}

func (p *fakePublisher) last(t *testing.T) publishedEvent {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.events, "no content event published")
	return p.events[len(p.events)-1]
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// memoryPageCache is a map-backed PageCache.
type memoryPageCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryPageCache() *memoryPageCache {
	return &memoryPageCache{entries: map[string][]byte{}}
}

func (c *memoryPageCache) Get(_ context.Context, kind, slug string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[kind+":"+slug]
	if !ok {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (c *memoryPageCache) Set(_ context.Context, kind, slug string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[kind+":"+slug] = b
}

func (c *memoryPageCache) Invalidate(_ context.Context, kind string, slugs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range slugs {
		delete(c.entries, kind+":"+s)
	}
}

func (c *memoryPageCache) has(kind, slug string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[kind+":"+slug]
	return ok
}

type testEnv struct {
	uowFactory unitofwork.RepositoryFactory
	presenter  *Presenter
	publisher  *fakePublisher
	metrics    *metrics.Registry
	log        logger.ILogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewInMemory(model.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	m := metrics.New()
	log := logger.NewNopLogger()
	return &testEnv{
		uowFactory: unitofwork.NewRepositoryFactory(db, mapper.NewDocumentCodec(log, m)),
		presenter:  NewPresenter(richtext.NewRenderer(), m),
		publisher:  &fakePublisher{},
		metrics:    m,
		log:        log,
	}
}

func paragraphJSON(t *testing.T, text string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(richtext.NewDocument(richtext.Paragraph(richtext.Text(text))))
	require.NoError(t, err)
	return b
}
