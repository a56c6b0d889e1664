package data

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	// ErrConnection wraps failures to reach the document store.
	ErrConnection = errors.New("database connection failed")
	// ErrPersistence wraps failed reads and writes against the store.
	ErrPersistence = errors.New("database operation failed")
)

const connectTimeout = 10 * time.Second

// Mongo owns the single client handle shared by every request for the life
// of the process. The handle is created lazily on first use.
type Mongo struct {
	uri      string
	database string

	mu     sync.Mutex
	client *mongo.Client
}

func NewMongo(uri, database string) *Mongo {
	return &Mongo{uri: uri, database: database}
}

// Ensure returns the database handle, connecting on first use. Concurrent
// callers block on the mutex while a connect attempt is in flight and then
// reuse its result instead of opening a second client. The handle is only
// published after a successful ping.
func (m *Mongo) Ensure(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client.Database(m.database), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	m.client = client
	return m.client.Database(m.database), nil
}

// Ping reports the live reachability of the store, connecting first if no
// handle exists yet.
func (m *Mongo) Ping(ctx context.Context) error {
	if _, err := m.Ensure(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
