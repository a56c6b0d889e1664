package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Port 1 is never a mongod; short driver timeouts keep the failure fast.
const unreachableURI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"

func TestEnsureUnreachableStore(t *testing.T) {
	m := NewMongo(unreachableURI, "grantportal")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.Ensure(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
}

func TestPingUnreachableStore(t *testing.T) {
	m := NewMongo(unreachableURI, "grantportal")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Ping(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
}

func TestCreateSurfacesConnectionError(t *testing.T) {
	repo := NewApplications(NewMongo(unreachableURI, "grantportal"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := repo.Create(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
}

func TestCloseWithoutConnection(t *testing.T) {
	m := NewMongo(unreachableURI, "grantportal")
	assert.NoError(t, m.Close(context.Background()))
}
