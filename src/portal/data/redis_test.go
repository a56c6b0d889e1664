package data

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microgrants/grant-portal/src/portal/types"
)

func TestPublishApplication(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	app := &types.Application{
		ApplicationID: "APP-1700000000000-X7K2PQ",
		FirstName:     "Ada",
		LastName:      "Okafor",
		Email:         "ada@example.com",
		ProjectTitle:  "Community Solar Microgrid",
		Status:        types.StatusPending,
		SubmittedAt:   time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, PublishApplication(context.Background(), rdb, app))

	entries, err := rdb.XRange(context.Background(), streamApplications, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := entries[0].Values
	assert.Equal(t, "APP-1700000000000-X7K2PQ", values["applicationId"])
	assert.Equal(t, "Ada Okafor", values["applicant"])
	assert.Equal(t, "Community Solar Microgrid", values["projectTitle"])
	assert.Equal(t, types.StatusPending, values["status"])
}
